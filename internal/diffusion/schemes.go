// Package diffusion solves the 1D diffusion equation u_t = u_xx on a grid
// with fixed end values.
//
// Three finite-difference schemes share the tridiagonal stencil routines
// [MultiplyInPlace] and [SolveInPlace]; alpha = dt/dx² throughout:
//
//   - [ForwardEuler]: explicit, stable for alpha <= 1/2
//   - [BackwardEuler]: implicit, unconditionally stable
//   - [CrankNicolson]: half explicit, half implicit, second order in time
//
// A particle picture is provided by [MonteCarlo], a random walk over bins
// with a constant source at the left edge and a sink at the right edge.
package diffusion

import (
	"errors"
	"fmt"
)

// ErrUnknownScheme indicates a scheme name other than fe, be or cn.
var ErrUnknownScheme = errors.New("diffusion: unknown scheme")

// Scheme names a finite-difference method.
type Scheme string

const (
	SchemeForwardEuler  Scheme = "fe"
	SchemeBackwardEuler Scheme = "be"
	SchemeCrankNicolson Scheme = "cn"
)

// Schemes lists the supported scheme names.
func Schemes() []Scheme {
	return []Scheme{SchemeForwardEuler, SchemeBackwardEuler, SchemeCrankNicolson}
}

// ParseScheme maps a name onto a Scheme.
func ParseScheme(name string) (Scheme, error) {
	for _, s := range Schemes() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownScheme)
}

// ForwardEuler advances init by steps explicit updates.
func ForwardEuler(init []float64, alpha float64, steps int) []float64 {
	v := clone(init)
	a, b := 1-2*alpha, alpha
	for k := 0; k < steps; k++ {
		MultiplyInPlace(v, a, b)
	}
	return v
}

// BackwardEuler advances init by steps implicit updates.
func BackwardEuler(init []float64, alpha float64, steps int) []float64 {
	v := clone(init)
	a, b := 1+2*alpha, -alpha
	for k := 0; k < steps; k++ {
		SolveInPlace(v, a, b)
	}
	return v
}

// CrankNicolson advances init by steps, each an explicit half step followed
// by an implicit half step.
func CrankNicolson(init []float64, alpha float64, steps int) []float64 {
	v := clone(init)
	aExp, bExp := 1-alpha, alpha/2
	aImp, bImp := 1+alpha, -alpha/2
	for k := 0; k < steps; k++ {
		MultiplyInPlace(v, aExp, bExp)
		SolveInPlace(v, aImp, bImp)
	}
	return v
}

// Solve dispatches on scheme.
func Solve(scheme Scheme, init []float64, alpha float64, steps int) ([]float64, error) {
	switch scheme {
	case SchemeForwardEuler:
		return ForwardEuler(init, alpha, steps), nil
	case SchemeBackwardEuler:
		return BackwardEuler(init, alpha, steps), nil
	case SchemeCrankNicolson:
		return CrankNicolson(init, alpha, steps), nil
	}
	return nil, fmt.Errorf("%q: %w", scheme, ErrUnknownScheme)
}

// StepInitial builds an n-point profile with u(0) = left and zero elsewhere,
// the usual initial condition for a rod brought into contact with a
// reservoir.
func StepInitial(n int, left float64) []float64 {
	v := make([]float64, n)
	if n > 0 {
		v[0] = left
	}
	return v
}

func clone(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
