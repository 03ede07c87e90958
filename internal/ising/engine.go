package ising

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/san-kum/statmech/internal/lattice"
)

// Source is the random stream consumed by an Engine. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// FlipCode reports the outcome of a single Metropolis trial.
type FlipCode int

const (
	// NotFlipped means the proposal was rejected and the lattice is unchanged.
	NotFlipped FlipCode = iota
	// Flipped means the chosen spin was inverted.
	Flipped
)

func (c FlipCode) String() string {
	if c == Flipped {
		return "flipped"
	}
	return "not_flipped"
}

// InitMode selects the starting configuration.
type InitMode rune

const (
	// RandomStart fills the lattice with independent ±1 spins.
	RandomStart InitMode = 'r'
	// Uniform starts from the ordered all +1 state.
	Uniform InitMode = 'u'
)

// ParseInitMode accepts "r" or "u".
func ParseInitMode(s string) (InitMode, error) {
	switch s {
	case "r":
		return RandomStart, nil
	case "u":
		return Uniform, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownInitMode)
}

// NewSource returns the PCG stream used for a given seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Engine owns a periodic lattice together with its running energy and
// magnetisation. Both are kept consistent with the lattice after every
// accepted flip.
type Engine struct {
	lat           *lattice.Lattice
	dim           int
	energy        int
	magnetisation int
	beta          float64
	rng           Source
}

// New builds a dim×dim engine seeded with seed. dim <= 0 panics.
func New(dim int, seed int64, beta float64, mode InitMode) *Engine {
	return NewWithSource(dim, beta, mode, NewSource(seed))
}

// NewWithSource builds an engine drawing from src.
func NewWithSource(dim int, beta float64, mode InitMode, src Source) *Engine {
	var lm lattice.InitMode
	switch mode {
	case RandomStart:
		lm = lattice.Random
	case Uniform:
		lm = lattice.Ones
	default:
		panic(fmt.Sprintf("ising: init mode %q: %v", rune(mode), ErrUnknownInitMode))
	}

	lat := lattice.NewSquare(dim, lm, src)
	return &Engine{
		lat:           lat,
		dim:           dim,
		energy:        LatticeEnergy(lat),
		magnetisation: lat.Sum(),
		beta:          beta,
		rng:           src,
	}
}

// LatticeEnergy sums -s(i,j)*(s(i,j+1)+s(i+1,j)) over every site, counting
// each bond once through its right and down neighbour.
func LatticeEnergy(l *lattice.Lattice) int {
	w, h := l.Dims()
	e := 0
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			e -= l.At(i, j) * (l.At(i, j+1) + l.At(i+1, j))
		}
	}
	return e
}

// Energy is the current total energy, -sum over bonds of s*s'.
func (e *Engine) Energy() int { return e.energy }

// Magnetisation is the current spin sum, with sign.
func (e *Engine) Magnetisation() int { return e.magnetisation }

// Beta is the inverse temperature.
func (e *Engine) Beta() float64 { return e.beta }

// Dim is the lattice side length.
func (e *Engine) Dim() int { return e.dim }

// Sites is dim².
func (e *Engine) Sites() int { return e.dim * e.dim }

// Lattice exposes the spins for rendering. Callers must not mutate it.
func (e *Engine) Lattice() *lattice.Lattice { return e.lat }

// SetTemperature sets beta = 1/T. T = 0 yields beta = +Inf.
func (e *Engine) SetTemperature(t float64) {
	e.beta = 1 / t
}

// Temperature returns 1/beta.
func (e *Engine) Temperature() float64 {
	return 1 / e.beta
}

// TryFlip proposes flipping one uniformly chosen spin and applies the
// Metropolis rule.
func (e *Engine) TryFlip() FlipCode {
	i := e.rng.IntN(e.dim)
	j := e.rng.IntN(e.dim)

	s := e.lat.At(i, j)
	dE := 2 * s * e.lat.NeighbourSum(i, j)

	if dE > 0 && e.rng.Float64() >= math.Exp(-e.beta*float64(dE)) {
		return NotFlipped
	}

	e.lat.Flip(i, j)
	e.energy += dE
	e.magnetisation -= 2 * s
	return Flipped
}

// Thermalise performs sweeps*N trials, N being the number of sites.
func (e *Engine) Thermalise(sweeps int) {
	n := sweeps * e.Sites()
	for k := 0; k < n; k++ {
		e.TryFlip()
	}
}

// FindStatistics runs totalSteps trials and samples the energy and |M|
// after every measureEvery-th trial. measureEvery < 1 samples every trial.
func (e *Engine) FindStatistics(totalSteps, measureEvery int) Statistics {
	if measureEvery < 1 {
		measureEvery = 1
	}

	var acc accumulator
	accepted := 0
	for step := 1; step <= totalSteps; step++ {
		if e.TryFlip() == Flipped {
			accepted++
		}
		if step%measureEvery == 0 {
			acc.add(e.energy, e.magnetisation)
		}
	}

	st := acc.statistics(e.beta)
	if totalSteps > 0 {
		st.AcceptanceRate = float64(accepted) / float64(totalSteps)
	}
	return st
}

// FindStatisticsCycles runs cycles outer iterations of flipsPerCycle trials,
// measuring once at the end of each. It is FindStatistics with
// totalSteps = cycles*flipsPerCycle and measureEvery = flipsPerCycle.
func (e *Engine) FindStatisticsCycles(cycles, flipsPerCycle int) Statistics {
	if flipsPerCycle < 1 {
		flipsPerCycle = 1
	}

	var acc accumulator
	accepted := 0
	for c := 0; c < cycles; c++ {
		for k := 0; k < flipsPerCycle; k++ {
			if e.TryFlip() == Flipped {
				accepted++
			}
		}
		acc.add(e.energy, e.magnetisation)
	}

	st := acc.statistics(e.beta)
	if total := cycles * flipsPerCycle; total > 0 {
		st.AcceptanceRate = float64(accepted) / float64(total)
	}
	return st
}
