package ising

import "math"

// Statistics holds the observables of one sampling window. Energy and
// Magnetisation are totals over the lattice unless PerSite was applied.
type Statistics struct {
	Energy         float64
	SpecificHeat   float64
	Magnetisation  float64
	Susceptibility float64
	AcceptanceRate float64
	Samples        int
}

// PerSite divides the extensive quantities by n. AcceptanceRate and Samples
// are unchanged.
func (s Statistics) PerSite(n int) Statistics {
	if n <= 0 {
		return s
	}
	f := float64(n)
	s.Energy /= f
	s.SpecificHeat /= f
	s.Magnetisation /= f
	s.Susceptibility /= f
	return s
}

type accumulator struct {
	n     int
	sumE  float64
	sumE2 float64
	sumM  float64
	sumM2 float64
}

func (a *accumulator) add(energy, magnetisation int) {
	e := float64(energy)
	m := math.Abs(float64(magnetisation))
	a.n++
	a.sumE += e
	a.sumE2 += e * e
	a.sumM += m
	a.sumM2 += m * m
}

func (a *accumulator) statistics(beta float64) Statistics {
	if a.n == 0 {
		return Statistics{}
	}
	n := float64(a.n)
	meanE := a.sumE / n
	meanM := a.sumM / n
	return Statistics{
		Energy:         meanE,
		SpecificHeat:   beta * beta * (a.sumE2/n - meanE*meanE),
		Magnetisation:  meanM,
		Susceptibility: beta * (a.sumM2/n - meanM*meanM),
		Samples:        a.n,
	}
}
