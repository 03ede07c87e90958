package ising

import (
	"fmt"
	"math"

	"github.com/san-kum/statmech/internal/lattice"
)

// MaxExactDim bounds exact enumeration to 2^16 configurations.
const MaxExactDim = 4

// Exact computes the canonical averages of a dim×dim lattice by summing
// over every spin configuration. AcceptanceRate is the stationary
// probability that a uniformly chosen single-spin Metropolis proposal is
// accepted. Samples is the number of configurations visited.
func Exact(dim int, beta float64) (Statistics, error) {
	if dim > MaxExactDim {
		return Statistics{}, fmt.Errorf("dim %d > %d: %w", dim, MaxExactDim, ErrTooLarge)
	}
	if math.IsInf(beta, 0) || math.IsNaN(beta) {
		return Statistics{}, ErrInfiniteBeta
	}

	lat := lattice.NewSquare(dim, lattice.Ones, nil)
	n := lat.Len()
	ground := float64(LatticeEnergy(lat))

	var z, sumE, sumE2, sumM, sumM2, sumAcc float64
	for cfg := 0; cfg < 1<<n; cfg++ {
		for k := 0; k < n; k++ {
			s := 1
			if cfg&(1<<k) != 0 {
				s = -1
			}
			lat.Set(k/dim, k%dim, s)
		}

		energy := float64(LatticeEnergy(lat))
		m := math.Abs(float64(lat.Sum()))
		w := math.Exp(-beta * (energy - ground))

		acc := 0.0
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				dE := 2 * lat.At(i, j) * lat.NeighbourSum(i, j)
				acc += math.Min(1, math.Exp(-beta*float64(dE)))
			}
		}

		z += w
		sumE += w * energy
		sumE2 += w * energy * energy
		sumM += w * m
		sumM2 += w * m * m
		sumAcc += w * acc / float64(n)
	}

	meanE := sumE / z
	meanM := sumM / z
	return Statistics{
		Energy:         meanE,
		SpecificHeat:   beta * beta * (sumE2/z - meanE*meanE),
		Magnetisation:  meanM,
		Susceptibility: beta * (sumM2/z - meanM*meanM),
		AcceptanceRate: sumAcc / z,
		Samples:        1 << n,
	}, nil
}
