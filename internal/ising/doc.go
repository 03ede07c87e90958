// Package ising implements Metropolis Monte Carlo for the 2D Ising model
// on a periodic square lattice with coupling J = 1 and no external field.
//
// The package is organised around the [Engine]:
//
//   - [Engine.TryFlip]: one single-spin Metropolis trial, O(1)
//   - [Engine.Thermalise]: sweeps of trials discarded before measurement
//   - [Engine.FindStatistics]: sampled energy, specific heat,
//     magnetisation, susceptibility and acceptance rate
//   - [RecordTrace]: per-step energy/magnetisation time series
//   - [EnergyHistogram]: distribution of total energies
//   - [Exact]: exact enumeration for lattices up to 4×4
//
// # Example
//
//	e := ising.New(20, seed, 1/2.269, ising.RandomStart)
//	e.Thermalise(1000)
//	st := e.FindStatistics(1_000_000, 100).PerSite(e.Sites())
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. Parallel runs construct one engine
// per goroutine, each with its own seed; see package sweep.
package ising
