package ising

import "sort"

// Trace is a per-step record of an engine's relaxation. Accepted[k] counts
// the flips accepted before step k.
type Trace struct {
	Energy        []int
	Magnetisation []int
	Accepted      []int
}

// Len is the number of recorded steps.
func (t Trace) Len() int { return len(t.Energy) }

// RecordTrace samples the energy, signed magnetisation and cumulative
// acceptance count before each of cycles trials.
func RecordTrace(e *Engine, cycles int) Trace {
	tr := Trace{
		Energy:        make([]int, cycles),
		Magnetisation: make([]int, cycles),
		Accepted:      make([]int, cycles),
	}

	accepted := 0
	for k := 0; k < cycles; k++ {
		tr.Energy[k] = e.Energy()
		tr.Magnetisation[k] = e.Magnetisation()
		tr.Accepted[k] = accepted
		if e.TryFlip() == Flipped {
			accepted++
		}
	}
	return tr
}

// EnergyHistogram thermalises e, then records the total energy
// measurements times, thermalising thermSweeps between records.
func EnergyHistogram(e *Engine, thermSweeps, measurements int) map[int]int {
	hist := make(map[int]int)
	e.Thermalise(thermSweeps)
	for k := 0; k < measurements; k++ {
		hist[e.Energy()]++
		e.Thermalise(thermSweeps)
	}
	return hist
}

// SortedEnergies returns the histogram keys in ascending order.
func SortedEnergies(hist map[int]int) []int {
	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
