package ising

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTrace(t *testing.T) {
	e := New(5, 8, 0.3, RandomStart)
	start := e.Energy()

	tr := RecordTrace(e, 2000)

	require.Equal(t, 2000, tr.Len())
	assert.Equal(t, start, tr.Energy[0])
	assert.Zero(t, tr.Accepted[0])
	for k := 1; k < tr.Len(); k++ {
		step := tr.Accepted[k] - tr.Accepted[k-1]
		require.Contains(t, []int{0, 1}, step)
		if step == 0 {
			require.Equal(t, tr.Energy[k-1], tr.Energy[k])
			require.Equal(t, tr.Magnetisation[k-1], tr.Magnetisation[k])
		}
	}
}

func TestRecordTraceFrozen(t *testing.T) {
	e := New(3, 8, math.Inf(1), Uniform)
	tr := RecordTrace(e, 50)
	for k := range tr.Energy {
		assert.Equal(t, -18, tr.Energy[k])
		assert.Equal(t, 9, tr.Magnetisation[k])
		assert.Zero(t, tr.Accepted[k])
	}
}

func TestEnergyHistogram(t *testing.T) {
	e := New(4, 1, 1/2.4, RandomStart)
	hist := EnergyHistogram(e, 5, 200)

	total := 0
	for energy, count := range hist {
		assert.Zero(t, energy%4, "4×4 energies are multiples of 4")
		total += count
	}
	assert.Equal(t, 200, total)

	keys := SortedEnergies(hist)
	for k := 1; k < len(keys); k++ {
		assert.Less(t, keys[k-1], keys[k])
	}
}
