package diffusion

import (
	"math/rand/v2"
	"time"
)

// IntSource draws uniform integers in [0, n).
type IntSource interface {
	IntN(n int) int
}

// MonteCarloStep moves every particle one bin left or right. The number of
// right movers in a bin holding N particles is uniform on {0, ..., N}.
// Particles leaving either end are lost.
func MonteCarloStep(bins []int, rng IntSource) []int {
	n := len(bins)
	out := make([]int, n)
	for i, count := range bins {
		rights := rng.IntN(count + 1)
		lefts := count - rights
		if i != n-1 {
			out[i+1] += rights
		}
		if i != 0 {
			out[i-1] += lefts
		}
	}
	return out
}

// MonteCarlo runs steps random-walk steps from a time-seeded stream. After
// each step the first bin is refilled to fill and the last bin emptied.
func MonteCarlo(bins []int, steps, fill int) []int {
	return MonteCarloWithSource(bins, steps, fill, NewSource(time.Now().UnixNano()))
}

// MonteCarloWithSource is MonteCarlo drawing from rng.
func MonteCarloWithSource(bins []int, steps, fill int, rng IntSource) []int {
	v := make([]int, len(bins))
	copy(v, bins)
	if len(v) == 0 {
		return v
	}
	for k := 0; k < steps; k++ {
		v = MonteCarloStep(v, rng)
		v[0] = fill
		v[len(v)-1] = 0
	}
	return v
}

// NewSource returns a PCG stream for MonteCarloWithSource.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
