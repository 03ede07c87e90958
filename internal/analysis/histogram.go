package analysis

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrEmpty indicates input with no samples.
var ErrEmpty = errors.New("analysis: no samples")

// HistogramMoments summarises an energy histogram.
type HistogramMoments struct {
	Mean     float64
	Variance float64
	Count    int
}

// SpecificHeat is beta² times the variance, the fluctuation estimate of Cv.
func (m HistogramMoments) SpecificHeat(beta float64) float64 {
	return beta * beta * m.Variance
}

// Moments computes the count-weighted mean and population variance of hist,
// keyed by total energy. The variance is <E²> - <E>², the same estimator
// the engine uses for its specific heat.
func Moments(hist map[int]int) (HistogramMoments, error) {
	keys := make([]int, 0, len(hist))
	count := 0
	for k, c := range hist {
		if c <= 0 {
			continue
		}
		keys = append(keys, k)
		count += c
	}
	if count == 0 {
		return HistogramMoments{}, ErrEmpty
	}
	sort.Ints(keys)

	x := make([]float64, len(keys))
	w := make([]float64, len(keys))
	for i, k := range keys {
		x[i] = float64(k)
		w[i] = float64(hist[k])
	}

	mean, variance := stat.PopMeanVariance(x, w)
	return HistogramMoments{Mean: mean, Variance: variance, Count: count}, nil
}
