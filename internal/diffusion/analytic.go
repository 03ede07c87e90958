package diffusion

import "math"

// Analytic evaluates the series solution on [0, 1] for u(0,t) = 1,
// u(1,t) = 0 and u(x,0) = 0 for 0 < x <= 1, truncated after terms modes.
func Analytic(x, t float64, terms int) float64 {
	u := 1 - x
	for n := 1; n <= terms; n++ {
		k := float64(n) * math.Pi
		u -= 2 / k * math.Sin(k*x) * math.Exp(-k*k*t)
	}
	return u
}

// AnalyticProfile samples Analytic on a uniform grid of points nodes.
func AnalyticProfile(points int, t float64, terms int) []float64 {
	v := make([]float64, points)
	if points == 1 {
		v[0] = 1
		return v
	}
	dx := 1 / float64(points-1)
	for i := range v {
		v[i] = Analytic(float64(i)*dx, t, terms)
	}
	return v
}
