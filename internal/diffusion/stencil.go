package diffusion

// MultiplyInPlace applies the symmetric tridiagonal operator with a on the
// diagonal and b off the diagonal to the interior of v. v[0] and v[len-1]
// are fixed boundary values and act only as neighbours.
func MultiplyInPlace(v []float64, a, b float64) {
	n := len(v)
	if n < 3 {
		return
	}
	prev := v[0]
	for i := 1; i < n-1; i++ {
		cur := v[i]
		v[i] = b*prev + a*cur + b*v[i+1]
		prev = cur
	}
}

// SolveInPlace replaces the interior of v with the solution u of
//
//	b*u[i-1] + a*u[i] + b*u[i+1] = v[i],  0 < i < n-1
//
// where u[0] = v[0] and u[n-1] = v[n-1] are the fixed boundary values.
// The system is solved with the Thomas algorithm; it is diagonally dominant
// for every scheme in this package.
func SolveInPlace(v []float64, a, b float64) {
	n := len(v)
	if n < 3 {
		return
	}
	m := n - 2
	c := make([]float64, m)
	d := make([]float64, m)

	rhs := func(i int) float64 {
		r := v[i]
		if i == 1 {
			r -= b * v[0]
		}
		if i == n-2 {
			r -= b * v[n-1]
		}
		return r
	}

	c[0] = b / a
	d[0] = rhs(1) / a
	for k := 1; k < m; k++ {
		denom := a - b*c[k-1]
		c[k] = b / denom
		d[k] = (rhs(k+1) - b*d[k-1]) / denom
	}

	v[m] = d[m-1]
	for k := m - 2; k >= 0; k-- {
		v[k+1] = d[k] - c[k]*v[k+2]
	}
}
