package ising

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/statmech/internal/lattice"
)

// scriptedSource replays fixed draws.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestParseInitMode(t *testing.T) {
	m, err := ParseInitMode("r")
	require.NoError(t, err)
	assert.Equal(t, RandomStart, m)

	m, err = ParseInitMode("u")
	require.NoError(t, err)
	assert.Equal(t, Uniform, m)

	_, err = ParseInitMode("x")
	assert.ErrorIs(t, err, ErrUnknownInitMode)
}

func TestNewUniformBookkeeping(t *testing.T) {
	e := New(2, 1, 1.0, Uniform)
	assert.Equal(t, -8, e.Energy())
	assert.Equal(t, 4, e.Magnetisation())

	e = New(10, 1, 1.0, Uniform)
	assert.Equal(t, -200, e.Energy())
	assert.Equal(t, 100, e.Magnetisation())
}

func TestNewRandomMatchesRecomputation(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		e := New(7, seed, 0.4, RandomStart)
		assert.Equal(t, LatticeEnergy(e.Lattice()), e.Energy())
		assert.Equal(t, e.Lattice().Sum(), e.Magnetisation())
	}
}

func TestBookkeepingAfterFlips(t *testing.T) {
	e := New(6, 42, 0.44, RandomStart)
	for k := 0; k < 5000; k++ {
		e.TryFlip()
		if k%500 == 0 {
			require.Equal(t, LatticeEnergy(e.Lattice()), e.Energy(), "energy after %d flips", k)
			require.Equal(t, e.Lattice().Sum(), e.Magnetisation(), "magnetisation after %d flips", k)
		}
	}
	assert.Equal(t, LatticeEnergy(e.Lattice()), e.Energy())
	assert.Equal(t, e.Lattice().Sum(), e.Magnetisation())
}

func TestTryFlipAcceptsWithZeroDraw(t *testing.T) {
	src := &scriptedSource{ints: []int{0, 0}, floats: []float64{0.0}}
	e := NewWithSource(2, 1.0, Uniform, src)

	code := e.TryFlip()

	assert.Equal(t, Flipped, code)
	assert.Equal(t, -1, e.Lattice().At(0, 0))
	assert.Equal(t, 1, e.Lattice().At(0, 1))
	assert.Equal(t, 1, e.Lattice().At(1, 0))
	assert.Equal(t, 1, e.Lattice().At(1, 1))
	// dE = 2*1*4 = 8
	assert.Equal(t, 0, e.Energy())
	assert.Equal(t, 2, e.Magnetisation())
	assert.Equal(t, LatticeEnergy(e.Lattice()), e.Energy())
}

func TestTryFlipRejectsAboveBoltzmannFactor(t *testing.T) {
	beta := 1.0
	draw := math.Exp(-8*beta) + 1e-6
	src := &scriptedSource{ints: []int{0, 0}, floats: []float64{draw}}
	e := NewWithSource(2, beta, Uniform, src)

	assert.Equal(t, NotFlipped, e.TryFlip())
	assert.Equal(t, 1, e.Lattice().At(0, 0))
	assert.Equal(t, -8, e.Energy())
	assert.Equal(t, 4, e.Magnetisation())
}

func TestTryFlipSkipsDrawWhenEnergyDrops(t *testing.T) {
	// Site (0,0) is -1 among +1 neighbours, so flipping lowers the energy
	// and no uniform draw is consumed.
	src := &scriptedSource{ints: []int{0, 0}}
	e := NewWithSource(3, 1.0, Uniform, src)
	e.Lattice().Set(0, 0, -1)
	e.energy = LatticeEnergy(e.Lattice())
	e.magnetisation = e.Lattice().Sum()

	assert.Equal(t, Flipped, e.TryFlip())
	assert.Equal(t, -18, e.Energy())
	assert.Equal(t, 9, e.Magnetisation())
}

func TestZeroTemperatureNeverRaisesEnergy(t *testing.T) {
	e := New(8, 3, 0.5, RandomStart)
	e.SetTemperature(0)
	require.True(t, math.IsInf(e.Beta(), 1))

	for k := 0; k < 20000; k++ {
		before := e.Energy()
		e.TryFlip()
		require.LessOrEqual(t, e.Energy(), before)
	}
}

func TestZeroTemperatureOrderedStateFrozen(t *testing.T) {
	e := New(4, 9, math.Inf(1), Uniform)
	for k := 0; k < 1000; k++ {
		require.Equal(t, NotFlipped, e.TryFlip())
	}
	assert.Equal(t, -32, e.Energy())
}

func TestInfiniteTemperatureAlwaysAccepts(t *testing.T) {
	e := New(5, 11, 0, Uniform)
	for k := 0; k < 5000; k++ {
		require.Equal(t, Flipped, e.TryFlip())
	}
}

func TestThermaliseCallCount(t *testing.T) {
	src := &countingSource{Source: NewSource(1)}
	e := NewWithSource(3, 0, Uniform, src)
	src.ints = 0

	e.Thermalise(4)

	// two site draws per trial
	assert.Equal(t, 2*4*9, src.ints)
}

type countingSource struct {
	Source
	ints int
}

func (c *countingSource) IntN(n int) int {
	c.ints++
	return c.Source.IntN(n)
}

func TestFindStatisticsSampleCount(t *testing.T) {
	e := New(4, 5, 0.3, RandomStart)
	st := e.FindStatistics(1000, 100)
	assert.Equal(t, 10, st.Samples)
	assert.GreaterOrEqual(t, st.AcceptanceRate, 0.0)
	assert.LessOrEqual(t, st.AcceptanceRate, 1.0)

	st = e.FindStatistics(99, 100)
	assert.Equal(t, 0, st.Samples)
	assert.Zero(t, st.Energy)
}

func TestFindStatisticsFrozenState(t *testing.T) {
	e := New(4, 5, math.Inf(1), Uniform)
	st := e.FindStatistics(1000, 10)

	assert.Equal(t, -32.0, st.Energy)
	assert.Equal(t, 16.0, st.Magnetisation)
	assert.Zero(t, st.AcceptanceRate)
	assert.Equal(t, 100, st.Samples)
}

func TestFindStatisticsCyclesMatchesFlatLoop(t *testing.T) {
	a := New(6, 77, 0.42, RandomStart)
	b := New(6, 77, 0.42, RandomStart)

	sa := a.FindStatistics(50*36, 36)
	sb := b.FindStatisticsCycles(50, 36)

	assert.Equal(t, sa, sb)
	assert.Equal(t, a.Energy(), b.Energy())
}

func TestPerSite(t *testing.T) {
	st := Statistics{Energy: -32, SpecificHeat: 8, Magnetisation: 16, Susceptibility: 4, AcceptanceRate: 0.5, Samples: 3}
	ps := st.PerSite(16)
	assert.Equal(t, -2.0, ps.Energy)
	assert.Equal(t, 0.5, ps.SpecificHeat)
	assert.Equal(t, 1.0, ps.Magnetisation)
	assert.Equal(t, 0.25, ps.Susceptibility)
	assert.Equal(t, 0.5, ps.AcceptanceRate)
	assert.Equal(t, 3, ps.Samples)

	assert.Equal(t, st, st.PerSite(0))
}

func TestAcceptanceMatchesExact2x2(t *testing.T) {
	beta := 1 / 2.5
	exact, err := Exact(2, beta)
	require.NoError(t, err)

	e := New(2, 2024, beta, RandomStart)
	e.Thermalise(1000)
	st := e.FindStatistics(2_000_000, 1)

	assert.InDelta(t, exact.AcceptanceRate, st.AcceptanceRate, 0.01)
	assert.InDelta(t, exact.Energy, st.Energy, 0.1)
	assert.InDelta(t, exact.Magnetisation, st.Magnetisation, 0.1)
	assert.InDelta(t, exact.SpecificHeat, st.SpecificHeat, 0.1*exact.SpecificHeat+0.05)
	assert.InDelta(t, exact.Susceptibility, st.Susceptibility, 0.1*exact.Susceptibility+0.05)
}

func TestSameSeedReproducible(t *testing.T) {
	a := New(8, 123, 0.4, RandomStart)
	b := New(8, 123, 0.4, RandomStart)
	a.Thermalise(10)
	b.Thermalise(10)
	assert.Equal(t, a.Lattice().Cells(), b.Lattice().Cells())
	assert.Equal(t, a.Energy(), b.Energy())
}

func TestInvalidDimensionPanics(t *testing.T) {
	assert.Panics(t, func() { New(0, 1, 1, RandomStart) })
	assert.Panics(t, func() { New(-3, 1, 1, Uniform) })
	assert.Panics(t, func() { New(3, 1, 1, InitMode('x')) })
}

func TestFlipCodeString(t *testing.T) {
	assert.Equal(t, "flipped", Flipped.String())
	assert.Equal(t, "not_flipped", NotFlipped.String())
}

func TestLatticeEnergyCheckerboard(t *testing.T) {
	l := lattice.NewSquare(4, lattice.Ones, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if (i+j)%2 == 1 {
				l.Set(i, j, -1)
			}
		}
	}
	assert.Equal(t, 32, LatticeEnergy(l))
}

func BenchmarkTryFlip(b *testing.B) {
	e := New(40, 1, 1/2.269, RandomStart)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.TryFlip()
	}
}

func BenchmarkThermalise20(b *testing.B) {
	e := New(20, 1, 1/2.269, RandomStart)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Thermalise(1)
	}
}
