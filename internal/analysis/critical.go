package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/statmech/internal/sweep"
)

// Series holds the sweep observables column-wise, ordered by point index.
type Series struct {
	Temperature    []float64
	Energy         []float64
	Magnetisation  []float64
	SpecificHeat   []float64
	Susceptibility []float64
	AcceptanceRate []float64
}

// Columns splits points into per-observable slices.
func Columns(points []sweep.Point) Series {
	n := len(points)
	s := Series{
		Temperature:    make([]float64, n),
		Energy:         make([]float64, n),
		Magnetisation:  make([]float64, n),
		SpecificHeat:   make([]float64, n),
		Susceptibility: make([]float64, n),
		AcceptanceRate: make([]float64, n),
	}
	for i, p := range points {
		s.Temperature[i] = p.Temperature
		s.Energy[i] = p.Stats.Energy
		s.Magnetisation[i] = p.Stats.Magnetisation
		s.SpecificHeat[i] = p.Stats.SpecificHeat
		s.Susceptibility[i] = p.Stats.Susceptibility
		s.AcceptanceRate[i] = p.Stats.AcceptanceRate
	}
	return s
}

// Estimate locates the finite-size critical temperature from the peaks of
// Cv and chi.
type Estimate struct {
	SpecificHeatPeak   float64
	SusceptibilityPeak float64
	SpecificHeatMax    float64
	SusceptibilityMax  float64
}

// Mean averages the two peak temperatures.
func (e Estimate) Mean() float64 {
	return (e.SpecificHeatPeak + e.SusceptibilityPeak) / 2
}

func (e Estimate) String() string {
	return fmt.Sprintf("Tc(Cv)=%.4f Tc(chi)=%.4f", e.SpecificHeatPeak, e.SusceptibilityPeak)
}

// Critical returns the grid temperatures at which Cv and chi are largest.
func Critical(points []sweep.Point) (Estimate, error) {
	if len(points) == 0 {
		return Estimate{}, ErrEmpty
	}
	s := Columns(points)
	ic := floats.MaxIdx(s.SpecificHeat)
	ix := floats.MaxIdx(s.Susceptibility)
	return Estimate{
		SpecificHeatPeak:   s.Temperature[ic],
		SusceptibilityPeak: s.Temperature[ix],
		SpecificHeatMax:    s.SpecificHeat[ic],
		SusceptibilityMax:  s.Susceptibility[ix],
	}, nil
}
