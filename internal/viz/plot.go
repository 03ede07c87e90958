package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/statmech/internal/analysis"
)

// PlotSeries draws one line chart, or an empty string for fewer than two
// values.
func PlotSeries(data []float64, caption string, width, height int) string {
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotSweep stacks the energy, magnetisation, specific heat and
// susceptibility curves of a sweep, x axis from T[0] to T[n-1].
func PlotSweep(s analysis.Series, width, height int) string {
	if len(s.Temperature) < 2 {
		return ""
	}
	t0, t1 := s.Temperature[0], s.Temperature[len(s.Temperature)-1]
	panels := []struct {
		name string
		data []float64
	}{
		{"E", s.Energy},
		{"|M|", s.Magnetisation},
		{"Cv", s.SpecificHeat},
		{"chi", s.Susceptibility},
	}

	var b strings.Builder
	for _, p := range panels {
		caption := fmt.Sprintf("%s vs T (%.3f .. %.3f)", p.name, t0, t1)
		b.WriteString(PlotSeries(p.data, caption, width, height))
		b.WriteString("\n\n")
	}
	return b.String()
}

// PlotProfile draws a 1D profile such as a diffusion solution or walk bins.
func PlotProfile(v []float64, caption string) string {
	return PlotSeries(v, caption, 60, 10)
}
