// Package export renders lattices and 1D profiles as standalone SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/statmech/internal/lattice"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`

// LatticeToSVG draws each up spin as a scale x scale square in upColor on a
// downColor background.
func LatticeToSVG(l *lattice.Lattice, scale int, upColor, downColor string) string {
	if l == nil || scale <= 0 {
		return ""
	}
	w, h := l.Dims()

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, w*scale, h*scale, w*scale, h*scale, downColor)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", upColor)
	for k, s := range l.Cells() {
		if s > 0 {
			fmt.Fprintf(&sb, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\"/>\n",
				(k%w)*scale, (k/w)*scale, scale, scale)
		}
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// ProfileToSVG draws values against their index as a polyline, y scaled to
// the data range with 10% padding.
func ProfileToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	span *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, width, height, width, height, "#0a0a0a")
	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor)

	last := float64(len(values) - 1)
	for i, v := range values {
		x := float64(i) / last * float64(width)
		y := float64(height) - (v-lo)/span*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
