package viz

import (
	"strings"

	"github.com/san-kum/statmech/internal/lattice"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// CanvasFor sizes a canvas to hold one dot per site of l.
func CanvasFor(l *lattice.Lattice) *Canvas {
	w, h := l.Dims()
	return NewCanvas((w+1)/2, (h+3)/4)
}

// Set lights the dot at sub-pixel (x, y). The canvas spans
// (Width*2) x (Height*4) sub-pixels; out of range is ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLattice clears the canvas and lights every up spin; row i of the
// lattice is sub-pixel y = i.
func (c *Canvas) DrawLattice(l *lattice.Lattice) {
	c.Clear()
	w, h := l.Dims()
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if l.At(i, j) > 0 {
				c.Set(j, i)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
