// Package lattice provides a periodic two-dimensional grid of spins.
//
// Every read and write wraps around both axes using mathematical modulo, so
// any integer coordinate is valid:
//
//	l := lattice.New(4, 4, lattice.Ones, nil)
//	l.At(-1, 5) == l.At(3, 1)
//
// # Thread Safety
//
// Lattice instances are NOT thread-safe. Each simulation owns its lattice.
package lattice

import "fmt"

// InitMode selects how a new lattice is filled.
type InitMode int

const (
	// Ones sets every cell to +1.
	Ones InitMode = iota
	// Random sets every cell independently to +1 or -1 with equal probability.
	Random
)

func (m InitMode) String() string {
	switch m {
	case Ones:
		return "ones"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("InitMode(%d)", int(m))
	}
}

// IntSource is the subset of a random stream needed to fill a lattice.
type IntSource interface {
	IntN(n int) int
}

// Lattice stores W×H spins in row-major order with periodic boundaries.
type Lattice struct {
	w, h  int
	cells []int
}

// New allocates a w×h lattice. rng is only consulted for Random and may be
// nil for Ones. Non-positive dimensions panic.
func New(w, h int, mode InitMode, rng IntSource) *Lattice {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("lattice: invalid dimensions %dx%d", w, h))
	}
	l := &Lattice{w: w, h: h, cells: make([]int, w*h)}
	switch mode {
	case Random:
		if rng == nil {
			panic("lattice: random fill requires a source")
		}
		for i := range l.cells {
			l.cells[i] = 2*rng.IntN(2) - 1
		}
	default:
		for i := range l.cells {
			l.cells[i] = 1
		}
	}
	return l
}

// NewSquare allocates a dim×dim lattice.
func NewSquare(dim int, mode InitMode, rng IntSource) *Lattice {
	return New(dim, dim, mode, rng)
}

// Dims returns width and height.
func (l *Lattice) Dims() (w, h int) { return l.w, l.h }

// Len is the number of cells.
func (l *Lattice) Len() int { return len(l.cells) }

func wrap(i, n int) int {
	return (i%n + n) % n
}

// index maps row i and column j onto the backing slice.
func (l *Lattice) index(i, j int) int {
	return wrap(i, l.h)*l.w + wrap(j, l.w)
}

// At returns the spin at row i, column j.
func (l *Lattice) At(i, j int) int { return l.cells[l.index(i, j)] }

// Set stores v at row i, column j.
func (l *Lattice) Set(i, j, v int) { l.cells[l.index(i, j)] = v }

// Flip negates the spin at (i, j) and returns its previous value.
func (l *Lattice) Flip(i, j int) int {
	k := l.index(i, j)
	old := l.cells[k]
	l.cells[k] = -old
	return old
}

// NeighbourSum is the sum of the four periodic nearest neighbours of (i, j).
func (l *Lattice) NeighbourSum(i, j int) int {
	return l.At(i-1, j) + l.At(i+1, j) + l.At(i, j-1) + l.At(i, j+1)
}

// Sum returns the total of all cells.
func (l *Lattice) Sum() int {
	s := 0
	for _, v := range l.cells {
		s += v
	}
	return s
}

// Cells exposes the backing slice in row-major order, cell (i, j) at
// i*w + j. Callers must not modify it.
func (l *Lattice) Cells() []int { return l.cells }
