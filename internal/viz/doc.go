// Package viz renders Ising lattices and sweep results in the terminal.
//
//   - [Model]: Bubble Tea lattice viewer that runs Metropolis sweeps live
//   - [Canvas]: Braille canvas, one dot per spin, for large lattices
//   - [PlotSweep]: asciigraph charts of the sweep observables
//   - Theme selection with 4 built-in spin palettes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single frame while paused
//	+/-   - Raise/lower temperature by 0.05
//	R     - Reseed the lattice
//	B     - Toggle Braille/colour blocks
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
