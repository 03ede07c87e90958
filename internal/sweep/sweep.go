// Package sweep runs independent Ising simulations over a temperature grid.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/statmech/internal/ising"
)

var (
	// ErrTooFewPoints indicates a grid with fewer than two samples.
	ErrTooFewPoints = errors.New("sweep: need at least two temperature points")

	// ErrNonPositiveTemperature indicates a grid that includes T <= 0.
	ErrNonPositiveTemperature = errors.New("sweep: temperatures must be positive")
)

// Linspace returns n uniformly spaced values from t0 to t1 inclusive.
func Linspace(t0, t1 float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooFewPoints)
	}
	dt := (t1 - t0) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + dt*float64(i)
	}
	return out, nil
}

// Config describes one sweep. Task i is seeded with BaseSeed+i.
type Config struct {
	Dim           int
	TMin          float64
	TMax          float64
	Points        int
	BaseSeed      int64
	ThermSweeps   int
	Cycles        int
	FlipsPerCycle int
	// Workers bounds concurrent tasks; <= 0 uses runtime.NumCPU().
	Workers int
}

// Point is the outcome at one temperature. Statistics are lattice totals.
type Point struct {
	Index       int
	Temperature float64
	Seed        int64
	Stats       ising.Statistics
}

// Run executes the sweep. Tasks share no state; each writes only its own
// slot of the result slice. The context is checked before a task starts.
func Run(ctx context.Context, cfg Config) ([]Point, error) {
	temps, err := Linspace(cfg.TMin, cfg.TMax, cfg.Points)
	if err != nil {
		return nil, err
	}
	for _, t := range temps {
		if t <= 0 {
			return nil, fmt.Errorf("T=%g: %w", t, ErrNonPositiveTemperature)
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	points := make([]Point, len(temps))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range temps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			points[i] = runPoint(cfg, i, t)
			logrus.Debugf("sweep point %d/%d T=%.4f done (acceptance %.4f)",
				i+1, len(temps), t, points[i].Stats.AcceptanceRate)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func runPoint(cfg Config, idx int, t float64) Point {
	seed := cfg.BaseSeed + int64(idx)
	e := ising.New(cfg.Dim, seed, 1/t, ising.RandomStart)
	e.Thermalise(cfg.ThermSweeps)
	return Point{
		Index:       idx,
		Temperature: t,
		Seed:        seed,
		Stats:       e.FindStatisticsCycles(cfg.Cycles, cfg.FlipsPerCycle),
	}
}
