package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/statmech/internal/analysis"
	"github.com/san-kum/statmech/internal/export"
	"github.com/san-kum/statmech/internal/ising"
	"github.com/san-kum/statmech/internal/storage"
	"github.com/san-kum/statmech/internal/sweep"
	"github.com/san-kum/statmech/internal/viz"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "b <T>",
		Short: "sample one temperature on a small lattice, print E M Cv chi",
		Args:  cobra.ExactArgs(1),
		RunE:  runSample,
	}
	cmd.Flags().Int("dim", 0, "lattice size")
	cmd.Flags().Int("steps", 0, "flip attempts while sampling")
	cmd.Flags().Int("every", 0, "attempts between measurements")
	cmd.Flags().Int("therm", 0, "thermalisation sweeps")
	return cmd
}

func runSample(cmd *cobra.Command, args []string) error {
	t, err := parseTemperature(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sc := &cfg.Sample
	overrideInt(cmd, "dim", &sc.Dim)
	overrideInt(cmd, "steps", &sc.Steps)
	overrideInt(cmd, "every", &sc.MeasureEvery)
	overrideInt(cmd, "therm", &sc.ThermSweeps)
	if err := cfg.Validate(); err != nil {
		return err
	}

	s := resolveSeed(cmd, cfg)
	e := ising.New(sc.Dim, s, 1/t, ising.RandomStart)
	e.Thermalise(sc.ThermSweeps)
	st := e.FindStatistics(sc.Steps, sc.MeasureEvery)
	logrus.Infof("T=%g dim=%d seed=%d samples=%d acceptance=%.4f", t, sc.Dim, s, st.Samples, st.AcceptanceRate)
	if sc.Dim <= ising.MaxExactDim {
		if ex, err := ising.Exact(sc.Dim, 1/t); err == nil {
			logrus.Infof("exact: E=%.5g M=%.5g Cv=%.5g chi=%.5g acceptance=%.4f",
				ex.Energy, ex.Magnetisation, ex.SpecificHeat, ex.Susceptibility, ex.AcceptanceRate)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join([]string{
		storage.FormatFloat(st.Energy),
		storage.FormatFloat(st.Magnetisation),
		storage.FormatFloat(st.SpecificHeat),
		storage.FormatFloat(st.Susceptibility),
	}, " "))
	return nil
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "c <T>",
		Short: "record relaxation from ordered and random starts",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	cmd.Flags().Int("dim", 0, "lattice size")
	cmd.Flags().Int("cycles", 0, "flip attempts to record")
	cmd.Flags().String("file", storage.DefaultFile, "output file name")
	cmd.Flags().Bool("swap-acceptance", false, "write each run's acceptance row with the other run's E and M rows")
	return cmd
}

func runTrace(cmd *cobra.Command, args []string) error {
	t, err := parseTemperature(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tc := &cfg.Trace
	overrideInt(cmd, "dim", &tc.Dim)
	overrideInt(cmd, "cycles", &tc.Cycles)
	name, _ := cmd.Flags().GetString("file")
	if err := cfg.Validate(); err != nil {
		return err
	}

	s := resolveSeed(cmd, cfg)
	random := ising.New(tc.Dim, s, 1/t, ising.RandomStart)
	ordered := ising.New(tc.Dim, s+1, 1/t, ising.Uniform)
	rt := ising.RecordTrace(random, tc.Cycles)
	ot := ising.RecordTrace(ordered, tc.Cycles)
	if swap, _ := cmd.Flags().GetBool("swap-acceptance"); swap {
		ot.Accepted, rt.Accepted = rt.Accepted, ot.Accepted
	}

	meta := storage.RunMetadata{
		Command: "c",
		Seed:    s,
		Params:  map[string]float64{"T": t, "dim": float64(tc.Dim), "cycles": float64(tc.Cycles)},
	}
	path, err := newStore().SaveTraces(name, meta, ot, rt)
	if err != nil {
		return err
	}
	logrus.Infof("wrote %d-step traces to %s", tc.Cycles, path)
	return nil
}

func newHistogramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "d <T> <Nmeasurements>",
		Short: "print the equilibrium energy histogram as E,count pairs",
		Args:  cobra.ExactArgs(2),
		RunE:  runHistogram,
	}
	cmd.Flags().Int("dim", 0, "lattice size")
	cmd.Flags().Int("therm", 0, "sweeps before and between measurements")
	return cmd
}

func runHistogram(cmd *cobra.Command, args []string) error {
	t, err := parseTemperature(args[0])
	if err != nil {
		return err
	}
	n, err := parsePositiveInt("Nmeasurements", args[1])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	hc := &cfg.Histogram
	overrideInt(cmd, "dim", &hc.Dim)
	overrideInt(cmd, "therm", &hc.ThermSweeps)
	if err := cfg.Validate(); err != nil {
		return err
	}

	e := ising.New(hc.Dim, resolveSeed(cmd, cfg), 1/t, ising.RandomStart)
	hist := ising.EnergyHistogram(e, hc.ThermSweeps, n)
	if err := storage.EncodeHistogram(cmd.OutOrStdout(), hist); err != nil {
		return err
	}

	if m, err := analysis.Moments(hist); err == nil {
		sites := float64(e.Sites())
		logrus.Infof("<E>/N=%.5f var(E)/N=%.5f Cv/N=%.5f over %d samples",
			m.Mean/sites, m.Variance/sites, m.SpecificHeat(1/t)/sites, m.Count)
	}
	return nil
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "e <dim>",
		Short: "parallel temperature sweep around the critical point",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	cmd.Flags().Int("points", 0, "temperature points")
	cmd.Flags().Float64("tmin", 0, "lowest temperature")
	cmd.Flags().Float64("tmax", 0, "highest temperature")
	cmd.Flags().Int("therm", 0, "thermalisation sweeps per point")
	cmd.Flags().Int("cycles", 0, "measurement cycles per point")
	cmd.Flags().Int("workers", 0, "concurrent points (0 = NumCPU)")
	cmd.Flags().String("file", storage.DefaultFile, "output file name")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	dim, err := parsePositiveInt("dim", args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sc := &cfg.Sweep
	overrideInt(cmd, "points", &sc.Points)
	overrideFloat(cmd, "tmin", &sc.TMin)
	overrideFloat(cmd, "tmax", &sc.TMax)
	overrideInt(cmd, "therm", &sc.ThermSweeps)
	overrideInt(cmd, "cycles", &sc.Cycles)
	overrideInt(cmd, "workers", &cfg.Workers)
	name, _ := cmd.Flags().GetString("file")
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	base := resolveSeed(cmd, cfg)
	logrus.Infof("sweeping %d points in [%g, %g] on %dx%d, base seed %d", sc.Points, sc.TMin, sc.TMax, dim, dim, base)
	points, err := sweep.Run(ctx, sweep.Config{
		Dim:           dim,
		TMin:          sc.TMin,
		TMax:          sc.TMax,
		Points:        sc.Points,
		BaseSeed:      base,
		ThermSweeps:   sc.ThermSweeps,
		Cycles:        sc.Cycles,
		FlipsPerCycle: sc.FlipsPerCycle,
		Workers:       cfg.Workers,
	})
	if err != nil {
		return err
	}

	meta := storage.RunMetadata{
		Command: "e",
		Seed:    base,
		Params: map[string]float64{
			"dim":    float64(dim),
			"therm":  float64(sc.ThermSweeps),
			"cycles": float64(sc.Cycles),
		},
	}
	path, err := newStore().SaveSweep(name, meta, points)
	if err != nil {
		return err
	}
	logrus.Infof("wrote sweep table to %s", path)

	if est, err := analysis.Critical(points); err == nil {
		logrus.Infof("%s", est)
	}
	return nil
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot <T>",
		Short: "thermalise a lattice and save it as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	cmd.Flags().Int("dim", 0, "lattice size")
	cmd.Flags().Int("therm", 0, "thermalisation sweeps")
	cmd.Flags().Int("scale", 8, "pixels per spin")
	cmd.Flags().String("theme", viz.ThemeClassic.Name, "color theme")
	cmd.Flags().String("file", "lattice.svg", "output file name")
	return cmd
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	t, err := parseTemperature(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	overrideInt(cmd, "dim", &cfg.Watch.Dim)
	overrideInt(cmd, "therm", &cfg.Histogram.ThermSweeps)
	if err := cfg.Validate(); err != nil {
		return err
	}
	dim, therm := cfg.Watch.Dim, cfg.Histogram.ThermSweeps
	scale, _ := cmd.Flags().GetInt("scale")
	themeName, _ := cmd.Flags().GetString("theme")
	name, _ := cmd.Flags().GetString("file")

	s := resolveSeed(cmd, cfg)
	e := ising.New(dim, s, 1/t, ising.RandomStart)
	e.Thermalise(therm)

	theme := viz.GetTheme(themeName)
	svg := export.LatticeToSVG(e.Lattice(), scale, string(theme.Up), string(theme.Down))
	st := newStore()
	if err := st.Init(); err != nil {
		return err
	}
	path := st.Path(name)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	logrus.Infof("T=%g E/N=%.4f M/N=%+.4f, wrote %s", t,
		float64(e.Energy())/float64(e.Sites()), float64(e.Magnetisation())/float64(e.Sites()), path)
	return nil
}

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <sweep-file>",
		Short: "plot a sweep table and estimate Tc",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	cmd.Flags().Int("width", 80, "plot width")
	cmd.Flags().Int("height", 10, "plot height")
	return cmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	points, err := newStore().LoadSweep(args[0])
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	out := cmd.OutOrStdout()
	fmt.Fprint(out, viz.PlotSweep(analysis.Columns(points), width, height))
	est, err := analysis.Critical(points)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s  mean %.4f\n", est, est.Mean())
	return nil
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "watch the lattice evolve in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}
	cmd.Flags().Int("dim", 0, "lattice size")
	cmd.Flags().Float64("temp", 0, "initial temperature")
	cmd.Flags().Int("speed", 0, "sweeps per frame")
	cmd.Flags().String("theme", viz.ThemeClassic.Name, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	wc := &cfg.Watch
	overrideInt(cmd, "dim", &wc.Dim)
	overrideFloat(cmd, "temp", &wc.Temperature)
	overrideInt(cmd, "speed", &wc.SweepsPerFrame)
	if err := cfg.Validate(); err != nil {
		return err
	}
	theme, _ := cmd.Flags().GetString("theme")

	m := viz.NewModel(wc.Dim, wc.Temperature, resolveSeed(cmd, cfg), wc.SweepsPerFrame).
		WithTheme(viz.GetTheme(theme))
	return viz.Run(m)
}

func overrideInt(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}

func overrideFloat(cmd *cobra.Command, name string, dst *float64) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetFloat64(name)
	}
}
