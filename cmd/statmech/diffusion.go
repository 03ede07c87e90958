package main

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/statmech/internal/diffusion"
	"github.com/san-kum/statmech/internal/export"
	"github.com/san-kum/statmech/internal/storage"
	"github.com/san-kum/statmech/internal/viz"
)

func newDiffuseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diffuse",
		Short: "solve u_t = u_xx on [0, 1] from a step at x = 0",
		Args:  cobra.NoArgs,
		RunE:  runDiffuse,
	}
	cmd.Flags().String("scheme", "", "fe, be or cn")
	cmd.Flags().Float64("alpha", 0, "dt/dx^2")
	cmd.Flags().Int("steps", 0, "time steps")
	cmd.Flags().Int("points", 0, "grid points including both ends")
	cmd.Flags().Bool("plot", false, "plot the final profile")
	cmd.Flags().String("file", "", "also write the profile to this file in --out")
	cmd.Flags().String("svg", "", "also draw the profile to this SVG file in --out")
	return cmd
}

func runDiffuse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dc := &cfg.Diffusion
	if cmd.Flags().Changed("scheme") {
		dc.Scheme, _ = cmd.Flags().GetString("scheme")
	}
	overrideFloat(cmd, "alpha", &dc.Alpha)
	overrideInt(cmd, "steps", &dc.Steps)
	overrideInt(cmd, "points", &dc.Points)
	if err := cfg.Validate(); err != nil {
		return err
	}

	scheme, err := diffusion.ParseScheme(dc.Scheme)
	if err != nil {
		return err
	}
	if scheme == diffusion.SchemeForwardEuler && dc.Alpha > 0.5 {
		logrus.Warnf("forward euler with alpha=%g > 0.5 is unstable", dc.Alpha)
	}

	u, err := diffusion.Solve(scheme, diffusion.StepInitial(dc.Points, 1), dc.Alpha, dc.Steps)
	if err != nil {
		return err
	}

	dx := 1 / float64(dc.Points-1)
	t := dc.Alpha * dx * dx * float64(dc.Steps)
	exact := diffusion.AnalyticProfile(dc.Points, t, 1000)
	maxErr := 0.0
	for i := range u {
		maxErr = math.Max(maxErr, math.Abs(u[i]-exact[i]))
	}
	logrus.Infof("%s: t=%g, max deviation from series solution %.3g", scheme, t, maxErr)

	out := cmd.OutOrStdout()
	if err := storage.EncodeFloats(out, u); err != nil {
		return err
	}
	if plot, _ := cmd.Flags().GetBool("plot"); plot {
		fmt.Fprintln(out, viz.PlotProfile(u, fmt.Sprintf("u(x, t=%.4g) [%s]", t, scheme)))
	}
	if name, _ := cmd.Flags().GetString("file"); name != "" {
		meta := storage.RunMetadata{
			Command: "diffuse",
			Params:  map[string]float64{"alpha": dc.Alpha, "steps": float64(dc.Steps), "t": t},
		}
		if _, err := newStore().SaveFloats(name, meta, u); err != nil {
			return err
		}
	}
	if name, _ := cmd.Flags().GetString("svg"); name != "" {
		st := newStore()
		if err := st.Init(); err != nil {
			return err
		}
		svg := export.ProfileToSVG(u, 600, 300, "#00ccff")
		if err := os.WriteFile(st.Path(name), []byte(svg), 0644); err != nil {
			return err
		}
	}
	return nil
}

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "random-walk particles between a source and a sink",
		Args:  cobra.NoArgs,
		RunE:  runWalk,
	}
	cmd.Flags().Int("bins", 0, "number of bins")
	cmd.Flags().Int("steps", 0, "walk steps")
	cmd.Flags().Int("fill", 0, "particles held in the source bin")
	cmd.Flags().Bool("plot", false, "plot the final bins")
	cmd.Flags().String("file", "", "also write the bins to this file in --out")
	return cmd
}

func runWalk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	wc := &cfg.Walk
	overrideInt(cmd, "bins", &wc.Bins)
	overrideInt(cmd, "steps", &wc.Steps)
	overrideInt(cmd, "fill", &wc.Fill)
	if err := cfg.Validate(); err != nil {
		return err
	}

	bins := make([]int, wc.Bins)
	bins[0] = wc.Fill

	s := resolveSeed(cmd, cfg)
	rng := diffusion.NewSource(s)
	final := diffusion.MonteCarloWithSource(bins, wc.Steps, wc.Fill, rng)

	out := cmd.OutOrStdout()
	if err := storage.EncodeInts(out, final); err != nil {
		return err
	}
	if plot, _ := cmd.Flags().GetBool("plot"); plot {
		profile := make([]float64, len(final))
		for i, c := range final {
			profile[i] = float64(c) / float64(max(wc.Fill, 1))
		}
		fmt.Fprintln(out, viz.PlotProfile(profile, fmt.Sprintf("bin density after %d steps", wc.Steps)))
	}
	if name, _ := cmd.Flags().GetString("file"); name != "" {
		meta := storage.RunMetadata{
			Command: "walk",
			Seed:    s,
			Params:  map[string]float64{"steps": float64(wc.Steps), "fill": float64(wc.Fill)},
		}
		if _, err := newStore().SaveInts(name, meta, final); err != nil {
			return err
		}
	}
	return nil
}
