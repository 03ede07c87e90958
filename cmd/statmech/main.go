package main

import (
	"fmt"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/statmech/internal/config"
	"github.com/san-kum/statmech/internal/storage"
)

var (
	logLevel   string
	configFile string
	preset     string
	outDir     string
	seed       int64
)

// main registers the subcommands and executes the root command, exiting
// with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "statmech",
		Short:         "Ising model and diffusion simulation lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&outDir, "out", ".", "output directory")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}
	presetsCmd.Flags().String("dump", "", "write the resolved --preset/--config settings to this YAML file")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list files written to the output directory",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	rootCmd.AddCommand(
		newSampleCmd(), newTraceCmd(), newHistogramCmd(), newSweepCmd(),
		newDiffuseCmd(), newWalkCmd(),
		newPlotCmd(), newWatchCmd(), newSnapshotCmd(),
		presetsCmd, runsCmd,
	)
	return rootCmd
}

// loadConfig resolves the preset, then the config file, into one Config.
// A config file replaces a preset.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		cfg = p
	}
	if configFile != "" {
		if preset != "" {
			logrus.Warnf("--config %s overrides --preset %s", configFile, preset)
		}
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}
	return cfg, nil
}

// resolveSeed prefers --seed, then the config seed, then the clock.
func resolveSeed(cmd *cobra.Command, cfg *config.Config) int64 {
	if cmd.Flags().Changed("seed") && seed != 0 {
		return seed
	}
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func newStore() *storage.Store {
	return storage.New(outDir)
}

func parseTemperature(s string) (float64, error) {
	t, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("temperature %q: %w", s, err)
	}
	if t <= 0 {
		return 0, fmt.Errorf("temperature must be positive, got %g", t)
	}
	return t, nil
}

func parsePositiveInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return n, nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("dump"); path != "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		logrus.Infof("wrote settings to %s", path)
		return nil
	}

	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPOINTS\tT RANGE\tTHERM\tCYCLES\tTRACE")
	for _, name := range names {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.2f-%.2f\t%d\t%d\t%d\n",
			name,
			p.Sweep.Points,
			p.Sweep.TMin, p.Sweep.TMax,
			p.Sweep.ThermSweeps,
			p.Sweep.Cycles,
			p.Trace.Cycles,
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := newStore().List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tCOMMAND\tTIME\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.File,
			run.Command,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
		)
	}
	return w.Flush()
}
