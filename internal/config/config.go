package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/statmech/internal/diffusion"
)

const (
	DefaultDim           = 20
	DefaultThermSweeps   = 5000
	DefaultCycles        = 1000
	DefaultFlipsPerCycle = 100
	DefaultTMin          = 2.0
	DefaultTMax          = 2.4
	DefaultPoints        = 15
	DefaultTraceCycles   = 100000
	DefaultMeasurements  = 1000
	DefaultAlpha         = 0.4
	DefaultPoints1D      = 11
	DefaultSteps1D       = 100
	DefaultBins          = 20
	DefaultWalkSteps     = 1000
	DefaultFill          = 1000
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Seed      int64           `yaml:"seed"`
	Workers   int             `yaml:"workers"`
	Sample    SampleConfig    `yaml:"sample"`
	Trace     TraceConfig     `yaml:"trace"`
	Histogram HistogramConfig `yaml:"histogram"`
	Sweep     SweepConfig     `yaml:"sweep"`
	Diffusion DiffusionConfig `yaml:"diffusion"`
	Walk      WalkConfig      `yaml:"walk"`
	Watch     WatchConfig     `yaml:"watch"`
}

// SampleConfig drives the single temperature run.
type SampleConfig struct {
	Dim          int `yaml:"dim"`
	ThermSweeps  int `yaml:"therm_sweeps"`
	Steps        int `yaml:"steps"`
	MeasureEvery int `yaml:"measure_every"`
}

// TraceConfig drives the ordered/random equilibration traces.
type TraceConfig struct {
	Dim    int `yaml:"dim"`
	Cycles int `yaml:"cycles"`
}

type HistogramConfig struct {
	Dim         int `yaml:"dim"`
	ThermSweeps int `yaml:"therm_sweeps"`
}

type SweepConfig struct {
	TMin          float64 `yaml:"t_min"`
	TMax          float64 `yaml:"t_max"`
	Points        int     `yaml:"points"`
	ThermSweeps   int     `yaml:"therm_sweeps"`
	Cycles        int     `yaml:"cycles"`
	FlipsPerCycle int     `yaml:"flips_per_cycle"`
}

type DiffusionConfig struct {
	Scheme string  `yaml:"scheme"`
	Alpha  float64 `yaml:"alpha"`
	Points int     `yaml:"points"`
	Steps  int     `yaml:"steps"`
}

type WalkConfig struct {
	Bins  int `yaml:"bins"`
	Steps int `yaml:"steps"`
	Fill  int `yaml:"fill"`
}

type WatchConfig struct {
	Dim         int     `yaml:"dim"`
	Temperature float64 `yaml:"temperature"`
	// SweepsPerFrame is the number of lattice sweeps between redraws.
	SweepsPerFrame int `yaml:"sweeps_per_frame"`
}

func DefaultConfig() *Config {
	return &Config{
		Sample: SampleConfig{
			Dim:          2,
			ThermSweeps:  50,
			Steps:        100000,
			MeasureEvery: 100,
		},
		Trace: TraceConfig{
			Dim:    DefaultDim,
			Cycles: DefaultTraceCycles,
		},
		Histogram: HistogramConfig{
			Dim:         DefaultDim,
			ThermSweeps: DefaultThermSweeps,
		},
		Sweep: SweepConfig{
			TMin:          DefaultTMin,
			TMax:          DefaultTMax,
			Points:        DefaultPoints,
			ThermSweeps:   DefaultThermSweeps,
			Cycles:        DefaultCycles,
			FlipsPerCycle: DefaultFlipsPerCycle,
		},
		Diffusion: DiffusionConfig{
			Scheme: string(diffusion.SchemeCrankNicolson),
			Alpha:  DefaultAlpha,
			Points: DefaultPoints1D,
			Steps:  DefaultSteps1D,
		},
		Walk: WalkConfig{
			Bins:  DefaultBins,
			Steps: DefaultWalkSteps,
			Fill:  DefaultFill,
		},
		Watch: WatchConfig{
			Dim:            40,
			Temperature:    2.269,
			SweepsPerFrame: 1,
		},
	}
}

// Load reads a YAML file over DefaultConfig, so omitted fields keep their
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Sample.Dim > 0, "sample.dim"},
		{c.Sample.ThermSweeps >= 0, "sample.therm_sweeps"},
		{c.Sample.Steps >= 0, "sample.steps"},
		{c.Sample.MeasureEvery > 0, "sample.measure_every"},
		{c.Trace.Dim > 0, "trace.dim"},
		{c.Trace.Cycles >= 0, "trace.cycles"},
		{c.Histogram.Dim > 0, "histogram.dim"},
		{c.Histogram.ThermSweeps >= 0, "histogram.therm_sweeps"},
		{c.Sweep.TMin > 0 && c.Sweep.TMax > 0, "sweep.t_min/t_max"},
		{c.Sweep.Points >= 2, "sweep.points"},
		{c.Sweep.ThermSweeps >= 0, "sweep.therm_sweeps"},
		{c.Sweep.Cycles >= 0, "sweep.cycles"},
		{c.Sweep.FlipsPerCycle > 0, "sweep.flips_per_cycle"},
		{c.Diffusion.Alpha >= 0, "diffusion.alpha"},
		{c.Diffusion.Points >= 2, "diffusion.points"},
		{c.Diffusion.Steps >= 0, "diffusion.steps"},
		{c.Walk.Bins >= 2, "walk.bins"},
		{c.Walk.Steps >= 0, "walk.steps"},
		{c.Walk.Fill >= 0, "walk.fill"},
		{c.Watch.Dim > 0, "watch.dim"},
		{c.Watch.Temperature > 0, "watch.temperature"},
		{c.Watch.SweepsPerFrame > 0, "watch.sweeps_per_frame"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.name)
		}
	}
	if _, err := diffusion.ParseScheme(c.Diffusion.Scheme); err != nil {
		return fmt.Errorf("%w: diffusion.scheme: %v", ErrInvalid, err)
	}
	return nil
}
