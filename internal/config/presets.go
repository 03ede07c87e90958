package config

// Presets are complete configurations keyed by name. GetPreset returns a
// copy so callers may override fields.
var Presets = map[string]*Config{
	"legacy": func() *Config {
		c := DefaultConfig()
		c.Sweep.ThermSweeps = 100000
		c.Histogram.ThermSweeps = 5000
		return c
	}(),
	"quick": func() *Config {
		c := DefaultConfig()
		c.Trace.Cycles = 5000
		c.Histogram.Dim = 10
		c.Histogram.ThermSweeps = 200
		c.Sweep.Points = 5
		c.Sweep.ThermSweeps = 500
		c.Sweep.Cycles = 200
		c.Diffusion.Steps = 20
		c.Walk.Steps = 100
		return c
	}(),
	"large": func() *Config {
		c := DefaultConfig()
		c.Sweep.Points = 41
		c.Sweep.TMin = 2.1
		c.Sweep.TMax = 2.5
		c.Sweep.ThermSweeps = 20000
		c.Sweep.Cycles = 10000
		c.Watch.Dim = 80
		return c
	}(),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

// ListPresets returns the preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
