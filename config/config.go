// Package config provides configuration loading and access for the viewer.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Atom      AtomConfig      `yaml:"atom"`
	Orbitals  []OrbitalConfig `yaml:"orbitals"`
	Render    RenderConfig    `yaml:"render"`
	Orbits    OrbitsConfig    `yaml:"orbits"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	Footer    string `yaml:"footer"`
}

// GridConfig holds the sampling grid for the density fields.
type GridConfig struct {
	Points     int     `yaml:"points"`      // Samples per axis
	HalfExtent float64 `yaml:"half_extent"` // Grid spans [-half_extent, +half_extent] on each axis
}

// AtomConfig holds the physical constants of the atom.
type AtomConfig struct {
	BohrRadius   float64 `yaml:"bohr_radius"`   // Length scale (arbitrary units)
	AtomicNumber int     `yaml:"atomic_number"` // Used for the energy labels only
}

// OrbitalConfig describes one rendered density cloud.
type OrbitalConfig struct {
	Kind        string  `yaml:"kind"`         // "1s" or "2s"
	Label       string  `yaml:"label"`
	Threshold   float64 `yaml:"threshold"`    // Points with density > threshold are drawn
	Colormap    string  `yaml:"colormap"`     // "viridis" or "plasma"
	AlphaFactor float64 `yaml:"alpha_factor"` // Cloud alpha = slider value * alpha_factor
}

// RenderConfig holds point cloud styling.
type RenderConfig struct {
	SizeMin      float64  `yaml:"size_min"`      // Marker size for the faintest selected point
	SizeRange    float64  `yaml:"size_range"`    // Added on top of size_min at max density
	InitialAlpha float64  `yaml:"initial_alpha"` // Slider start value
	PointScale   float64  `yaml:"point_scale"`   // World radius = point_scale * sqrt(size)
	Background   [3]uint8 `yaml:"background"`
}

// ElectronConfig describes a decorative orbit.
type ElectronConfig struct {
	Shell      int      `yaml:"shell"`       // Principal quantum number, used for the energy label
	RadiusBohr float64  `yaml:"radius_bohr"` // Orbit radius in units of the Bohr radius
	PhaseDeg   float64  `yaml:"phase_deg"`   // Angular offset of the path
	Color      [3]uint8 `yaml:"color"`
}

// OrbitsConfig holds the electron orbit animation parameters.
type OrbitsConfig struct {
	Samples    int              `yaml:"samples"`     // Points per closed path
	MarkerSize float64          `yaml:"marker_size"` // Electron marker size (same units as cloud sizes)
	Electrons  []ElectronConfig `yaml:"electrons"`
}

// AnimationConfig holds tick pacing.
type AnimationConfig struct {
	Frames     int `yaml:"frames"`      // Frames written by headless export
	IntervalMS int `yaml:"interval_ms"` // Milliseconds between animation ticks
}

// CameraConfig holds the initial orbit camera.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	YawDeg      float64 `yaml:"yaw_deg"`
	PitchDeg    float64 `yaml:"pitch_deg"`
	FovyDeg     float64 `yaml:"fovy_deg"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	AutoRotate  float64 `yaml:"auto_rotate"` // Degrees per second, 0 = off
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfCollectorWindow int `yaml:"perf_collector_window"`
	PerfLogInterval     int `yaml:"perf_log_interval"` // Ticks between perf log lines
	ProfileSamples      int `yaml:"profile_samples"`   // Rows in profile.csv
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	OrbitRadii  []float64 // Electrons[i].RadiusBohr * BohrRadius
	OrbitPhases []float64 // Electrons[i].PhaseDeg in radians
	TickSeconds float32   // Animation.IntervalMS in seconds
	GIFDelay    int       // Animation.IntervalMS in 100ths of a second
	ScreenW32   float32
	ScreenH32   float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file; lists are replaced wholesale
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects constants the numeric stages cannot work with.
func (c *Config) Validate() error {
	if c.Grid.Points < 1 {
		return fmt.Errorf("grid.points must be >= 1, got %d", c.Grid.Points)
	}
	if c.Grid.HalfExtent <= 0 {
		return fmt.Errorf("grid.half_extent must be > 0, got %g", c.Grid.HalfExtent)
	}
	if c.Atom.BohrRadius <= 0 {
		return fmt.Errorf("atom.bohr_radius must be > 0, got %g", c.Atom.BohrRadius)
	}
	if c.Orbits.Samples < 1 {
		return fmt.Errorf("orbits.samples must be >= 1, got %d", c.Orbits.Samples)
	}
	if c.Animation.IntervalMS <= 0 {
		return fmt.Errorf("animation.interval_ms must be > 0, got %d", c.Animation.IntervalMS)
	}
	for i, e := range c.Orbits.Electrons {
		if e.Shell < 1 {
			return fmt.Errorf("orbits.electrons[%d].shell must be >= 1, got %d", i, e.Shell)
		}
	}
	for i, o := range c.Orbitals {
		switch o.Kind {
		case "1s", "2s":
		default:
			return fmt.Errorf("orbitals[%d].kind: unknown orbital %q", i, o.Kind)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.OrbitRadii = make([]float64, len(c.Orbits.Electrons))
	c.Derived.OrbitPhases = make([]float64, len(c.Orbits.Electrons))
	for i, e := range c.Orbits.Electrons {
		c.Derived.OrbitRadii[i] = e.RadiusBohr * c.Atom.BohrRadius
		c.Derived.OrbitPhases[i] = e.PhaseDeg * math.Pi / 180
	}

	c.Derived.TickSeconds = float32(c.Animation.IntervalMS) / 1000
	c.Derived.GIFDelay = c.Animation.IntervalMS / 10
	if c.Derived.GIFDelay < 1 {
		c.Derived.GIFDelay = 1
	}

	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Render.InitialAlpha < 0 {
		c.Render.InitialAlpha = 0
	}
	if c.Render.InitialAlpha > 1 {
		c.Render.InitialAlpha = 1
	}

	for i := range c.Orbitals {
		if c.Orbitals[i].Label == "" {
			c.Orbitals[i].Label = c.Orbitals[i].Kind + " orbital"
		}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
