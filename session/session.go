// Package session owns everything one viewer run computes: the grid, the
// density fields and their clouds, the electron paths and entities, and the
// alpha parameter. Front ends drive it one frame at a time.
package session

import (
	"fmt"
	"image/color"
	"log/slog"
	"sort"
	"strings"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orbitals/cloud"
	"github.com/pthm-cable/orbitals/components"
	"github.com/pthm-cable/orbitals/config"
	"github.com/pthm-cable/orbitals/orbit"
	"github.com/pthm-cable/orbitals/orbital"
	"github.com/pthm-cable/orbitals/raster"
	"github.com/pthm-cable/orbitals/telemetry"
)

// Options configures optional session outputs.
type Options struct {
	Output   *telemetry.OutputManager // nil disables file output
	LogStats bool                     // Log perf stats every telemetry.perf_log_interval frames
}

// Layer is one orbital's field and render state.
type Layer struct {
	Kind        orbital.Kind
	Label       string
	Threshold   float64
	Field       *orbital.Field
	Cloud       *cloud.Cloud // nil when nothing exceeds Threshold
	Colormap    raster.Colormap
	AlphaFactor float64
	Alpha       float64 // Current opacity: slider value * AlphaFactor
}

// Marker is a drawable snapshot of one electron.
type Marker struct {
	ID    int
	Shell int
	Pos   orbit.Vec3
	Color color.RGBA
	Size  float64
}

// EnergyLabel is the shell energy text shown beside an orbit.
type EnergyLabel struct {
	Shell  int
	Energy float64 // eV
	Text   string
	Pos    orbit.Vec3
	Color  color.RGBA
}

// Session is the state of one viewer run.
type Session struct {
	cfg  *config.Config
	opts Options

	grid   *orbital.Grid
	layers []*Layer
	stats  []telemetry.FieldStats
	paths  []orbit.Path
	alpha  *Alpha
	labels []EnergyLabel

	world     *ecs.World
	electrons *ecs.Map2[components.Electron, components.Marker]
	filter    *ecs.Filter2[components.Electron, components.Marker]

	perf  *telemetry.PerfCollector
	frame int
	dirty bool
}

// New evaluates the fields, selects the clouds and spawns the electrons.
func New(cfg *config.Config, opts Options) (*Session, error) {
	params := orbital.Params{BohrRadius: cfg.Atom.BohrRadius, AtomicNumber: cfg.Atom.AtomicNumber}

	grid, err := orbital.NewGrid(cfg.Grid.Points, cfg.Grid.HalfExtent)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	s := &Session{
		cfg:   cfg,
		opts:  opts,
		grid:  grid,
		perf:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		dirty: true,
	}

	if err := s.buildLayers(params); err != nil {
		return nil, err
	}
	if err := s.spawnElectrons(); err != nil {
		return nil, err
	}
	s.buildLabels()

	s.alpha = NewAlpha(float32(cfg.Render.InitialAlpha))
	s.alpha.OnChange(s.applyAlpha)
	s.applyAlpha(s.alpha.Value())

	return s, nil
}

// buildLayers evaluates each configured orbital and thresholds it.
func (s *Session) buildLayers(params orbital.Params) error {
	sizes := cloud.SizeRange{Min: s.cfg.Render.SizeMin, Span: s.cfg.Render.SizeRange}

	for _, oc := range s.cfg.Orbitals {
		kind, err := orbital.ParseKind(oc.Kind)
		if err != nil {
			return err
		}
		cmap, err := raster.LookupColormap(oc.Colormap)
		if err != nil {
			return fmt.Errorf("orbital %s: %w", oc.Kind, err)
		}

		field, err := orbital.Evaluate(s.grid, kind, params)
		if err != nil {
			return fmt.Errorf("evaluating %s: %w", oc.Kind, err)
		}

		c := cloud.Select(field, oc.Threshold, sizes)
		if c == nil {
			slog.Info("empty selection, skipping orbital",
				"kind", kind.String(),
				"threshold", oc.Threshold,
				"grid_points", s.grid.Size,
			)
		} else {
			slog.Info("cloud selected", "stats", c.Stats())
		}

		stats := telemetry.ComputeFieldStats(field, c, oc.Threshold, params.AtomicNumber)
		stats.LogStats()
		s.stats = append(s.stats, stats)

		s.layers = append(s.layers, &Layer{
			Kind:        kind,
			Label:       oc.Label,
			Threshold:   oc.Threshold,
			Field:       field,
			Cloud:       c,
			Colormap:    cmap,
			AlphaFactor: oc.AlphaFactor,
		})
	}
	return nil
}

// spawnElectrons builds one path per configured electron and an entity that follows it.
func (s *Session) spawnElectrons() error {
	s.world = ecs.NewWorld()
	s.electrons = ecs.NewMap2[components.Electron, components.Marker](s.world)
	s.filter = ecs.NewFilter2[components.Electron, components.Marker](s.world)

	for i, ec := range s.cfg.Orbits.Electrons {
		path, err := orbit.NewPath(s.cfg.Derived.OrbitRadii[i], s.cfg.Derived.OrbitPhases[i], s.cfg.Orbits.Samples)
		if err != nil {
			return fmt.Errorf("electron %d: %w", i, err)
		}
		s.paths = append(s.paths, path)

		s.electrons.NewEntity(
			&components.Electron{ID: i, Shell: ec.Shell, State: orbit.NewElectron(path)},
			&components.Marker{Color: rgb(ec.Color), Size: float32(s.cfg.Orbits.MarkerSize)},
		)
	}
	return nil
}

// buildLabels places one energy label per shell, just outside the first orbit of that shell.
func (s *Session) buildLabels() {
	seen := make(map[int]bool)
	for i, ec := range s.cfg.Orbits.Electrons {
		if seen[ec.Shell] {
			continue
		}
		seen[ec.Shell] = true

		energy := orbital.EnergyLevel(ec.Shell, s.cfg.Atom.AtomicNumber)
		s.labels = append(s.labels, EnergyLabel{
			Shell:  ec.Shell,
			Energy: energy,
			Text:   fmt.Sprintf("%ds: %.1f eV", ec.Shell, energy),
			Pos:    orbit.Vec3{X: s.paths[i].Radius + 1},
			Color:  rgb(ec.Color),
		})
	}
}

// applyAlpha propagates the slider value to every layer.
func (s *Session) applyAlpha(v float32) {
	for _, l := range s.layers {
		l.Alpha = float64(v) * l.AlphaFactor
	}
	s.dirty = true
}

// Step advances the animation by one tick.
func (s *Session) Step() {
	s.frame++
	query := s.filter.Query()
	for query.Next() {
		e, _ := query.Get()
		e.Advance(s.frame)
	}
}

// Markers returns the electrons ordered by ID.
func (s *Session) Markers() []Marker {
	var out []Marker
	query := s.filter.Query()
	for query.Next() {
		e, m := query.Get()
		out = append(out, Marker{
			ID:    e.ID,
			Shell: e.Shell,
			Pos:   e.Position(),
			Color: m.Color,
			Size:  float64(m.Size),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Scene assembles the current frame for the software renderer.
func (s *Session) Scene() raster.Scene {
	scene := raster.Scene{
		Background: rgb(s.cfg.Render.Background),
		PointScale: s.cfg.Render.PointScale,
		Title:      s.cfg.Screen.Title,
		Subtitle:   strings.ReplaceAll(s.cfg.Screen.Subtitle, "\n", " - "),
		Footer:     s.cfg.Screen.Footer,
		Caption:    raster.AlphaCaption(s.alpha.Value()),
	}

	for _, l := range s.layers {
		scene.Clouds = append(scene.Clouds, raster.CloudLayer{Cloud: l.Cloud, Colormap: l.Colormap, Alpha: l.Alpha})
	}
	for i, p := range s.paths {
		scene.Paths = append(scene.Paths, raster.PathStroke{Path: p, Color: rgb(s.cfg.Orbits.Electrons[i].Color), Alpha: 1})
	}
	for _, m := range s.Markers() {
		scene.Electrons = append(scene.Electrons, raster.Dot{Pos: m.Pos, Color: m.Color, Size: m.Size})
	}
	for _, l := range s.labels {
		scene.Labels = append(scene.Labels, raster.Label{Pos: l.Pos, Text: l.Text, Color: l.Color})
	}
	return scene
}

// Config returns the configuration the session was built from.
func (s *Session) Config() *config.Config { return s.cfg }

// Grid returns the sampling grid.
func (s *Session) Grid() *orbital.Grid { return s.grid }

// Layers returns the orbital layers in configuration order.
func (s *Session) Layers() []*Layer { return s.layers }

// Paths returns the electron paths in configuration order.
func (s *Session) Paths() []orbit.Path { return s.paths }

// Alpha returns the shared opacity parameter.
func (s *Session) Alpha() *Alpha { return s.alpha }

// EnergyLabels returns one label per occupied shell.
func (s *Session) EnergyLabels() []EnergyLabel { return s.labels }

// FieldStats returns the per-orbital summaries computed at startup.
func (s *Session) FieldStats() []telemetry.FieldStats { return s.stats }

// Frame returns the number of animation ticks taken.
func (s *Session) Frame() int { return s.frame }

// Perf returns the frame timing collector.
func (s *Session) Perf() *telemetry.PerfCollector { return s.perf }

// TakeDirty reports whether layer opacity changed since the last call and clears the flag.
func (s *Session) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
