package session

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/orbitals/camera"
	"github.com/pthm-cable/orbitals/orbital"
	"github.com/pthm-cable/orbitals/raster"
	"github.com/pthm-cable/orbitals/telemetry"
)

// BeginFrame starts timing a frame.
func (s *Session) BeginFrame() {
	s.perf.StartTick()
}

// Phase marks the start of a timed phase within the current frame.
func (s *Session) Phase(name string) {
	s.perf.StartPhase(name)
}

// EndFrame stops timing and emits perf stats when due.
func (s *Session) EndFrame() {
	s.perf.EndTick()
	if !s.perf.Due(s.cfg.Telemetry.PerfLogInterval) {
		return
	}

	stats := s.perf.Stats()
	if s.opts.LogStats {
		stats.LogStats()
	}
	if err := s.opts.Output.WritePerf(stats, s.frame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// WriteOutputs saves the config snapshot, field summaries, clouds, orbits
// and radial profile to the output directory. No-op without one.
func (s *Session) WriteOutputs() error {
	om := s.opts.Output
	if om == nil {
		return nil
	}

	if err := om.WriteConfig(s.cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := om.WriteFieldStats(s.stats); err != nil {
		return err
	}
	for _, l := range s.layers {
		if err := om.WriteCloud(l.Cloud); err != nil {
			return err
		}
	}
	if err := om.WriteOrbits(s.paths); err != nil {
		return err
	}

	rMax := 2 * s.cfg.Grid.HalfExtent
	profile := orbital.Profile(s.cfg.Atom.BohrRadius, rMax, s.cfg.Telemetry.ProfileSamples)
	if err := om.WriteProfile(profile); err != nil {
		return err
	}

	slog.Info("outputs written", "dir", om.Dir())
	return nil
}

// ExportGIF renders frames animation ticks through the software renderer
// and writes them as a looping GIF. The camera spins by camera.auto_rotate.
func (s *Session) ExportGIF(path string, frames int, cam *camera.Camera) error {
	if frames < 1 {
		return fmt.Errorf("gif export needs at least one frame, got %d", frames)
	}

	anim := raster.NewAnimation(s.cfg.Derived.GIFDelay, frames)
	canvas := raster.NewCanvas(s.cfg.Screen.Width, s.cfg.Screen.Height)
	spin := float32(s.cfg.Camera.AutoRotate*math.Pi/180) * s.cfg.Derived.TickSeconds

	for i := 0; i < frames; i++ {
		s.BeginFrame()

		s.Phase(telemetry.PhaseRasterize)
		raster.Render(canvas, cam, s.Scene())

		s.Phase(telemetry.PhaseEncode)
		anim.Add(canvas.Image())

		s.Phase(telemetry.PhaseStep)
		s.Step()
		cam.Rotate(spin, 0)

		s.EndFrame()
	}

	if err := anim.Save(path); err != nil {
		return err
	}
	slog.Info("gif written", "path", path, "frames", anim.Len(), "delay", s.cfg.Derived.GIFDelay)
	return nil
}
