package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Grid.Points != 60 {
		t.Errorf("grid.points = %d, want 60", cfg.Grid.Points)
	}
	if cfg.Atom.BohrRadius != 5 {
		t.Errorf("atom.bohr_radius = %v, want 5", cfg.Atom.BohrRadius)
	}
	if len(cfg.Orbitals) != 2 {
		t.Fatalf("expected 2 orbitals, got %d", len(cfg.Orbitals))
	}
	if cfg.Orbitals[0].Threshold != 0.0005 || cfg.Orbitals[1].Threshold != 0.0003 {
		t.Errorf("unexpected thresholds %v, %v", cfg.Orbitals[0].Threshold, cfg.Orbitals[1].Threshold)
	}
	if cfg.Orbits.Electrons[2].Shell != 2 {
		t.Errorf("third electron shell = %d, want 2", cfg.Orbits.Electrons[2].Shell)
	}
	if cfg.Render.InitialAlpha != 0.7 {
		t.Errorf("initial alpha = %v, want 0.7", cfg.Render.InitialAlpha)
	}
}

func TestDerivedOrbits(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantRadii := []float64{5, 5, 10}
	wantPhases := []float64{0, math.Pi, 0}
	if len(cfg.Derived.OrbitRadii) != 3 {
		t.Fatalf("expected 3 derived radii, got %d", len(cfg.Derived.OrbitRadii))
	}
	for i := range wantRadii {
		if math.Abs(cfg.Derived.OrbitRadii[i]-wantRadii[i]) > 1e-12 {
			t.Errorf("radius[%d] = %v, want %v", i, cfg.Derived.OrbitRadii[i], wantRadii[i])
		}
		if math.Abs(cfg.Derived.OrbitPhases[i]-wantPhases[i]) > 1e-12 {
			t.Errorf("phase[%d] = %v, want %v", i, cfg.Derived.OrbitPhases[i], wantPhases[i])
		}
	}

	if cfg.Derived.GIFDelay != 5 {
		t.Errorf("gif delay = %d, want 5", cfg.Derived.GIFDelay)
	}
	if math.Abs(float64(cfg.Derived.TickSeconds)-0.05) > 1e-6 {
		t.Errorf("tick seconds = %v, want 0.05", cfg.Derived.TickSeconds)
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := []byte("grid:\n  points: 12\nrender:\n  initial_alpha: 1.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Grid.Points != 12 {
		t.Errorf("grid.points = %d, want 12", cfg.Grid.Points)
	}
	// Untouched sections keep their defaults
	if cfg.Grid.HalfExtent != 20 {
		t.Errorf("grid.half_extent = %v, want 20", cfg.Grid.HalfExtent)
	}
	if cfg.Render.InitialAlpha != 1 {
		t.Errorf("initial alpha should clamp to 1, got %v", cfg.Render.InitialAlpha)
	}
}

func TestLoadRejectsBadConstants(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero grid", "grid:\n  points: 0\n"},
		{"negative bohr radius", "atom:\n  bohr_radius: -1\n"},
		{"zero samples", "orbits:\n  samples: 0\n"},
		{"unknown orbital", "orbitals:\n  - kind: 3d\n    threshold: 0.1\n"},
		{"electron without shell", "orbits:\n  electrons:\n    - radius_bohr: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Grid.Points = 33

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config failed: %v", err)
	}
	if back.Grid.Points != 33 {
		t.Errorf("grid.points after roundtrip = %d, want 33", back.Grid.Points)
	}
}
