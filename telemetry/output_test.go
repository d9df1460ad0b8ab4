package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/orbitals/cloud"
	"github.com/pthm-cable/orbitals/config"
	"github.com/pthm-cable/orbitals/orbit"
	"github.com/pthm-cable/orbitals/orbital"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager for empty dir, got %v, %v", om, err)
	}

	// Every method is safe on a nil manager
	if err := om.WriteCloud(nil); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 1); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" || om.Path("x") != "" {
		t.Error("nil manager should report empty paths")
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	g, _ := orbital.NewGrid(11, 20)
	f, _ := orbital.Evaluate(g, orbital.Kind1s, orbital.Params{BohrRadius: 5, AtomicNumber: 3})
	c := cloud.Select(f, 0.0005, cloud.DefaultSizeRange())
	if err := om.WriteCloud(c); err != nil {
		t.Fatalf("WriteCloud failed: %v", err)
	}

	p, _ := orbit.NewPath(5, 0, 4)
	if err := om.WriteOrbits([]orbit.Path{p, p}); err != nil {
		t.Fatalf("WriteOrbits failed: %v", err)
	}

	if err := om.WriteProfile(orbital.Profile(5, 40, 9)); err != nil {
		t.Fatalf("WriteProfile failed: %v", err)
	}

	if err := om.WriteFieldStats([]FieldStats{ComputeFieldStats(f, c, 0.0005, 3)}); err != nil {
		t.Fatalf("WriteFieldStats failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml missing: %v", err)
	}

	lines := readLines(t, filepath.Join(dir, "cloud_1s.csv"))
	if lines[0] != "x,y,z,density,shade,size" {
		t.Errorf("unexpected cloud header %q", lines[0])
	}
	if len(lines) != c.Len()+1 {
		t.Errorf("expected %d cloud rows, got %d", c.Len(), len(lines)-1)
	}

	lines = readLines(t, filepath.Join(dir, "orbits.csv"))
	if len(lines) != 9 {
		t.Errorf("expected header + 8 orbit rows, got %d lines", len(lines))
	}

	lines = readLines(t, filepath.Join(dir, "profile.csv"))
	if !strings.HasPrefix(lines[0], "r,psi_1s,psi_2s") || len(lines) != 10 {
		t.Errorf("unexpected profile output: header %q, %d lines", lines[0], len(lines))
	}

	lines = readLines(t, filepath.Join(dir, "field_stats.csv"))
	if !strings.HasPrefix(lines[0], "kind,threshold") || !strings.HasPrefix(lines[1], "1s,") {
		t.Errorf("unexpected field stats output %v", lines)
	}
}

func TestOutputManagerSkipsEmptyCloud(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	if err := om.WriteCloud(nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, CloudFileName(orbital.Kind2s))); !os.IsNotExist(err) {
		t.Error("empty selection should not produce a cloud file")
	}
}

func TestWritePerfHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WritePerf(PerfStats{}, i*100); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, filepath.Join(dir, "perf.csv"))
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "300,") {
		t.Errorf("unexpected last row %q", lines[3])
	}
}

func TestWriteTable(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	type row struct {
		Name  string  `csv:"name"`
		Value float64 `csv:"value"`
	}
	if err := om.WriteTable("table.csv", []row{{"a", 1}, {"b", 2.5}}); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, filepath.Join(dir, "table.csv"))
	if len(lines) != 3 || lines[0] != "name,value" || lines[2] != "b,2.5" {
		t.Errorf("unexpected table %q", lines)
	}

	if _, err := os.Stat(filepath.Join(dir, "perf.csv")); !os.IsNotExist(err) {
		t.Error("perf.csv should only be created by the first perf write")
	}
}
