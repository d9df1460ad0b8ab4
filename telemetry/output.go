package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/orbitals/cloud"
	"github.com/pthm-cable/orbitals/config"
	"github.com/pthm-cable/orbitals/orbit"
	"github.com/pthm-cable/orbitals/orbital"
)

// CloudPointCSV is one selected grid sample.
type CloudPointCSV struct {
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	Z       float64 `csv:"z"`
	Density float64 `csv:"density"`
	Shade   float64 `csv:"shade"`
	Size    float64 `csv:"size"`
}

// OrbitSampleCSV is one sample of an electron path.
type OrbitSampleCSV struct {
	Electron int     `csv:"electron"`
	Sample   int     `csv:"sample"`
	Radius   float64 `csv:"radius"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Z        float64 `csv:"z"`
}

// ProfileCSV is one row of the radial profile.
type ProfileCSV struct {
	R            float64 `csv:"r"`
	Psi1s        float64 `csv:"psi_1s"`
	Psi2s        float64 `csv:"psi_2s"`
	Density1s    float64 `csv:"density_1s"`
	Density2s    float64 `csv:"density_2s"`
	RadialProb1s float64 `csv:"radial_prob_1s"`
	RadialProb2s float64 `csv:"radial_prob_2s"`
}

// ProfileRows converts profile samples to CSV rows.
func ProfileRows(samples []orbital.ProfileSample) []ProfileCSV {
	rows := make([]ProfileCSV, len(samples))
	for i, s := range samples {
		rows[i] = ProfileCSV{
			R:            s.R,
			Psi1s:        s.Psi1s,
			Psi2s:        s.Psi2s,
			Density1s:    s.Density1s,
			Density2s:    s.Density2s,
			RadialProb1s: s.RadialProb1s,
			RadialProb2s: s.RadialProb2s,
		}
	}
	return rows
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir      string
	perfFile *os.File

	// Track if headers have been written
	perfHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &OutputManager{dir: dir}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteFieldStats writes one row per orbital to field_stats.csv.
func (om *OutputManager) WriteFieldStats(stats []FieldStats) error {
	if om == nil || len(stats) == 0 {
		return nil
	}
	return om.writeFile("field_stats.csv", &stats)
}

// WriteCloud writes the selected points of c to cloud_<kind>.csv.
// An empty selection writes nothing.
func (om *OutputManager) WriteCloud(c *cloud.Cloud) error {
	if om == nil || c.Len() == 0 {
		return nil
	}

	rows := make([]CloudPointCSV, len(c.Points))
	for i, p := range c.Points {
		rows[i] = CloudPointCSV{
			X:       p.X,
			Y:       p.Y,
			Z:       p.Z,
			Density: p.Density,
			Shade:   p.Shade,
			Size:    p.Size,
		}
	}
	return om.writeFile(CloudFileName(c.Kind), &rows)
}

// CloudFileName returns the CSV name for an orbital's cloud.
func CloudFileName(kind orbital.Kind) string {
	return "cloud_" + kind.String() + ".csv"
}

// WriteOrbits writes every path sample to orbits.csv.
func (om *OutputManager) WriteOrbits(paths []orbit.Path) error {
	if om == nil || len(paths) == 0 {
		return nil
	}

	var rows []OrbitSampleCSV
	for e, p := range paths {
		for i, s := range p.Samples {
			rows = append(rows, OrbitSampleCSV{
				Electron: e,
				Sample:   i,
				Radius:   p.Radius,
				X:        s.X,
				Y:        s.Y,
				Z:        s.Z,
			})
		}
	}
	return om.writeFile("orbits.csv", &rows)
}

// WriteProfile writes the radial profile to profile.csv.
func (om *OutputManager) WriteProfile(samples []orbital.ProfileSample) error {
	if om == nil || len(samples) == 0 {
		return nil
	}
	rows := ProfileRows(samples)
	return om.writeFile("profile.csv", &rows)
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, frame int) error {
	if om == nil {
		return nil
	}

	records := []PerfStatsCSV{stats.ToCSV(frame)}

	if om.perfFile == nil {
		f, err := os.Create(filepath.Join(om.dir, "perf.csv"))
		if err != nil {
			return fmt.Errorf("creating perf.csv: %w", err)
		}
		om.perfFile = f
	}

	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// Path returns the full path of a file in the output directory.
func (om *OutputManager) Path(name string) string {
	if om == nil {
		return ""
	}
	return filepath.Join(om.dir, name)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil || om.perfFile == nil {
		return nil
	}
	return om.perfFile.Close()
}

// writeFile marshals records into a fresh CSV file with headers.
func (om *OutputManager) writeFile(name string, records any) error {
	f, err := os.Create(filepath.Join(om.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := gocsv.MarshalFile(records, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	return nil
}

// WriteTable writes any slice of csv-tagged rows to name in the output directory.
func (om *OutputManager) WriteTable(name string, records any) error {
	if om == nil {
		return nil
	}
	return om.writeFile(name, records)
}
