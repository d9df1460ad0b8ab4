// Package main tunes each orbital's cloud threshold so the drawn points hold
// a target share of the probability captured by the grid.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/pthm-cable/orbitals/cloud"
	"github.com/pthm-cable/orbitals/config"
	"github.com/pthm-cable/orbitals/orbital"
	"github.com/pthm-cable/orbitals/telemetry"
)

// TuneResultCSV compares the configured and tuned thresholds of one orbital.
type TuneResultCSV struct {
	Kind              string  `csv:"kind"`
	Target            float64 `csv:"target"`
	ConfiguredTh      float64 `csv:"configured_threshold"`
	ConfiguredCapture float64 `csv:"configured_capture"`
	ConfiguredPoints  int     `csv:"configured_points"`
	TunedTh           float64 `csv:"tuned_threshold"`
	TunedCapture      float64 `csv:"tuned_capture"`
	TunedPoints       int     `csv:"tuned_points"`
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	target := flag.Float64("target", 0.9, "Share of grid probability the cloud should hold (0-1]")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if *target <= 0 || *target > 1 {
		log.Fatalf("--target must be in (0, 1], got %g", *target)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	defer om.Close()

	grid, err := orbital.NewGrid(cfg.Grid.Points, cfg.Grid.HalfExtent)
	if err != nil {
		log.Fatalf("failed to build grid: %v", err)
	}
	params := orbital.Params{BohrRadius: cfg.Atom.BohrRadius, AtomicNumber: cfg.Atom.AtomicNumber}

	startTime := time.Now()
	fmt.Printf("Tuning %d orbitals on a %d^3 grid, target capture %.3f\n",
		len(cfg.Orbitals), grid.Size, *target)

	var results []TuneResultCSV
	for i := range cfg.Orbitals {
		oc := &cfg.Orbitals[i]
		kind, err := orbital.ParseKind(oc.Kind)
		if err != nil {
			log.Fatalf("orbital %d: %v", i, err)
		}
		field, err := orbital.Evaluate(grid, kind, params)
		if err != nil {
			log.Fatalf("evaluating %s: %v", oc.Kind, err)
		}

		tuned := cloud.ThresholdForCapture(field.Density, *target)
		res := TuneResultCSV{
			Kind:              kind.String(),
			Target:            *target,
			ConfiguredTh:      oc.Threshold,
			ConfiguredCapture: cloud.Captured(field.Density, oc.Threshold),
			ConfiguredPoints:  cloud.Count(cloud.Mask(field.Density, oc.Threshold)),
			TunedTh:           tuned,
			TunedCapture:      cloud.Captured(field.Density, tuned),
			TunedPoints:       cloud.Count(cloud.Mask(field.Density, tuned)),
		}
		results = append(results, res)

		fmt.Printf("%s: threshold %.3e -> %.3e | capture %.3f -> %.3f | points %d -> %d\n",
			res.Kind, res.ConfiguredTh, res.TunedTh,
			res.ConfiguredCapture, res.TunedCapture,
			res.ConfiguredPoints, res.TunedPoints)

		oc.Threshold = tuned
	}

	if err := om.WriteTable("threshold_log.csv", results); err != nil {
		log.Fatalf("failed to write log: %v", err)
	}

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := cfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write tuned config: %v", err)
	} else {
		fmt.Printf("\nTuned config saved to: %s\n", configOutPath)
	}
	fmt.Printf("Done in %s\n", time.Since(startTime).Round(time.Millisecond))
}
