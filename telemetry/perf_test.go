package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate a few frames
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseStep)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseDrawClouds)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Verify we got timing data
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}

	// Verify phases are tracked
	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg[PhaseStep]; !ok {
		t.Error("expected step phase to be tracked")
	}

	if _, ok := stats.PhaseAvg[PhaseDrawClouds]; !ok {
		t.Error("expected draw_clouds phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	// Fill window completely
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseStep)
		pc.EndTick()
	}

	stats := pc.Stats()

	// Should have data
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}

	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate with uneven phase durations
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(100 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	fastPct := stats.PhasePct["fast"]
	slowPct := stats.PhasePct["slow"]

	// Slow phase should take more % than fast
	if slowPct <= fastPct {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", slowPct, fastPct)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}

	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}

	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// First call establishes baseline
	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond) // ~60fps frame time
	// Second call measures duration
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}

	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}

	// With 16ms frames, expect ~60 FPS (allow range 40-80)
	if stats.FPS < 40 || stats.FPS > 80 {
		t.Errorf("expected FPS between 40-80 with 16ms frame time, got %v", stats.FPS)
	}
}

func TestPerfCollector_Due(t *testing.T) {
	pc := NewPerfCollector(4)

	if pc.Due(3) {
		t.Error("nothing recorded yet, should not be due")
	}

	var due []int
	for i := 1; i <= 7; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseRasterize)
		pc.EndTick()
		if pc.Due(3) {
			due = append(due, i)
		}
	}

	if len(due) != 2 || due[0] != 3 || due[1] != 6 {
		t.Errorf("expected due at frames [3 6], got %v", due)
	}
	if pc.Frames() != 7 {
		t.Errorf("expected 7 frames, got %d", pc.Frames())
	}
	if pc.Due(0) {
		t.Error("zero interval disables logging")
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	pc := NewPerfCollector(10)
	for i := 0; i < 3; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseRasterize)
		time.Sleep(50 * time.Microsecond)
		pc.StartPhase(PhaseEncode)
		time.Sleep(50 * time.Microsecond)
		pc.EndTick()
	}

	row := pc.Stats().ToCSV(42)
	if row.Frame != 42 {
		t.Errorf("expected frame 42, got %d", row.Frame)
	}
	if row.RasterPct <= 0 || row.EncodePct <= 0 {
		t.Errorf("expected raster and encode shares, got %v and %v", row.RasterPct, row.EncodePct)
	}
	if row.StepPct != 0 {
		t.Errorf("unused phase should be zero, got %v", row.StepPct)
	}
}

func TestPhasesCopy(t *testing.T) {
	p := Phases()
	if len(p) != 7 || p[0] != PhaseInput || p[6] != PhaseEncode {
		t.Errorf("unexpected phases %v", p)
	}
	p[0] = "mutated"
	if Phases()[0] != PhaseInput {
		t.Error("Phases should return a copy")
	}
}
