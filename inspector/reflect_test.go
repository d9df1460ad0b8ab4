package inspector

import (
	"testing"

	"github.com/pthm-cable/orbitals/telemetry"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag    string
		widget Widget
		opts   map[string]string
	}{
		{"", WidgetAuto, map[string]string{}},
		{"skip", WidgetSkip, map[string]string{}},
		{"bar,max:0.05", WidgetBar, map[string]string{"max": "0.05"}},
		{"label, fmt:%.1f eV", WidgetLabel, map[string]string{"fmt": "%.1f eV"}},
		{"unknown", WidgetAuto, map[string]string{}},
	}

	for _, tt := range tests {
		w, opts := ParseTag(tt.tag)
		if w != tt.widget {
			t.Errorf("ParseTag(%q) widget = %v, want %v", tt.tag, w, tt.widget)
		}
		if len(opts) != len(tt.opts) {
			t.Errorf("ParseTag(%q) options = %v, want %v", tt.tag, opts, tt.opts)
			continue
		}
		for k, v := range tt.opts {
			if opts[k] != v {
				t.Errorf("ParseTag(%q) option %s = %q, want %q", tt.tag, k, opts[k], v)
			}
		}
	}
}

func TestExtractFieldsFieldStats(t *testing.T) {
	s := telemetry.FieldStats{Kind: "1s", Threshold: 5e-4, Selected: 42, Fraction: 0.01, EnergyEV: -122.4}
	fields := ExtractFields(&s)

	byName := make(map[string]Field)
	for _, f := range fields {
		byName[f.Name] = f
	}

	if _, ok := byName["Kind"]; ok {
		t.Error("Kind is tagged skip and should not be extracted")
	}
	if f, ok := byName["Selected"]; !ok || f.Widget != WidgetLabel || f.Value != 42 {
		t.Errorf("Selected should be an auto label with value 42, got %+v", f)
	}
	if f := byName["Fraction"]; f.Widget != WidgetBar || GetMax(f.Options) != 0.05 {
		t.Errorf("Fraction should be a bar with max 0.05, got %+v", f)
	}
	if got := FormatValue(byName["EnergyEV"].Value, byName["EnergyEV"].Options["fmt"]); got != "-122.4 eV" {
		t.Errorf("energy formatted as %q", got)
	}
}

func TestExtractFieldsNonStruct(t *testing.T) {
	if ExtractFields(3) != nil {
		t.Error("non-struct should yield no fields")
	}
	var nilStats *telemetry.FieldStats
	if ExtractFields(nilStats) != nil {
		t.Error("nil pointer should yield no fields")
	}
}

func TestRatio(t *testing.T) {
	opts := map[string]string{"max": "0.05"}
	tests := []struct {
		value, want float32
	}{
		{0.025, 0.5},
		{0.1, 1},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := Ratio(tt.value, opts); got < tt.want-1e-6 || got > tt.want+1e-6 {
			t.Errorf("Ratio(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}

	if GetMax(map[string]string{"max": "bogus"}) != 1 {
		t.Error("bad max should default to 1")
	}
}

func TestFormatValueDefaults(t *testing.T) {
	if got := FormatValue(float64(0.000123456), ""); got != "0.0001235" {
		t.Errorf("float64 default = %q", got)
	}
	if got := FormatValue(7, ""); got != "7" {
		t.Errorf("int default = %q", got)
	}
}
