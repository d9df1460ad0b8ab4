package components

import (
	"testing"

	"github.com/pthm-cable/orbitals/orbit"
)

func TestElectronAdvance(t *testing.T) {
	p, err := orbit.NewPath(5, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	e := Electron{ID: 0, Shell: 1, State: orbit.NewElectron(p)}

	tests := []struct {
		frame int
		want  orbit.Vec3
	}{
		{0, p.Samples[0]},
		{1, p.Samples[1]},
		{6, p.Samples[2]},
		{3, p.Samples[3]},
	}

	for _, tt := range tests {
		e.Advance(tt.frame)
		if e.Position() != tt.want {
			t.Errorf("frame %d: position %+v, want %+v", tt.frame, e.Position(), tt.want)
		}
	}
}
