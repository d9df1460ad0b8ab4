package session

import "math"

// Alpha is the shared cloud opacity in [0, 1]. Listeners run only when the
// stored value changes.
type Alpha struct {
	value     float32
	listeners []func(float32)
}

// NewAlpha creates an alpha parameter with a clamped initial value.
func NewAlpha(initial float32) *Alpha {
	return &Alpha{value: clamp01(initial)}
}

// Value returns the current opacity.
func (a *Alpha) Value() float32 {
	return a.value
}

// OnChange registers fn to run after every change.
func (a *Alpha) OnChange(fn func(float32)) {
	a.listeners = append(a.listeners, fn)
}

// Set clamps v to [0, 1] and stores it. Listeners run in registration order
// when the value differs from the previous one. NaN is ignored.
func (a *Alpha) Set(v float32) bool {
	if math.IsNaN(float64(v)) {
		return false
	}
	v = clamp01(v)
	if v == a.value {
		return false
	}
	a.value = v
	for _, fn := range a.listeners {
		fn(v)
	}
	return true
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
