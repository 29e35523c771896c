package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorMod(t *testing.T) {
	tests := []struct {
		name string
		a, m float64
		want float64
	}{
		{name: "positive", a: 7, m: 5, want: 2},
		{name: "negative", a: -1, m: 5, want: 4},
		{name: "exact_multiple", a: -10, m: 5, want: 0},
		{name: "inside", a: 3, m: 5, want: 3},
		{name: "fractional", a: -0.5, m: 2, want: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FloorMod(tt.a, tt.m), 1e-12)
		})
	}
}

func TestWrapStaysInRange(t *testing.T) {
	for _, v := range []float64{-481, -240, -1, -1e-18, 0, 1, 239, 240, 241, 719} {
		got := Wrap(v, 240)
		assert.GreaterOrEqual(t, got, 0.0, "Wrap(%v)", v)
		assert.Less(t, got, 240.0, "Wrap(%v)", v)
	}
	assert.Equal(t, 5.0, Wrap(5, 0), "zero size is a no-op")
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(TwoPi), 1e-12)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-12)
	assert.InDelta(t, -math.Pi, NormalizeAngle(math.Pi), 1e-12)
}

func TestCirclesOverlap(t *testing.T) {
	assert.True(t, CirclesOverlap(0, 0, 7, 10, 0, 16))
	assert.False(t, CirclesOverlap(0, 0, 7, 23, 0, 16), "touching is not overlapping")
	assert.False(t, CirclesOverlap(0, 0, 7, 100, 100, 16))
}
