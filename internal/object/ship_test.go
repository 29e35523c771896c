package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spacetilt/internal/draw"
	"github.com/tomz197/spacetilt/internal/physics"
)

func TestNewShipAtRestInCenter(t *testing.T) {
	s := NewShip(testScreen, newTestRand())
	assert.Equal(t, 120.0, s.X)
	assert.Equal(t, 120.0, s.Y)
	assert.Equal(t, 0.0, s.VX)
	assert.Equal(t, 0.0, s.VY)
	assert.Equal(t, 0.0, s.Spin)
	assert.Equal(t, float64(ShipRadius), s.Radius)
}

func TestLimitClampsAndDeadzones(t *testing.T) {
	tests := []struct {
		name           string
		vx, vy         float64
		wantVX, wantVY float64
	}{
		{name: "clamp_and_deadzone", vx: 3.2, vy: -0.05, wantVX: 3, wantVY: 0},
		{name: "negative_clamp", vx: -7, vy: 0.5, wantVX: -3, wantVY: 0.5},
		{name: "deadzone_edge", vx: 0.1, vy: -0.0999, wantVX: 0.1, wantVY: 0},
		{name: "untouched", vx: 1.5, vy: -2.5, wantVX: 1.5, wantVY: -2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShip(testScreen, newTestRand())
			s.VX, s.VY = tt.vx, tt.vy
			s.Limit()
			assert.Equal(t, tt.wantVX, s.VX)
			assert.Equal(t, tt.wantVY, s.VY)
		})
	}
}

func TestRestStaysAtRest(t *testing.T) {
	s := NewShip(testScreen, newTestRand())
	for i := 0; i < 100; i++ {
		s.Integrate(0, 0)
	}
	assert.Equal(t, 0.0, s.VX)
	assert.Equal(t, 0.0, s.VY)
	assert.Equal(t, 0.0, s.Angle)
}

func TestIntegrateAxisMapping(t *testing.T) {
	t.Run("sensor_x_drives_vertical", func(t *testing.T) {
		s := NewShip(testScreen, newTestRand())
		s.Integrate(0.5, 0)

		// vx picks up only drag coupling, which falls inside the deadzone.
		assert.Equal(t, 0.0, s.VX)
		assert.InDelta(t, -0.45, s.VY, 1e-12)

		want := physics.FloorMod(0.2*math.Atan2(-0.45, -0.45*0.025), physics.TwoPi)
		assert.InDelta(t, want, s.Angle, 1e-12)
	})

	t.Run("sensor_y_drives_horizontal", func(t *testing.T) {
		s := NewShip(testScreen, newTestRand())
		s.Integrate(0, 0.5)

		vy := -0.45 * 0.025
		assert.InDelta(t, 0.45+vy*0.025, s.VX, 1e-12)
		assert.Equal(t, 0.0, s.VY)
	})
}

func TestIntegrateClampsFullTilt(t *testing.T) {
	s := NewShip(testScreen, newTestRand())
	for i := 0; i < 20; i++ {
		s.Integrate(-1, 1)
		require.LessOrEqual(t, math.Abs(s.VX), 3.0)
		require.LessOrEqual(t, math.Abs(s.VY), 3.0)
		require.True(t, s.Angle >= 0 && s.Angle < physics.TwoPi)
	}
	assert.Equal(t, 3.0, s.VX)
	assert.Equal(t, 3.0, s.VY)
}

func TestHeadingTurnsTowardTravel(t *testing.T) {
	s := NewShip(testScreen, newTestRand())
	s.VX, s.VY = 0, 2
	s.Angle = 0

	prev := math.Abs(physics.NormalizeAngle(math.Pi/2 - s.Angle))
	for i := 0; i < 10; i++ {
		s.Integrate(0, 0)
		target := math.Atan2(s.VY, s.VX)
		diff := math.Abs(physics.NormalizeAngle(target - s.Angle))
		require.Less(t, diff, prev)
		prev = diff
	}
}

func TestShipUpdateMovesAndDraws(t *testing.T) {
	c := &canvasRecorder{}
	s := NewShip(testScreen, newTestRand())
	s.VX, s.VY = 2, 0

	s.Update(c, testScreen, 0, 0)

	assert.Equal(t, 121.0, s.X, "drag leaves vx just under 2")
	require.Len(t, c.calls, 1)
	assert.Equal(t, draw.White, c.calls[0].col)
	assert.Equal(t, 121, c.calls[0].x)
}
