package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproach(t *testing.T) {
	tests := []struct {
		name                string
		value, target, step float64
		want                float64
	}{
		{"ramps up", 0, 3, 1, 1},
		{"does not overshoot up", 2.5, 3, 1, 3},
		{"ramps down", 0, -3, 1, -1},
		{"does not overshoot down", -2.5, -3, 1, -3},
		{"zero step keeps value", 1, 3, 0, 1},
		{"at target", 3, 3, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Approach(tt.value, tt.target, tt.step))
		})
	}
}

func TestApplyFrictionSnapsInsideDeadZone(t *testing.T) {
	assert.Equal(t, 0.0, ApplyFriction(0.05, 0.5, 1, 0.05))
	assert.InDelta(t, 1.0, ApplyFriction(2, 0.5, 1, 0.05), 1e-12)
	assert.InDelta(t, -1.0, ApplyFriction(-2, 0.5, 1, 0.05), 1e-12)
}

func TestDecayFrameRateIndependence(t *testing.T) {
	// Two half frames must match one full frame.
	full := Decay(10, 0.9, 1)
	half := Decay(Decay(10, 0.9, 0.5), 0.9, 0.5)
	assert.InDelta(t, full, half, 1e-9)

	// Very high and very low rates stay finite and ordered.
	tiny := Decay(10, 0.9, 1e-6)
	huge := Decay(10, 0.9, 1e3)
	assert.InDelta(t, 10, tiny, 1e-5)
	assert.GreaterOrEqual(t, huge, 0.0)
	assert.Less(t, huge, 1e-9)
}

func TestApproachExp(t *testing.T) {
	v := 0.0
	for i := 0; i < 500; i++ {
		v = ApproachExp(v, 8, 0.95, 1)
		assert.LessOrEqual(t, v, 8.0)
	}
	assert.InDelta(t, 8, v, 1e-6)

	// Above the target it decays back down.
	assert.Less(t, ApproachExp(10, 2, 0.5, 1), 10.0)
}

func TestFrameRatio(t *testing.T) {
	assert.InDelta(t, 1, FrameRatio(1.0/144, 144), 1e-12)
	assert.Equal(t, 0.0, FrameRatio(math.NaN(), 144))
	assert.Equal(t, 0.0, FrameRatio(math.Inf(1), 144))
	assert.Equal(t, 0.0, FrameRatio(0.1, 0))
}

func TestRectEdgesAndOverlap(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 2, H: 4}
	assert.Equal(t, 1.0, r.Right())
	assert.Equal(t, 3.0, r.Bottom())

	assert.True(t, r.Overlaps(Rect{X: 1, Y: 3, W: 5, H: 5}))
	assert.False(t, r.Overlaps(Rect{X: 2, Y: 0, W: 5, H: 5}), "touching edges do not overlap")
	assert.False(t, r.Overlaps(Rect{}), "empty rect never overlaps")

	assert.True(t, r.OverlapsRows(Rect{X: 100, Y: 3, W: 1, H: 1}))
	assert.False(t, r.OverlapsRows(Rect{X: 0, Y: 4, W: 1, H: 1}))
	assert.True(t, r.OverlapsCols(Rect{X: 1, Y: 100, W: 1, H: 1}))
	assert.False(t, r.OverlapsCols(Rect{X: 2, Y: 0, W: 1, H: 1}))
}

func TestTileIndex(t *testing.T) {
	assert.Equal(t, 0, TileIndex(0, 32))
	assert.Equal(t, 0, TileIndex(31.9, 32))
	assert.Equal(t, 1, TileIndex(32, 32))
	assert.Equal(t, -1, TileIndex(-0.5, 32))
}
