package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained box",
			a:        Box{X: 0, Y: 0, W: 20, H: 20},
			b:        Box{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        Box{X: 0, Y: 0, W: 1, H: 1},
			b:        Box{X: 0.9, Y: 0.9, W: 1, H: 1},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "reversed")
		})
	}
}

func TestBoxCells(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want Rect
	}{
		{"whole cells", Box{X: 2, Y: 3, W: 10, H: 1}, NewRect(2, 3, 10, 1)},
		{"fractional origin", Box{X: 2.3, Y: 3.2, W: 10, H: 1}, NewRect(2, 3, 10, 1)},
		{"tiny box still covers a cell", Box{X: 5, Y: 5, W: 0.2, H: 0.2}, NewRect(5, 5, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.box.Cells())
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())

	b := Box{X: 4, Y: 0, W: 6, H: 1}
	assert.InDelta(t, 7.0, b.CenterX(), 1e-9)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max), "Clamp(%d, %d, %d)", tc.val, tc.min, tc.max)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ClampF(tc.val, tc.min, tc.max), "ClampF(%v, %v, %v)", tc.val, tc.min, tc.max)
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 5, Min(5, 10))
	assert.Equal(t, 10, Max(5, 10))
}

func TestInputFrameHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	var kb Keyboard = f
	assert.True(t, kb.Held(ActionLeft))
	assert.False(t, kb.Held(ActionRight))

	var zero InputFrame
	assert.False(t, zero.Held(ActionPause), "zero-value frame holds nothing")
}

func TestRuntimeConfigFrameDuration(t *testing.T) {
	def := DefaultConfig()
	assert.Equal(t, 60, def.TickRate)
	assert.Equal(t, time.Second/60, def.FrameDuration())

	assert.Equal(t, time.Second/30, RuntimeConfig{TickRate: 30}.FrameDuration())
	assert.Equal(t, def.FrameDuration(), RuntimeConfig{}.FrameDuration(), "unset rate uses the default")
}
