package demo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSimulation(t *testing.T) {
	s := NewSimulation()
	assert.Zero(t, s.Time)
	assert.Equal(t, [2]float32{-0.5, -0.5}, s.Offset)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, s.Color)
}

func TestOffsetFollowsSine(t *testing.T) {
	s := NewSimulation()
	for i := 1; i <= 2000; i++ {
		s.Step(SimStep)
		want := math.Sin(s.Time) / 2
		assert.InDelta(t, want, float64(s.Offset[0]), 1e-6, "t=%v", s.Time)
		assert.GreaterOrEqual(t, s.Offset[0], float32(-0.5))
		assert.LessOrEqual(t, s.Offset[0], float32(0.5))
		assert.InDelta(t, math.Sin(s.Time)+0.5, float64(s.Color[0]), 1e-6)
	}
	assert.InDelta(t, 2000*SimStep, s.Time, 1e-9)
	// Only the horizontal offset and the red channel move.
	assert.Equal(t, float32(-0.5), s.Offset[1])
	assert.Equal(t, [3]float32{0, 0, 1}, [3]float32{s.Color[1], s.Color[2], s.Color[3]})
}

func TestOffsetBoundsForArbitraryTimes(t *testing.T) {
	for _, dt := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 1e3, -7.25, 123456.789} {
		s := NewSimulation()
		s.Step(dt)
		assert.InDelta(t, math.Sin(dt)/2, float64(s.Offset[0]), 1e-6, "dt=%v", dt)
		assert.LessOrEqual(t, math.Abs(float64(s.Offset[0])), 0.5)
	}
}
