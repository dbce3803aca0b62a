package demo

import "math"

// Simulation is the only state that changes while the loop runs.
type Simulation struct {
	Time   float64
	Offset [2]float32
	Color  [4]float32
}

func NewSimulation() *Simulation {
	return &Simulation{
		Offset: initialOffset,
		Color:  initialColor,
	}
}

// Step advances simulated time by dt seconds and recomputes the horizontal
// offset and the red channel. The vertical offset is left untouched.
func (s *Simulation) Step(dt float64) {
	s.Time += dt
	sin := math.Sin(s.Time)
	s.Offset[0] = float32(sin / 2) // /2 keeps the triangle on screen
	s.Color[0] = float32(sin + 0.5)
}
