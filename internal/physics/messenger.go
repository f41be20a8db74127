package physics

import "math"

// MessengerInput describes a messenger bag dragged up an incline with
// friction. Height is part of the exercise statement but does not enter
// the force balance. Gravity is fixed at the Earth's surface value.
type MessengerInput struct {
	Angle        float64 // degrees
	Height       float64 // m
	Friction     float64 // kinetic friction coefficient
	Acceleration float64 // m/s²
	Mass         float64 // kg
}

// Solve returns the force in newtons needed to pull the bag:
//
//	F = m·g·sin(θ) + μ·m·g·cos(θ) + m·a
func (in MessengerInput) Solve() (float64, error) {
	theta := degToRad(in.Angle)
	f := in.Mass*EarthGravity*math.Sin(theta) +
		in.Friction*in.Mass*EarthGravity*math.Cos(theta) +
		in.Mass*in.Acceleration
	return finite(f)
}
