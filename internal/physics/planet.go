package physics

import "math"

// PlanetInput describes a projectile thrown on an unknown planet: given the
// launch speed, the launch angle and the horizontal distance covered, the
// planet's gravitational acceleration follows from the range equation.
type PlanetInput struct {
	InitialVelocity float64 // m/s
	Angle           float64 // degrees
	Distance        float64 // m
}

// Solve returns the gravitational acceleration in m/s².
//
// From the projectile range d = v₀²·sin(2θ)/g:
//
//	g = 2·v₀²·sin(θ)·cos(θ) / d
func (in PlanetInput) Solve() (float64, error) {
	theta := degToRad(in.Angle)
	g := 2 * in.InitialVelocity * in.InitialVelocity * math.Sin(theta) * math.Cos(theta) / in.Distance
	return finite(g)
}
