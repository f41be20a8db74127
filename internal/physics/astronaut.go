package physics

import "math"

// AstronautInput describes a free throw on a low-gravity body. Height and
// HoopHeight are part of the exercise statement and are validated with the
// rest of the form, but the range only depends on speed, angle and gravity.
type AstronautInput struct {
	Height          float64 // m, astronaut release height
	Gravity         float64 // m/s²
	Angle           float64 // degrees
	InitialVelocity float64 // m/s
	HoopHeight      float64 // m
}

// Solve returns the horizontal distance the ball travels, in meters:
//
//	d = v₀²·sin(2θ) / g
func (in AstronautInput) Solve() (float64, error) {
	theta := degToRad(in.Angle)
	d := in.InitialVelocity * in.InitialVelocity * math.Sin(2*theta) / in.Gravity
	return finite(d)
}
