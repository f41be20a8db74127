package physics

import "math"

// TruckInput describes a truck parked on a slope. Mass is collected by the
// exercise but cancels out of the sliding condition, which only involves
// the friction coefficient.
type TruckInput struct {
	Mass     float64 // kg
	Friction float64 // static friction coefficient
}

// Solve returns the slope angle in degrees at which the truck starts to
// slide:
//
//	θ = atan(μ)
func (in TruckInput) Solve() (float64, error) {
	return finite(radToDeg(math.Atan(in.Friction)))
}
