package physics

import (
	"errors"
	"math"
)

// EarthGravity is the gravitational acceleration used by exercises that fix
// g at the Earth's surface value.
const EarthGravity = 9.81

// ErrNotFinite indicates a computed result that is NaN or infinite.
var ErrNotFinite = errors.New("physics: result is not finite")

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// finite re-validates a computed scalar, guarding against degenerate
// inputs such as a zero divisor.
func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}
