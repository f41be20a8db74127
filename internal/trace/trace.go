// Package trace samples the closed-form curves behind each exercise so the
// CLI can plot them. No numeric integration is involved; every point is
// evaluated directly from the formula.
package trace

import (
	"fmt"
	"math"

	"github.com/san-kum/fisicalc/internal/physics"
)

// ProjectileArc samples the height of a projectile over its full flight,
// from launch to landing. The flight time follows from T = 2·v₀·sin(θ)/g.
func ProjectileArc(v0, angleDeg, g float64, samples int) ([]float64, error) {
	if samples < 2 {
		return nil, fmt.Errorf("trace: need at least 2 samples, got %d", samples)
	}
	if g <= 0 {
		return nil, fmt.Errorf("trace: gravity must be positive, got %f", g)
	}

	theta := angleDeg * math.Pi / 180
	vy := v0 * math.Sin(theta)
	flight := 2 * vy / g
	if flight <= 0 {
		return nil, fmt.Errorf("trace: no flight for angle %f", angleDeg)
	}

	heights := make([]float64, samples)
	for i := range heights {
		t := flight * float64(i) / float64(samples-1)
		heights[i] = vy*t - 0.5*g*t*t
	}
	return heights, nil
}

// SlideAngleSweep samples the truck slide angle for friction coefficients
// from 0 to maxFriction.
func SlideAngleSweep(maxFriction float64, samples int) ([]float64, error) {
	if samples < 2 {
		return nil, fmt.Errorf("trace: need at least 2 samples, got %d", samples)
	}
	if maxFriction <= 0 {
		return nil, fmt.Errorf("trace: max friction must be positive, got %f", maxFriction)
	}

	angles := make([]float64, samples)
	for i := range angles {
		mu := maxFriction * float64(i) / float64(samples-1)
		angle, err := physics.TruckInput{Friction: mu}.Solve()
		if err != nil {
			return nil, err
		}
		angles[i] = angle
	}
	return angles, nil
}

// ForceSweep samples the messenger-bag force across slope angles from 0 to
// 90 degrees, holding the other inputs fixed.
func ForceSweep(in physics.MessengerInput, samples int) ([]float64, error) {
	if samples < 2 {
		return nil, fmt.Errorf("trace: need at least 2 samples, got %d", samples)
	}

	forces := make([]float64, samples)
	for i := range forces {
		in.Angle = 90 * float64(i) / float64(samples-1)
		f, err := in.Solve()
		if err != nil {
			return nil, err
		}
		forces[i] = f
	}
	return forces, nil
}
