package physics

import (
	"math"
	"testing"
)

func TestTruckUnitFriction(t *testing.T) {
	in := TruckInput{Mass: 3000, Friction: 1}

	angle, err := in.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(angle-45.0) > 1e-9 {
		t.Errorf("expected 45 degrees for friction 1, got %f", angle)
	}
}

func TestTruckZeroFriction(t *testing.T) {
	in := TruckInput{Mass: 3000, Friction: 0}

	angle, err := in.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(angle) > 1e-10 {
		t.Errorf("expected 0 degrees for frictionless slope, got %f", angle)
	}
}

func TestTruckMassDoesNotMatter(t *testing.T) {
	light := TruckInput{Mass: 1, Friction: 0.7}
	heavy := TruckInput{Mass: 40000, Friction: 0.7}

	a1, err := light.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a2, err := heavy.Solve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a1 != a2 {
		t.Errorf("slide angle should not depend on mass: %f vs %f", a1, a2)
	}
}
