// Package physics provides the closed-form equations behind the calculator
// panels.
//
// Each exercise is an input struct with a single Solve method:
//
//   - [PlanetInput]: gravitational acceleration from a projectile throw
//   - [AstronautInput]: free-throw range on a low-gravity body
//   - [TruckInput]: slope angle at which a truck starts to slide
//   - [MessengerInput]: force balance on a dragged messenger bag
//
// Angles are accepted in degrees and converted internally. Solve returns
// [ErrNotFinite] when the inputs drive the expression to a NaN or infinity,
// such as a zero travel distance or zero gravity.
package physics
