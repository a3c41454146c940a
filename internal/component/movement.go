// internal/component/movement.go
package component

import "math"

// Position is a point in world units.
type Position struct {
	X, Y float64
}

// DistanceTo is the Euclidean distance to o.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Velocity is a per-tick displacement.
type Velocity struct {
	VX, VY float64
}
