// internal/component/particle.go
package component

import "image/color"

// Particle is a short-lived visual effect.
type Particle struct {
	Pos   Position
	Vel   Velocity
	Color color.RGBA
	Life  int
	Size  float64
}

func (p *Particle) Alive() bool {
	return p.Life > 0
}
