// internal/system/particle.go
package system

import (
	"image/color"

	"go-ant-colony/internal/component"
	"go-ant-colony/internal/config"
	"go-ant-colony/internal/entity"
	"go-ant-colony/internal/utils"
)

type ParticleSystem struct {
	world *entity.World
}

func NewParticleSystem(world *entity.World) *ParticleSystem {
	return &ParticleSystem{world: world}
}

func (s *ParticleSystem) Update() {
	kept := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		p.Pos.X += p.Vel.VX
		p.Pos.Y += p.Vel.VY
		p.Vel.VY += config.ParticleGravity
		p.Life--
		p.Size *= config.ParticleShrink
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	clear(s.world.Particles[len(kept):])
	s.world.Particles = kept
}

// Emit adds one particle at (x, y) with a random initial velocity. Nothing is
// added when particles are disabled.
func Emit(w *entity.World, x, y float64, c color.RGBA, size float64) {
	if !w.ParticlesEnabled {
		return
	}
	w.AddParticle(&component.Particle{
		Pos:   component.Position{X: x, Y: y},
		Vel:   component.Velocity{VX: utils.Spread(w.Rand, config.ParticleSpeed), VY: utils.Spread(w.Rand, config.ParticleSpeed)},
		Color: c,
		Life:  config.ParticleLife,
		Size:  size,
	})
}
