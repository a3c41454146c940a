package system

import (
	"testing"

	"go-ant-colony/internal/config"
)

func TestParticles_LiveSixtyTicks(t *testing.T) {
	w, src := newTestWorld()
	src.Floats = []float64{0.5, 0.5}
	Emit(w, 100, 100, config.CoinColor, config.CoinParticleSize)
	p := w.Particles[0]

	s := NewParticleSystem(w)
	s.Update()
	if p.Pos.X != 100 || p.Pos.Y != 100 || p.Vel.VY != 0.1 || p.Life != 59 {
		t.Fatalf("after one tick %+v", p)
	}
	for i := 0; i < 58; i++ {
		s.Update()
	}
	if len(w.Particles) != 1 {
		t.Fatal("particle removed early")
	}
	s.Update()
	if len(w.Particles) != 0 {
		t.Fatal("particle should be gone after 60 ticks")
	}
	if p.Size >= config.CoinParticleSize {
		t.Fatal("particle did not shrink")
	}
}

func TestEmit_DisabledIsNoop(t *testing.T) {
	w, _ := newTestWorld()
	w.ParticlesEnabled = false
	Emit(w, 0, 0, config.CoinColor, 3)
	if len(w.Particles) != 0 {
		t.Fatal("particle emitted while disabled")
	}
}
