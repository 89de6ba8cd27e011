package components

import (
	"testing"

	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/physics"
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitterRateAndCap(t *testing.T) {
	e := NewEmitter(EmitDust, 1)
	e.Body = &physics.Character{Position: gamemath.NewRect(100, 100, 50, 50)}

	e.Emit(0.016, 2)
	require.Len(t, e.Particles, 1)
	assert.Equal(t, 2, e.Particles[0].Layer)
	assert.Equal(t, 150.0, e.Particles[0].Y, "dust starts at the feet")

	for i := 0; i < 200; i++ {
		e.Emit(0.016, 0)
	}
	assert.Len(t, e.Particles, cfg.Particles.MaxParticles)
}

func TestEmitterWithoutBodyIsSilent(t *testing.T) {
	e := NewEmitter(EmitBubbles, 1)
	e.Emit(1, 0)
	assert.Empty(t, e.Particles)
}

func TestParticlesFadeOut(t *testing.T) {
	e := NewEmitter(EmitBubbles, 7)
	e.Body = &physics.Character{Position: gamemath.NewRect(0, 0, 50, 50)}
	e.Emit(0.05, 0)
	require.NotEmpty(t, e.Particles)

	p := e.Particles[0]
	y := p.Y
	e.Update(cfg.Particles.Lifetime / 2)
	assert.Less(t, p.Alpha, float32(1))
	assert.Greater(t, p.Alpha, float32(0))
	assert.Less(t, p.Y, y, "bubbles rise")

	e.Update(cfg.Particles.Lifetime)
	assert.Empty(t, e.Particles)
}
