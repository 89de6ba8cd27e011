package components

import (
	"image/color"
	"math/rand"

	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// EmitterKind selects where particles start and how they drift.
type EmitterKind int

const (
	EmitDust EmitterKind = iota
	EmitBubbles
)

// Particle is one fading puff in world coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Layer  int
	Size   float32
	Alpha  float32

	fade *gween.Tween
}

// Emitter spawns particles around a body at the configured rate. It is the
// body's dust or bubble sink.
type Emitter struct {
	Kind      EmitterKind
	Color     color.RGBA
	Body      *physics.Character
	Particles []*Particle

	pending float64
	rng     *rand.Rand
}

func NewEmitter(kind EmitterKind, seed int64) *Emitter {
	c := cfg.Particles.DustColor
	if kind == EmitBubbles {
		c = cfg.Particles.BubbleColor
	}
	return &Emitter{Kind: kind, Color: c, rng: rand.New(rand.NewSource(seed))}
}

// Emit accumulates dt worth of particles on a layer.
func (e *Emitter) Emit(dt float64, layer int) {
	if e.Body == nil {
		return
	}
	e.pending += dt * cfg.Particles.Rate
	for e.pending >= 1 {
		e.pending--
		if len(e.Particles) >= cfg.Particles.MaxParticles {
			continue
		}
		e.Particles = append(e.Particles, e.spawn(layer))
	}
}

func (e *Emitter) spawn(layer int) *Particle {
	box := e.Body.Position
	jitter := func(n float64) float64 { return (e.rng.Float64()*2 - 1) * n }

	p := &Particle{Layer: layer, Size: float32(cfg.Particles.Size), Alpha: 1}
	switch e.Kind {
	case EmitBubbles:
		p.X = float64(box.CenterX()) + jitter(float64(box.W)/2)
		p.Y = float64(box.CenterY()) + jitter(float64(box.H)/4)
		p.VX = jitter(15)
		p.VY = -60 - e.rng.Float64()*40
	default:
		p.X = float64(box.CenterX()) + jitter(float64(box.W)/3)
		p.Y = float64(box.Bottom())
		p.VX = -e.Body.Velocity.X*0.1 + jitter(20)
		p.VY = -20 - e.rng.Float64()*20
	}
	p.fade = gween.New(1, 0, float32(cfg.Particles.Lifetime), ease.OutQuad)
	return p
}

// Update moves and fades every particle, dropping finished ones.
func (e *Emitter) Update(dt float64) {
	live := e.Particles[:0]
	for _, p := range e.Particles {
		alpha, done := p.fade.Update(float32(dt))
		if done {
			continue
		}
		p.Alpha = alpha
		p.X += p.VX * dt
		p.Y += p.VY * dt
		live = append(live, p)
	}
	for i := len(live); i < len(e.Particles); i++ {
		e.Particles[i] = nil
	}
	e.Particles = live
}

// ParticlesData holds a character's emitters.
type ParticlesData struct {
	Dust    *Emitter
	Bubbles *Emitter
}

var Particles = donburi.NewComponentType[ParticlesData]()
