package physics

import (
	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/shared/gamemath"
)

// Transition is the depth-switch state of a character.
type Transition int

const (
	Stable Transition = iota
	TransitioningForward
	TransitioningBackward
)

func (t Transition) String() string {
	switch t {
	case TransitioningForward:
		return "forward"
	case TransitioningBackward:
		return "backward"
	}
	return "stable"
}

type layerTransition struct {
	previous int
	// offset eases toward Step*layer; lastOffset is the value already
	// applied to the position.
	offset     float64
	lastOffset float64

	savedResting   bool
	savedVelocityY float64
}

func newLayerTransition(layer int) layerTransition {
	offset := float64(config.Layers.Step * layer)
	return layerTransition{previous: layer, offset: offset, lastOffset: offset}
}

// Transition reports whether the character is sliding between layers.
func (c *Character) Transition() Transition {
	if !c.LayerChanging {
		return Stable
	}
	if c.Layer > c.transition.previous {
		return TransitioningForward
	}
	return TransitioningBackward
}

// RequestBack switches one layer back when off cooldown and the destination
// is clear. Rejections leave the character untouched.
func (c *Character) RequestBack() bool {
	if c.Dead || c.LayerCooldown != 0 || c.Layer <= 0 {
		return false
	}

	probe := c.Position.Offset(0, -config.Layers.BackProbe)
	if c.walled(c.Layer-1, probe) {
		return false
	}

	c.beginTransition(c.Layer - 1)
	return true
}

// RequestFront switches one layer forward when off cooldown and the
// destination is clear. The draw layer moves immediately.
func (c *Character) RequestFront() bool {
	if c.Dead || c.LayerCooldown != 0 || c.Layer >= c.grid.LayerCount()-1 {
		return false
	}

	probe := c.Position.Offset(0, config.Layers.FrontProbe)
	if _, h := c.grid.WorldBounds(); probe.Y >= h {
		return false
	}
	if c.walled(c.Layer+1, probe) {
		return false
	}

	c.beginTransition(c.Layer + 1)
	c.DrawLayer = c.Layer
	return true
}

func (c *Character) walled(layer int, probe gamemath.Rect) bool {
	for _, b := range c.index.NearbyBlocks(layer, probe, config.Layers.ProbeRadius) {
		if b.Collidable && probe.Touches(b.Box) {
			return true
		}
	}
	return false
}

func (c *Character) beginTransition(target int) {
	c.transition.previous = c.Layer
	c.Layer = target
	c.LayerChanging = true
	c.Velocity.Y = 0
	c.LayerCooldown = config.Layers.Cooldown
	c.transition.savedResting = c.Resting
}

// stepTransition eases the layer offset and carries the position with it.
// While stable it records the vertical velocity to restore after the next
// transition.
func (c *Character) stepTransition(dt float64) {
	t := &c.transition

	if c.LayerChanging {
		switch c.Transition() {
		case TransitioningForward:
			c.setStatus(config.SwitchFront, c.fall)
		case TransitioningBackward:
			c.setStatus(config.SwitchBack, c.fall)
		}

		target := float64(config.Layers.Step * c.Layer)
		t.offset = gamemath.Approach(dt, t.offset, target, config.Layers.OffsetRate)
		if t.offset == target {
			c.LayerChanging = false
			c.Velocity.Y = t.savedVelocityY
			c.DrawLayer = c.Layer
			t.savedResting = false
		}

		c.Position.Y += gamemath.Round(t.offset) - gamemath.Round(t.lastOffset)
	} else {
		t.savedVelocityY = c.Velocity.Y
	}

	t.lastOffset = t.offset
}
