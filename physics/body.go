package physics

import (
	"math"

	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/shared/gamemath"
)

// MoveLeft pushes horizontal velocity toward the left run speed.
func (c *Character) MoveLeft(dt float64) {
	c.moveHorizontal(dt, Left)
}

// MoveRight pushes horizontal velocity toward the right run speed.
func (c *Character) MoveRight(dt float64) {
	c.moveHorizontal(dt, Right)
}

func (c *Character) moveHorizontal(dt float64, d Direction) {
	c.Velocity.X = gamemath.Approach(dt, c.Velocity.X, float64(d)*config.Character.MoveSpeed, config.Character.MoveAccel)
	c.Direction = d

	if c.Resting {
		c.setStatus(walkingStatus(d), nil)
	} else if c.Status.IsJumping() && c.Status != jumpingStatus(d) {
		// turn around mid-jump without restarting the animation
		c.setStatusFrame(jumpingStatus(d), c.fall, true)
	}
}

// Jump starts a jump from rest or kicks off a wall. It reports whether a
// jump happened.
func (c *Character) Jump() bool {
	if c.Dead || c.LayerChanging || c.Jumping || c.Swimming {
		return false
	}

	switch {
	case c.Resting:
		c.Jumping = true
		c.Resting = false
		c.Velocity.Y = config.Character.JumpSpeed
	case c.WallSliding != 0:
		c.Jumping = true
		c.Velocity.Y = config.Character.SlideJumpSpeedY
		c.Velocity.X = float64(c.WallSliding) * config.Character.SlideJumpSpeedX
		c.WallSliding = 0
	default:
		return false
	}

	c.setStatus(jumpingStatus(c.Direction), c.fall)
	return true
}

func (c *Character) applyVerticalForces(dt float64) {
	cfg := config.Character

	if c.holdJump {
		if c.Jumping {
			c.JumpTimer = math.Min(cfg.JumpTimerLimit, c.JumpTimer+dt)
			c.Velocity.Y = gamemath.Approach(dt, c.Velocity.Y, cfg.JumpSpeed, cfg.JumpAccel)
			if c.JumpTimer == cfg.JumpTimerLimit {
				c.Jumping = false
				c.JumpTimer = 0
			}
		} else if c.Swimming {
			c.Velocity.Y = gamemath.Approach(dt, c.Velocity.Y, cfg.SwimSpeed, cfg.SwimAccel)
		}
	} else if c.Jumping {
		c.Jumping = false
		c.JumpTimer = 0
	}

	if c.Resting || c.transition.savedResting {
		c.Velocity.X = gamemath.Approach(dt, c.Velocity.X, 0, cfg.Friction)
		if (c.Velocity.X != 0 || c.LayerChanging) && c.opts.Dust != nil {
			c.opts.Dust.Emit(dt, c.Layer)
		}
	} else if !c.LayerChanging {
		c.Velocity.Y = gamemath.Approach(dt, c.Velocity.Y, c.opts.Gravity, c.opts.GravityAccel)
	}

	if c.Swimming {
		c.Velocity.X = gamemath.Approach(dt, c.Velocity.X, 0, cfg.SwimDrag)
		if c.opts.Bubbles != nil {
			c.opts.Bubbles.Emit(dt, c.Layer)
		}
	}
}

// integrate moves the box by the rounded displacement and clears the
// one-tick speed modifier.
func (c *Character) integrate(dt float64) {
	c.Position.X += gamemath.Round(c.Velocity.X * dt * c.SpeedModifier)
	c.Position.Y += gamemath.Round(c.Velocity.Y * dt * c.SpeedModifier)
	c.SpeedModifier = 1
}

func (c *Character) clampToWorld() {
	w, h := c.grid.WorldBounds()

	if c.Position.Left() < 0 {
		c.Position.SetLeft(0)
		if c.Velocity.X < 0 {
			c.Velocity.X = 0
		}
	}
	if c.Position.Right() > w {
		c.Position.SetRight(w)
		if c.Velocity.X > 0 {
			c.Velocity.X = 0
		}
	}

	if c.Position.Bottom() > h+config.Character.DeathMargin {
		c.Die()
	}
}
