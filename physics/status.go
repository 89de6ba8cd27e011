package physics

import "github.com/automoto/layerhop/config"

func directional(d Direction, left, right config.StatusID) config.StatusID {
	if d == Left {
		return left
	}
	return right
}

func standingStatus(d Direction) config.StatusID {
	return directional(d, config.StandingLeft, config.StandingRight)
}

func walkingStatus(d Direction) config.StatusID {
	return directional(d, config.WalkingLeft, config.WalkingRight)
}

func jumpingStatus(d Direction) config.StatusID {
	return directional(d, config.JumpingLeft, config.JumpingRight)
}

func fallingStatus(d Direction) config.StatusID {
	return directional(d, config.FallingLeft, config.FallingRight)
}

// setStatus applies a status if it is the first change this tick, differs
// from the current one and the animator knows it.
func (c *Character) setStatus(status config.StatusID, onComplete func()) bool {
	return c.setStatusFrame(status, onComplete, false)
}

func (c *Character) setStatusFrame(status config.StatusID, onComplete func(), keepFrame bool) bool {
	anim := c.opts.Animator
	if c.statusChanged || status == c.Status || anim == nil || !anim.HasStatus(status) {
		return false
	}

	c.statusChanged = true
	c.Status = status
	anim.SetStatus(status, onComplete, keepFrame)
	return true
}

// fall is the completion callback of one-shot statuses.
func (c *Character) fall() {
	c.setStatus(fallingStatus(c.Direction), nil)
}

func (c *Character) deriveStatus() {
	if c.LayerChanging || c.Jumping {
		return
	}

	if c.Resting {
		if !c.movingLeft && !c.movingRight {
			c.setStatus(standingStatus(c.Direction), nil)
		}
	} else if !c.Status.IsJumping() {
		c.setStatus(fallingStatus(c.Direction), nil)
	}
}
