package physics

import (
	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/automoto/layerhop/shared/leveldata"
)

// resolveCollisions corrects the box against every nearby block it touches.
// last is the box before this tick's integration; crossing tests compare
// against it so a body already resting on a surface does not re-trigger.
func (c *Character) resolveCollisions(last gamemath.Rect) {
	for _, b := range c.index.NearbyBlocks(c.Layer, c.Position, config.Layers.CollisionRadius) {
		if !c.Position.Touches(b.Box) {
			continue
		}

		if b.Collidable {
			c.resolveWalls(b, last)
			c.resolveFloors(b, last)
			c.resolveSlope(b)
		}
		c.applyTileEffects(b)
	}
}

func (c *Character) resolveWalls(b *level.Block, last gamemath.Rect) {
	p := &c.Position
	limit := b.Box

	if p.Top() >= limit.Bottom() || p.Bottom() <= limit.Top() {
		return
	}

	if b.Has(leveldata.PropLeftWall) && p.Right() >= limit.Left() && last.Right() <= limit.Left() {
		p.SetRight(limit.Left())
		if c.Velocity.X > 0 {
			c.Velocity.X = 0
		}
		c.wallContact(b, -1)
	}

	if b.Has(leveldata.PropRightWall) && p.Left() <= limit.Right() && last.Left() >= limit.Right() {
		p.SetLeft(limit.Right())
		if c.Velocity.X < 0 {
			c.Velocity.X = 0
		}
		c.wallContact(b, 1)
	}
}

func (c *Character) wallContact(b *level.Block, dir int) {
	if c.Resting || b.Has(leveldata.PropNoSlide) {
		return
	}
	c.WallSliding = dir
	if c.Velocity.Y > 0 {
		c.SpeedModifier = config.Character.SlideModifier
	}
}

func (c *Character) resolveFloors(b *level.Block, last gamemath.Rect) {
	p := &c.Position
	limit := b.Box

	if p.Left() >= limit.Right() || p.Right() <= limit.Left() {
		return
	}

	if b.Has(leveldata.PropUpWall) && p.Bottom() >= limit.Top() && last.Bottom() <= limit.Top() {
		p.SetBottom(limit.Top())
		c.Resting = true
		if c.Velocity.Y > 0 {
			c.Velocity.Y = 0
		}
	}

	if b.Has(leveldata.PropDownWall) && p.Top() <= limit.Bottom() && last.Top() >= limit.Bottom() {
		p.SetTop(limit.Bottom())
		if c.Velocity.Y < 0 {
			c.Velocity.Y = 0
		}
	}
}

func (c *Character) resolveSlope(b *level.Block) {
	if b.Slope == leveldata.SlopeNone {
		return
	}

	cx := c.Position.CenterX()
	gate := config.Character.SlopeGate
	if cx < b.Box.Left()-gate || cx > b.Box.Right()+gate {
		return
	}

	floor := gamemath.SlopeFloorY(b.Box, cx, b.Slope == leveldata.SlopeRight)
	if c.Position.Bottom() >= floor {
		c.Position.SetBottom(floor)
		c.Sloping = true
		c.Resting = true
		if c.Velocity.Y > 0 {
			c.Velocity.Y = 0
		}
	}
}

// applyTileEffects runs for every touched block, collidable or not. Speed
// modifiers overwrite each other; the last block evaluated wins.
func (c *Character) applyTileEffects(b *level.Block) {
	if c.Player && b.Has(leveldata.PropKeyhole) && c.opts.Keyholes != nil && !c.opts.Keyholes.IsConsumed(b) {
		target := b
		if below := c.grid.BlockAt(c.Layer, b.CellX, b.CellY+1); below != nil && below.Has(leveldata.PropKeyhole) {
			target = below
		}
		c.opts.Keyholes.AddKeyTarget(target)
	}

	if b.Has(leveldata.PropSlow) {
		c.SpeedModifier = config.Character.SlowModifier
	}
	if b.Has(leveldata.PropSwim) {
		c.Swimming = true
		c.SpeedModifier = config.Character.SwimModifier
	}
	if b.Has(leveldata.PropMud) {
		c.SpeedModifier = config.Character.MudModifier
	}
	if b.Has(leveldata.PropHazard) {
		c.Die()
	}
}
