package physics

import (
	"math"

	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/automoto/layerhop/shared/leveldata"
)

// GroundProjector places a character's shadow on the ground below it, in
// world coordinates. X and Y are the shadow's top-left corner.
type GroundProjector struct {
	X, Y float64

	visible    bool
	looking    bool
	lastGround *level.Block
}

// Visible is false when there is no ground below the character.
func (g *GroundProjector) Visible() bool {
	return g.visible
}

func (g *GroundProjector) reset(ground *level.Block) {
	g.X, g.Y = 0, 0
	g.visible = false
	g.looking = true
	g.lastGround = ground
}

func (g *GroundProjector) update(c *Character, dt float64) {
	sw, sh := config.Shadow.Width, config.Shadow.Height
	step := float64(config.Layers.Step)
	cx := float64(c.Position.CenterX())

	if c.Resting && g.visible {
		g.X = cx - sw/2
		g.Y = float64(c.Position.Bottom()) - sh/2
		return
	}

	ground := c.index.ClosestGround(c.Layer, c.Position, c.LayerChanging)
	if ground == nil {
		g.visible = false
		return
	}

	g.X = cx - sw/2
	if !g.visible {
		g.Y = float64(ground.Box.Top()) - sh/2
		g.visible = true
		if g.lastGround == nil {
			g.lastGround = ground
		}
		return
	}

	target := float64(ground.Box.Top()) - sh/2
	lagging := false

	if c.LayerChanging {
		old := g.lastGround
		if old != nil && g.looking {
			switch {
			case ground.Box.Top() < old.Box.Top() && c.transition.previous < c.Layer:
				// ground came closer: climb at once
				g.Y = float64(ground.Box.Top()) - step - sh/2
				g.looking = false
			case ground.Box.Top() > old.Box.Top() && c.transition.previous > c.Layer:
				target = float64(old.Box.Top()) - step - sh/2
				lagging = true
			}
		}
	} else {
		g.lastGround = ground
		g.looking = true

		box := ground.Box
		if ground.Slope != leveldata.SlopeNone && cx >= float64(box.Left()) && cx <= float64(box.Right()) {
			left, right := float64(box.Left()), float64(box.Right())
			if ground.Slope == leveldata.SlopeLeft {
				left, right = right, left
			}
			target = gamemath.Remap(cx, left, right, float64(box.Bottom()), float64(box.Top())) - sh/2
		}
	}

	rate := config.Shadow.LagStep
	if !lagging {
		rate = math.Max(math.Abs(target-g.Y)*config.Shadow.StepScale, config.Shadow.MinStep)
	}
	g.Y = gamemath.Approach(dt, g.Y, target, rate)
}
