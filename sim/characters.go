package sim

import (
	"github.com/automoto/layerhop/components"
	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/physics"
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/automoto/layerhop/tags"
	"github.com/yohamta/donburi"
)

// StepCharacters runs one physics tick for every character. While paused
// only airborne characters keep integrating, without intents and without
// status changes, so a fall in progress can finish.
func StepCharacters(w donburi.World, dt float64, paused bool) {
	components.Character.Each(w, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		body := c.Body
		body.Paused = paused

		if paused {
			if body.Dead || body.Resting {
				return
			}
			body.Update(dt, physics.Intents{})
		} else {
			body.Update(dt, c.Intents)
		}
		body.UpdateShadow(dt)
	})
}

// UpdateWalkers sets walker intents. A walker turns around when the last
// tick stopped it against a wall or when the floor ends ahead of it.
func UpdateWalkers(w donburi.World) {
	state, err := LevelState(w)
	if err != nil {
		return
	}

	components.Walker.Each(w, func(e *donburi.Entry) {
		walker := components.Walker.Get(e)
		c := components.Character.Get(e)
		body := c.Body
		if body.Dead {
			return
		}

		moving := c.Intents.MoveLeft || c.Intents.MoveRight
		if body.Resting && moving && (body.Velocity.X == 0 || atLedge(state.Level, body, walker.Direction)) {
			walker.Direction = -walker.Direction
		}

		c.Intents = physics.Intents{
			MoveLeft:  walker.Direction == physics.Left,
			MoveRight: walker.Direction == physics.Right,
		}
	})
}

// atLedge reports whether there is no solid block just ahead of and below
// the body's leading edge.
func atLedge(lvl *level.Level, body *physics.Character, dir physics.Direction) bool {
	box := body.Position
	x := box.Right() + 4
	if dir == physics.Left {
		x = box.Left() - 5
	}
	probe := gamemath.NewRect(x, box.Bottom(), 1, 4)
	return len(lvl.Overlapping(body.Layer, probe, tags.ResolvSolid)) == 0
}
