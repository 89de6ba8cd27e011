package sim

import (
	"log"
	"math"

	"github.com/automoto/layerhop/components"
	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/physics"
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/automoto/layerhop/tags"
	"github.com/yohamta/donburi"
)

// UpdateKeyholes spends keys on the keyhole targets reported this tick.
func UpdateKeyholes(w donburi.World) {
	state, err := LevelState(w)
	if err != nil {
		return
	}
	for _, b := range state.TakeTargets() {
		if state.Consume(b) {
			log.Printf("Keyhole at (%d,%d) on layer %d unlocked, %d keys left", b.Col, b.Row, b.Layer, state.Keys)
		}
	}
}

// UpdateDeaths starts the death sequence of characters that died this tick
// and finishes the ones whose timer ran out: the player respawns, other
// characters are removed.
func UpdateDeaths(w donburi.World, dt float64) {
	state, err := LevelState(w)
	if err != nil {
		return
	}

	for _, entity := range state.TakeDeaths() {
		e := w.Entry(entity)
		if !e.Valid() || e.HasComponent(components.Death) {
			continue
		}
		e.AddComponent(components.Death)
		components.Death.SetValue(e, components.DeathData{Timer: cfg.Run.RespawnDelay})
		if e.HasComponent(tags.Player) {
			state.Deaths++
		}
	}

	var finished []*donburi.Entry
	components.Death.Each(w, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		if !e.HasComponent(tags.Player) {
			w.Remove(e.Entity())
			continue
		}
		c := components.Character.Get(e)
		c.Body.Spawn()
		c.Intents = physics.Intents{}
		e.RemoveComponent(components.Death)
		log.Printf("Player respawned at (%d,%d) on layer %d", c.Body.Position.X, c.Body.Position.Y, c.Body.Layer)
	}
}

// UpdateGoal advances the run clock and reports whether the player reached
// the goal on this tick.
func UpdateGoal(w donburi.World, dt float64) bool {
	state, err := LevelState(w)
	if err != nil || state.Finished {
		return false
	}
	state.Clock += dt

	body := PlayerBody(w)
	if body == nil || body.Dead || body.LayerChanging {
		return false
	}

	reached := false
	components.Goal.Each(w, func(e *donburi.Entry) {
		goal := components.Goal.Get(e)
		if goal.Layer == body.Layer && near(body.Position, goal.Box, cfg.Run.GoalRadius) {
			reached = true
		}
	})
	if !reached {
		return false
	}

	state.Finished = true
	if state.Best == 0 || state.Clock < state.Best {
		state.Best = state.Clock
	}
	log.Printf("Level %s finished in %.2fs (best %.2fs, %d deaths)", state.Level.Name, state.Clock, state.Best, state.Deaths)
	return true
}

func near(a, b gamemath.Rect, radius float64) bool {
	dx := float64(a.CenterX() - b.CenterX())
	dy := float64(a.CenterY() - b.CenterY())
	return math.Hypot(dx, dy) <= radius
}

// UpdateAnimations advances status playback. While paused only dead
// characters keep animating.
func UpdateAnimations(w donburi.World, dt float64, paused bool) {
	components.Animation.Each(w, func(e *donburi.Entry) {
		if paused && !components.Character.Get(e).Body.Dead {
			return
		}
		components.Animation.Get(e).Update(dt)
	})
}

func UpdateParticles(w donburi.World, dt float64) {
	components.Particles.Each(w, func(e *donburi.Entry) {
		p := components.Particles.Get(e)
		p.Dust.Update(dt)
		p.Bubbles.Update(dt)
	})
}
