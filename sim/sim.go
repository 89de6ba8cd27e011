// Package sim runs a level headlessly: the per-tick stages shared by the
// game scene and the command line simulator.
package sim

import (
	"errors"

	"github.com/automoto/layerhop/components"
	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/physics"
	"github.com/automoto/layerhop/systems/factory"
	"github.com/automoto/layerhop/tags"
	"github.com/yohamta/donburi"
)

// Sim is one run of a level in a donburi world.
type Sim struct {
	World  donburi.World
	State  *components.LevelData
	Player *donburi.Entry
	Paused bool
	Tick   int
}

func New(lvl *level.Level) (*Sim, error) {
	return NewInWorld(donburi.NewWorld(), lvl)
}

// NewInWorld populates w with the level state and every spawn of lvl.
func NewInWorld(w donburi.World, lvl *level.Level) (*Sim, error) {
	state := components.Level.Get(factory.CreateLevel(w, lvl))
	player, err := factory.Populate(w, state)
	if err != nil {
		return nil, err
	}
	return &Sim{World: w, State: state, Player: player}, nil
}

// Body returns the player's body.
func (s *Sim) Body() *physics.Character {
	return components.Character.Get(s.Player).Body
}

// Step advances one tick with the player's intents and reports whether the
// goal was reached on this tick.
func (s *Sim) Step(dt float64, in physics.Intents) bool {
	components.Character.Get(s.Player).Intents = in

	if !s.Paused {
		UpdateWalkers(s.World)
	}
	StepCharacters(s.World, dt, s.Paused)
	UpdateKeyholes(s.World)
	UpdateAnimations(s.World, dt, s.Paused)

	finished := false
	if !s.Paused {
		UpdateDeaths(s.World, dt)
		UpdateParticles(s.World, dt)
		finished = UpdateGoal(s.World, dt)
	}
	s.Tick++
	return finished
}

var errNoLevel = errors.New("sim: world has no level")

// LevelState returns the run state of the world's level.
func LevelState(w donburi.World) (*components.LevelData, error) {
	entry, ok := tags.Level.First(w)
	if !ok {
		return nil, errNoLevel
	}
	return components.Level.Get(entry), nil
}

// PlayerBody returns the player's body, or nil when there is no player.
func PlayerBody(w donburi.World) *physics.Character {
	entry, ok := tags.Player.First(w)
	if !ok {
		return nil
	}
	return components.Character.Get(entry).Body
}
