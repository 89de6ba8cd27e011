package factory

import (
	"fmt"

	"github.com/automoto/layerhop/archetypes"
	"github.com/automoto/layerhop/assets/animations"
	"github.com/automoto/layerhop/components"
	"github.com/automoto/layerhop/physics"
	"github.com/automoto/layerhop/shared/leveldata"
	"github.com/yohamta/donburi"
)

// deathNotice forwards a body's death to the level state as its entity.
type deathNotice struct {
	state  *components.LevelData
	entity donburi.Entity
}

func (d deathNotice) CharacterDied(*physics.Character) {
	d.state.ReportDeath(d.entity)
}

// CreateCharacter spawns the player or a walker at a spawn point. The spawn
// box must be clear of solid blocks on its layer.
func CreateCharacter(w donburi.World, state *components.LevelData, sp leveldata.SpawnPoint) (*donburi.Entry, error) {
	lvl := state.Level

	var kind string
	switch sp.Kind {
	case leveldata.SpawnPlayer:
		kind = "player"
	case leveldata.SpawnWalker:
		kind = "walker"
	default:
		return nil, fmt.Errorf("spawn %q is not a character", sp.Kind)
	}

	anim, err := animations.NewController(kind)
	if err != nil {
		return nil, err
	}
	fw, fh := anim.FrameSize()
	box := lvl.SpawnPosition(sp, fw, fh)
	if lvl.Blocked(sp.Layer, box) {
		return nil, fmt.Errorf("%s spawn at tile (%d,%d) layer %d is inside a solid block", kind, sp.Col, sp.Row, sp.Layer)
	}

	var entry *donburi.Entry
	if kind == "player" {
		entry = archetypes.Player.Spawn(w)
	} else {
		entry = archetypes.Walker.Spawn(w)
		components.Walker.SetValue(entry, components.WalkerData{Direction: physics.Left})
	}

	seed := int64(sp.Layer*1_000_000 + sp.Row*1000 + sp.Col)
	particles := components.ParticlesData{
		Dust:    components.NewEmitter(components.EmitDust, seed),
		Bubbles: components.NewEmitter(components.EmitBubbles, seed+1),
	}

	body := physics.NewCharacter(lvl, physics.Options{
		Kind:         kind,
		Player:       kind == "player",
		X:            box.X,
		Y:            box.Y,
		Layer:        sp.Layer,
		Gravity:      lvl.Gravity,
		GravityAccel: lvl.GravityAccel,
		Animator:     anim,
		Dust:         particles.Dust,
		Bubbles:      particles.Bubbles,
		Keyholes:     state,
		Deaths:       deathNotice{state: state, entity: entry.Entity()},
	})
	particles.Dust.Body = body
	particles.Bubbles.Body = body

	components.Character.SetValue(entry, components.CharacterData{Body: body, Spawn: sp})
	components.Animation.SetValue(entry, components.AnimationData{Controller: anim})
	components.Particles.SetValue(entry, particles)

	return entry, nil
}

// CreateGoal places the level exit on its spawn tile.
func CreateGoal(w donburi.World, state *components.LevelData, sp leveldata.SpawnPoint) *donburi.Entry {
	lvl := state.Level
	entry := archetypes.Goal.Spawn(w)
	components.Goal.SetValue(entry, components.GoalData{
		Box:   lvl.SpawnPosition(sp, lvl.TileW, lvl.TileH),
		Layer: sp.Layer,
	})
	return entry
}

// Populate creates the level state, the player and every spawn of lvl.
func Populate(w donburi.World, state *components.LevelData) (*donburi.Entry, error) {
	player, err := CreateCharacter(w, state, state.Level.PlayerStart)
	if err != nil {
		return nil, err
	}

	for _, sp := range state.Level.Spawns {
		switch sp.Kind {
		case leveldata.SpawnWalker:
			if _, err := CreateCharacter(w, state, sp); err != nil {
				return nil, err
			}
		case leveldata.SpawnGoal:
			CreateGoal(w, state, sp)
		}
	}
	return player, nil
}
