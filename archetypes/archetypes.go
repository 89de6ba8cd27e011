package archetypes

import (
	"github.com/automoto/layerhop/components"
	"github.com/automoto/layerhop/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Animation,
		components.Particles,
	)
	Walker = newArchetype(
		tags.Walker,
		components.Character,
		components.Walker,
		components.Animation,
		components.Particles,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Pause = newArchetype(
		components.Pause,
	)
	HUD = newArchetype(
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
