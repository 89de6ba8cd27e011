package factory

import (
	"github.com/automoto/layerhop/archetypes"
	"github.com/automoto/layerhop/components"
	"github.com/automoto/layerhop/level"
	"github.com/yohamta/donburi"
)

// CreateLevel adds the run state entity for lvl.
func CreateLevel(w donburi.World, lvl *level.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.Set(entry, components.NewLevelData(lvl))
	return entry
}

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
