package systems

import (
	"github.com/automoto/layerhop/archetypes"
	"github.com/automoto/layerhop/components"
	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	if getOrCreateInput(ecs).Action(cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !isPaused(ecs) {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	title := "PAUSED"
	hint := "Esc: Resume   R: Restart"
	text.Draw(screen, title, fonts.Title.Get(), width/2-len(title)*12, height/2, cfg.Pause.TextColor)
	text.Draw(screen, hint, fonts.Small.Get(), width/2-len(hint)*4, height/2+40, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if isPaused(e) {
			return
		}
		system(e)
	}
}

func isPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = archetypes.Pause.Spawn(ecs.World)
	}
	return components.Pause.Get(entry)
}
