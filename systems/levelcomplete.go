package systems

import (
	"fmt"

	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/fonts"
	"github.com/automoto/layerhop/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateLevelComplete runs the clock and checks the goal. A new best time
// is written to disk.
func UpdateLevelComplete(ecs *ecs.ECS) {
	state, err := sim.LevelState(ecs.World)
	if err != nil {
		return
	}
	previous := state.Best

	if !sim.UpdateGoal(ecs.World, cfg.Physics.FixedDt) {
		return
	}
	if previous == 0 || state.Best < previous {
		_ = SaveBestTime(state.Level.Name, state.Best)
	}
}

// ContinueRequested reports whether the player asked to move on from a
// finished level.
func ContinueRequested(ecs *ecs.ECS) bool {
	state, err := sim.LevelState(ecs.World)
	if err != nil || !state.Finished {
		return false
	}
	return getOrCreateInput(ecs).Action(cfg.ActionJump).JustPressed
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(ecs *ecs.ECS, screen *ebiten.Image) {
	state, err := sim.LevelState(ecs.World)
	if err != nil || !state.Finished {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := "LEVEL COMPLETE"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2)-40, cfg.HUD.TextColor)

	msgFont := fonts.Regular.Get()
	msg := fmt.Sprintf("Time %s   Best %s   Deaths %d", formatClock(state.Clock), formatClock(state.Best), state.Deaths)
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(height/2)+10, cfg.HUD.TextColor)

	hintFont := fonts.Small.Get()
	hint := "Jump: Next level"
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height/2)+50, cfg.HUD.TextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

func formatClock(seconds float64) string {
	if seconds <= 0 {
		return "--:--.--"
	}
	m := int(seconds) / 60
	return fmt.Sprintf("%02d:%05.2f", m, seconds-float64(m*60))
}
