package systems

import (
	"fmt"

	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/fonts"
	"github.com/automoto/layerhop/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the run clock, keys and deaths in the top-left corner and
// the layer indicator after a layer switch.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	state, err := sim.LevelState(ecs.World)
	if err != nil {
		return
	}

	face := fonts.Regular.Get()
	margin := int(config.HUD.Margin)
	lineHeight := int(config.HUD.FontSize) + 4

	lines := []string{
		fmt.Sprintf("%s  %s", state.Level.Name, formatClock(state.Clock)),
		fmt.Sprintf("Best %s", formatClock(state.Best)),
		fmt.Sprintf("Keys %d   Deaths %d", state.Keys, state.Deaths),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, margin, margin+lineHeight*(i+1), config.HUD.TextColor)
	}

	hud := getOrCreateHUD(ecs)
	if hud.IndicatorAlpha <= 0 {
		return
	}
	label := fmt.Sprintf("LAYER %d", hud.Layer+1)
	titleFont := fonts.Title.Get()
	width := float64(screen.Bounds().Dx())
	text.Draw(screen, label, titleFont, centerTextX(label, titleFont, width), margin+lineHeight*2,
		faded(config.HUD.TextColor, hud.IndicatorAlpha))
}
