package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/layerhop/components"
	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/sim"
	"github.com/automoto/layerhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the collision objects of the player's layer and every
// character box, and prints the player's state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	state, err := sim.LevelState(ecs.World)
	body := sim.PlayerBody(ecs.World)
	if err != nil || body == nil {
		return
	}
	v := newView(components.Camera.Get(cameraEntry), screen)

	if layer := state.Level.Layer(body.Layer); layer != nil {
		for _, obj := range layer.Space.Objects() {
			c := color.RGBA{0, 255, 255, 255}
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			}
			if obj.HasTags(tags.ResolvHazard) {
				c = color.RGBA{255, 0, 0, 255}
			}
			x, y := float32(obj.X+v.offX), float32(obj.Y+v.offY)
			if x+float32(obj.W) < 0 || x > float32(v.w) || y+float32(obj.H) < 0 || y > float32(v.h) {
				continue
			}
			vector.FillRect(screen, x, y, float32(obj.W), 1, c, false)
			vector.FillRect(screen, x, y, 1, float32(obj.H), c, false)
		}
	}

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		v.stroke(screen, components.Character.Get(e).Body.Position, color.RGBA{255, 0, 255, 255})
	})

	st := body.State()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"pos=(%d,%d) vel=(%.0f,%.0f) layer=%d/%d %s\nrest=%t jump=%t swim=%t slope=%t slide=%d transition=%s",
		st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y, st.Layer, st.DrawLayer, st.Status,
		st.Resting, st.Jumping, st.Swimming, st.Sloping, st.WallSliding, st.Transition,
	), 10, screen.Bounds().Dy()-40)
}
