package systems

import (
	"math"

	"github.com/automoto/layerhop/components"
	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with look-ahead and eases the layer focus
// toward the player's draw layer.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	body := sim.PlayerBody(e.World)
	state, err := sim.LevelState(e.World)
	if body == nil || err != nil {
		return
	}
	smoothing := config.Camera.FollowSmoothing

	// Only update look-ahead when the player is moving
	if math.Abs(body.Velocity.X) > 1 {
		target := float64(body.Direction) * config.Camera.LookAheadX
		camera.LookAheadX += (target - camera.LookAheadX) * smoothing
	}

	targetX := float64(body.Position.CenterX()) + camera.LookAheadX
	targetY := float64(body.Position.CenterY())

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	lvl := state.Level
	levelWidth := float64(lvl.Width)
	levelHeight := float64(lvl.Height + lvl.LayerOffset(lvl.LayerCount()-1))

	targetX = clampCamera(targetX, screenWidth, levelWidth)
	targetY = clampCamera(targetY, screenHeight, levelHeight)

	camera.Position.X += (targetX - camera.Position.X) * smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * smoothing
	camera.Focus += (float64(body.DrawLayer) - camera.Focus) * smoothing
}

// clampCamera keeps the view inside the level, centring levels smaller than
// the screen.
func clampCamera(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}

// SnapCamera moves the camera straight onto the player.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	body := sim.PlayerBody(e.World)
	if !ok || body == nil {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = float64(body.Position.CenterX())
	camera.Position.Y = float64(body.Position.CenterY())
	camera.Focus = float64(body.DrawLayer)
}
