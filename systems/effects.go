package systems

import (
	"github.com/automoto/layerhop/archetypes"
	"github.com/automoto/layerhop/components"
	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/sim"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances animations. Dead characters keep animating
// through pause.
func UpdateAnimations(ecs *ecs.ECS) {
	sim.UpdateAnimations(ecs.World, cfg.Physics.FixedDt, isPaused(ecs))
}

func UpdateEffects(ecs *ecs.ECS) {
	sim.UpdateParticles(ecs.World, cfg.Physics.FixedDt)
}

// UpdateHUD shows the layer indicator whenever the player's draw layer
// changes and fades it out.
func UpdateHUD(ecs *ecs.ECS) {
	hud := getOrCreateHUD(ecs)
	if body := sim.PlayerBody(ecs.World); body != nil && body.DrawLayer != hud.Layer {
		hud.ShowLayer(body.DrawLayer, gween.New(1, 0, float32(cfg.HUD.IndicatorTime), ease.InQuad))
	}
	hud.Update(cfg.Physics.FixedDt)
}

func getOrCreateHUD(ecs *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = archetypes.HUD.Spawn(ecs.World)
	}
	return components.HUD.Get(entry)
}
