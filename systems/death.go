package systems

import (
	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths runs death timers, respawning the player and removing
// walkers once theirs run out.
func UpdateDeaths(ecs *ecs.ECS) {
	sim.UpdateDeaths(ecs.World, cfg.Physics.FixedDt)
}
