package systems

import (
	cfg "github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWalkers steers walkers before the physics tick.
func UpdateWalkers(ecs *ecs.ECS) {
	sim.UpdateWalkers(ecs.World)
}

// UpdatePhysics runs one fixed tick for every character. It runs while
// paused so airborne characters can land.
func UpdatePhysics(ecs *ecs.ECS) {
	sim.StepCharacters(ecs.World, cfg.Physics.FixedDt, isPaused(ecs))
	sim.UpdateKeyholes(ecs.World)
}
