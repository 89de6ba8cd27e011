package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/layerhop/assets"
	"github.com/automoto/layerhop/sim"
	"github.com/automoto/layerhop/systems"
	"github.com/automoto/layerhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays one level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, levelName string) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelName: levelName}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	switch {
	case systems.ContinueRequested(ws.ecs):
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, assets.NextLevel(ws.levelName)))
	case systems.RestartRequested(ws.ecs):
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.levelName))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdatePlayerIntents)

	// Physics runs while paused so airborne characters land
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateWalkers))
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateAnimations)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateLevelComplete))
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(systems.LayerDefault, systems.DrawLevel)
	ecs.AddRenderer(systems.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(systems.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(systems.LayerDefault, systems.DrawLevelComplete)
	ecs.AddRenderer(systems.LayerDefault, systems.DrawPause)

	ws.ecs = ecs

	lvl := assets.MustLoadLevel(ws.levelName)
	run, err := sim.NewInWorld(ecs.World, lvl)
	if err != nil {
		log.Fatalf("Failed to start level %s: %v", ws.levelName, err)
	}
	run.State.Best = systems.LoadBestTime(lvl.Name)

	factory.CreateCamera(ecs.World)
	systems.SnapCamera(ecs)
}
