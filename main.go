package main

import (
	"flag"
	"image"
	"log"
	"path/filepath"

	"github.com/automoto/layerhop/assets"
	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/fonts"
	"github.com/automoto/layerhop/scenes"
	"github.com/automoto/layerhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelName string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, levelName)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "", "Level to start on (default: first level)")
	tuning := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	debug := flag.Bool("debug", false, "Draw collision boxes and player state")
	logPhysics := flag.Bool("log-physics", false, "Log every character tick")
	flag.Parse()

	config.Debug.DrawBoxes = *debug
	config.Debug.LogPhysics = *logPhysics

	if *tuning != "" {
		if err := systems.WatchTuning(*tuning, filepath.Dir(*tuning)); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		defer systems.StopTuning()
	}

	names, err := assets.LevelNames()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	if *levelName == "" {
		*levelName = names[0]
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence for best times
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(*levelName)); err != nil {
		log.Fatal(err)
	}
}
