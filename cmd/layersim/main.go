package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/layerhop/assets"
	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/physics"
	"github.com/automoto/layerhop/shared/leveldata"
	"github.com/automoto/layerhop/sim"
)

func main() {
	levelName := flag.String("level", "01-first-steps", "Bundled level name")
	tmxPath := flag.String("tmx", "", "Path to a TMX file to run instead of a bundled level")
	script := flag.String("script", "right*240", "Input script, e.g. right*30,right+jump*12,back,wait*60")
	scriptFile := flag.String("script-file", "", "Read the input script from a file")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	every := flag.Int("every", 1, "Log the player state every N ticks (0 = never)")
	tuning := flag.String("tuning", "", "YAML tuning file")
	logPhysics := flag.Bool("log-physics", false, "Log every character tick")
	flag.Parse()

	config.Debug.LogPhysics = *logPhysics
	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	lvl, err := loadLevel(*levelName, *tmxPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	src := *script
	if *scriptFile != "" {
		data, err := os.ReadFile(*scriptFile)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		src = string(data)
	}
	steps, err := sim.ParseScript(src)
	if err != nil {
		log.Fatalf("Failed to parse script: %v", err)
	}

	run, err := sim.New(lvl)
	if err != nil {
		log.Fatalf("Failed to populate level: %v", err)
	}

	loop := sim.NewGameLoop(run, steps, *tickRate, config.Physics.FixedDt)
	if *every > 0 {
		loop.OnTick = func(tick int, st physics.State) {
			if tick%*every != 0 {
				return
			}
			log.Printf("tick %d: pos=(%d,%d) vel=(%.1f,%.1f) layer=%d draw=%d %s rest=%t swim=%t slide=%d dead=%t",
				tick, st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y,
				st.Layer, st.DrawLayer, st.Status, st.Resting, st.Swimming, st.WallSliding, st.Dead)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Running %s for up to %d ticks", lvl.Name, steps.Len())
	res := loop.Run()
	log.Printf("Finished=%t ticks=%d clock=%.2fs deaths=%d keys=%d",
		res.Finished, res.Ticks, res.Clock, res.Deaths, run.State.Keys)
	if !res.Finished {
		os.Exit(1)
	}
}

func loadLevel(name, tmxPath string) (*level.Level, error) {
	if tmxPath == "" {
		return assets.LoadLevel(name)
	}
	data, err := leveldata.LoadLevelData(os.DirFS(filepath.Dir(tmxPath)), filepath.Base(tmxPath))
	if err != nil {
		return nil, err
	}
	return level.New(data), nil
}
