package sim

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/layerhop/physics"
)

// Result summarises a finished run.
type Result struct {
	Ticks    int
	Finished bool
	Clock    float64
	Deaths   int
}

// GameLoop feeds a script into a simulation at a fixed tick rate. A tick
// rate of zero runs as fast as possible.
type GameLoop struct {
	sim      *Sim
	script   *Script
	tickRate int
	dt       float64

	// OnTick is called after every tick with the player's state.
	OnTick func(tick int, st physics.State)

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(s *Sim, script *Script, tickRate int, dt float64) *GameLoop {
	return &GameLoop{
		sim:      s,
		script:   script,
		tickRate: tickRate,
		dt:       dt,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until the goal is reached, the script runs out or Stop is called.
func (g *GameLoop) Run() Result {
	var ticks <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		ticks = ticker.C
		log.Printf("Game loop started at %d ticks/second", g.tickRate)
	} else {
		log.Println("Game loop started unthrottled")
	}

	for {
		if ticks != nil {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return g.result(false)
			case <-ticks:
			}
		} else {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return g.result(false)
			default:
			}
		}

		in, ok := g.script.Next()
		if !ok {
			return g.result(false)
		}
		finished := g.sim.Step(g.dt, in)
		if g.OnTick != nil {
			g.OnTick(g.sim.Tick, g.sim.Body().State())
		}
		if finished {
			return g.result(true)
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) result(finished bool) Result {
	return Result{
		Ticks:    g.sim.Tick,
		Finished: finished,
		Clock:    g.sim.State.Clock,
		Deaths:   g.sim.State.Deaths,
	}
}
