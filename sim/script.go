package sim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/layerhop/physics"
)

// Step is one scripted input held for a number of ticks.
type Step struct {
	Intents physics.Intents
	Ticks   int
}

// Script replays a fixed input sequence, one tick at a time.
type Script struct {
	Steps []Step

	step int
	tick int
}

// ParseScript reads a comma separated list of steps. A step is one or more
// actions joined by '+' with an optional "*N" tick count, for example
// "right*30,right+jump*12,back,wait*60".
//
// Actions: left, right, jump (press and hold), hold (hold only), back,
// front, wait. Presses and layer requests only fire on a step's first tick.
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	for i, field := range strings.Split(src, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		ticks := 1
		if body, count, ok := strings.Cut(field, "*"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("script step %d %q: bad tick count", i+1, field)
			}
			field, ticks = body, n
		}

		var in physics.Intents
		for _, action := range strings.Split(field, "+") {
			switch strings.ToLower(strings.TrimSpace(action)) {
			case "left":
				in.MoveLeft = true
			case "right":
				in.MoveRight = true
			case "jump":
				in.JumpPressed = true
				in.JumpHeld = true
			case "hold":
				in.JumpHeld = true
			case "back":
				in.LayerBack = true
			case "front":
				in.LayerFront = true
			case "wait":
			default:
				return nil, fmt.Errorf("script step %d %q: unknown action %q", i+1, field, action)
			}
		}
		s.Steps = append(s.Steps, Step{Intents: in, Ticks: ticks})
	}
	return s, nil
}

// Next returns the intents for the coming tick, or false when the script
// has run out.
func (s *Script) Next() (physics.Intents, bool) {
	if s.step >= len(s.Steps) {
		return physics.Intents{}, false
	}

	st := s.Steps[s.step]
	in := st.Intents
	if s.tick > 0 {
		in.JumpPressed = false
		in.LayerBack = false
		in.LayerFront = false
	}

	s.tick++
	if s.tick >= st.Ticks {
		s.step++
		s.tick = 0
	}
	return in, true
}

// Len is the total number of ticks in the script.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}
