package physics

import (
	"testing"

	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/shared/leveldata"
)

const testDt = 0.016

var tileKinds = map[rune]leveldata.TileData{
	'#':  {Props: leveldata.PropSolid, Collidable: true},
	'=':  {Props: leveldata.PropUpWall, Collidable: true},
	'/':  {Slope: leveldata.SlopeRight, Collidable: true},
	'\\': {Slope: leveldata.SlopeLeft, Collidable: true},
	'~':  {Props: leveldata.PropSwim},
	'^':  {Props: leveldata.PropHazard},
	'K':  {Props: leveldata.PropSolid | leveldata.PropKeyhole, Collidable: true},
	'M':  {Props: leveldata.PropSolid | leveldata.PropMud, Collidable: true},
	'S':  {Props: leveldata.PropSolid | leveldata.PropSlow, Collidable: true},
	'N':  {Props: leveldata.PropSolid | leveldata.PropNoSlide, Collidable: true},
}

// buildLevel makes a level from one ASCII grid per layer, back layer first.
func buildLevel(t *testing.T, tile int, layers ...[]string) *level.Level {
	t.Helper()
	data := &leveldata.LevelData{
		Name:  t.Name(),
		TileW: tile,
		TileH: tile,
		Rows:  len(layers[0]),
		Cols:  len(layers[0][0]),
	}
	for _, rows := range layers {
		tiles := []leveldata.TileData{}
		for r, row := range rows {
			for col, ch := range row {
				td, ok := tileKinds[ch]
				if !ok {
					continue
				}
				td.Col, td.Row = col, r
				tiles = append(tiles, td)
			}
		}
		data.Layers = append(data.Layers, tiles)
	}
	return level.New(data)
}

type fakeAnimator struct {
	known      map[config.StatusID]config.AnimationDef
	w, h       int
	calls      []config.StatusID
	keptFrame  []bool
	onComplete func()
}

func newFakeAnimator(kind string) *fakeAnimator {
	set := config.CharacterAnimations[kind]
	return &fakeAnimator{known: set.Statuses, w: set.FrameWidth, h: set.FrameHeight}
}

func (a *fakeAnimator) HasStatus(s config.StatusID) bool {
	_, ok := a.known[s]
	return ok
}

func (a *fakeAnimator) SetStatus(s config.StatusID, onComplete func(), keepFrame bool) {
	a.calls = append(a.calls, s)
	a.keptFrame = append(a.keptFrame, keepFrame)
	a.onComplete = onComplete
}

func (a *fakeAnimator) FrameSize() (int, int) { return a.w, a.h }

// finish plays the current one-shot to its end.
func (a *fakeAnimator) finish() {
	if cb := a.onComplete; cb != nil {
		a.onComplete = nil
		cb()
	}
}

type countingEmitter struct {
	calls  int
	layers []int
}

func (e *countingEmitter) Emit(dt float64, layer int) {
	e.calls++
	e.layers = append(e.layers, layer)
}

type fakeKeyholes struct {
	consumed map[*level.Block]bool
	targets  []*level.Block
}

func (k *fakeKeyholes) IsConsumed(b *level.Block) bool { return k.consumed[b] }
func (k *fakeKeyholes) AddKeyTarget(b *level.Block)    { k.targets = append(k.targets, b) }

type deathRecorder struct {
	died []*Character
}

func (d *deathRecorder) CharacterDied(c *Character) { d.died = append(d.died, c) }

type harness struct {
	c        *Character
	anim     *fakeAnimator
	dust     *countingEmitter
	bubbles  *countingEmitter
	keyholes *fakeKeyholes
	deaths   *deathRecorder
}

func newHarness(lvl *level.Level, kind string, x, y, layer int, gravity float64) *harness {
	h := &harness{
		anim:     newFakeAnimator(kind),
		dust:     &countingEmitter{},
		bubbles:  &countingEmitter{},
		keyholes: &fakeKeyholes{consumed: map[*level.Block]bool{}},
		deaths:   &deathRecorder{},
	}
	if gravity == 0 {
		gravity = lvl.Gravity
	}
	h.c = NewCharacter(lvl, Options{
		Kind:         kind,
		Player:       kind == "player",
		X:            x,
		Y:            y,
		Layer:        layer,
		Gravity:      gravity,
		GravityAccel: lvl.GravityAccel,
		Animator:     h.anim,
		Dust:         h.dust,
		Bubbles:      h.bubbles,
		Keyholes:     h.keyholes,
		Deaths:       h.deaths,
	})
	return h
}

func (h *harness) tick(n int, in Intents) {
	for i := 0; i < n; i++ {
		h.c.Update(testDt, in)
	}
}

// settle ticks until the character rests, up to max ticks.
func (h *harness) settle(t *testing.T, max int) {
	t.Helper()
	for i := 0; i < max; i++ {
		h.c.Update(testDt, Intents{})
		if h.c.Resting {
			return
		}
	}
	t.Fatalf("character did not come to rest within %d ticks", max)
}
