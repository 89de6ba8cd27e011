package components

import (
	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the state of one run through a level. It owns the keyhole
// bookkeeping characters report into.
type LevelData struct {
	Level *level.Level
	Keys  int

	Clock    float64 // seconds since the run started
	Best     float64 // best recorded finish time, 0 when none
	Finished bool
	Deaths   int

	targets  []*level.Block
	consumed map[*level.Block]bool
	died     []donburi.Entity
}

func NewLevelData(lvl *level.Level) *LevelData {
	return &LevelData{
		Level:    lvl,
		Keys:     lvl.Keys,
		consumed: make(map[*level.Block]bool),
	}
}

func (l *LevelData) IsConsumed(b *level.Block) bool {
	return l.consumed[b]
}

func (l *LevelData) AddKeyTarget(b *level.Block) {
	for _, t := range l.targets {
		if t == b {
			return
		}
	}
	l.targets = append(l.targets, b)
}

// TakeTargets returns the key targets reported since the last call.
func (l *LevelData) TakeTargets() []*level.Block {
	t := l.targets
	l.targets = nil
	return t
}

// Consume spends a key on a keyhole target. The keyhole stacked directly
// above the target is part of the same lock and is consumed with it.
func (l *LevelData) Consume(b *level.Block) bool {
	if l.Keys <= 0 || l.consumed[b] {
		return false
	}
	l.Keys--
	l.consumed[b] = true
	if above := l.Level.BlockAt(b.Layer, b.CellX, b.CellY-1); above != nil && above.Has(leveldata.PropKeyhole) {
		l.consumed[above] = true
	}
	return true
}

// ReportDeath queues an entity for the death system.
func (l *LevelData) ReportDeath(e donburi.Entity) {
	l.died = append(l.died, e)
}

// TakeDeaths returns the entities that died since the last call.
func (l *LevelData) TakeDeaths() []donburi.Entity {
	d := l.died
	l.died = nil
	return d
}

var Level = donburi.NewComponentType[LevelData]()
