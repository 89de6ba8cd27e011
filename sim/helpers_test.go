package sim

import (
	"testing"

	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/physics"
	"github.com/automoto/layerhop/shared/leveldata"
	"github.com/stretchr/testify/require"
)

const tickDt = 1.0 / 60.0

var tiles = map[rune]leveldata.TileData{
	'#': {Props: leveldata.PropSolid, Collidable: true},
	'^': {Props: leveldata.PropHazard},
	'K': {Props: leveldata.PropSolid | leveldata.PropKeyhole, Collidable: true},
}

var spawns = map[rune]leveldata.SpawnKind{
	'P': leveldata.SpawnPlayer,
	'W': leveldata.SpawnWalker,
	'G': leveldata.SpawnGoal,
}

// newSim builds a 70px tile level from one ASCII grid per layer and
// populates it. P, W and G place the player, walkers and the goal.
func newSim(t *testing.T, keys int, layers ...[]string) *Sim {
	t.Helper()
	data := &leveldata.LevelData{
		Name:  t.Name(),
		TileW: 70,
		TileH: 70,
		Rows:  len(layers[0]),
		Cols:  len(layers[0][0]),
		Keys:  keys,
	}
	for index, rows := range layers {
		var layer []leveldata.TileData
		for r, row := range rows {
			for col, ch := range row {
				if kind, ok := spawns[ch]; ok {
					sp := leveldata.SpawnPoint{Kind: kind, Col: col, Row: r, Layer: index}
					if kind == leveldata.SpawnPlayer {
						data.PlayerStart = sp
					} else {
						data.Spawns = append(data.Spawns, sp)
					}
					continue
				}
				if td, ok := tiles[ch]; ok {
					td.Col, td.Row = col, r
					layer = append(layer, td)
				}
			}
		}
		data.Layers = append(data.Layers, layer)
	}

	s, err := New(level.New(data))
	require.NoError(t, err)
	return s
}

// run steps n ticks with the same intents and reports whether the goal was
// reached on any of them.
func run(s *Sim, n int, in physics.Intents) bool {
	finished := false
	for i := 0; i < n; i++ {
		if s.Step(tickDt, in) {
			finished = true
		}
	}
	return finished
}
