package components

import (
	"testing"

	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyholeLevel(keys int) *level.Level {
	lock := leveldata.PropSolid | leveldata.PropKeyhole
	return level.New(&leveldata.LevelData{
		Name: "keys", Cols: 4, Rows: 4, TileW: 70, TileH: 70, Keys: keys,
		Layers: [][]leveldata.TileData{{
			{Col: 2, Row: 2, Props: lock, Collidable: true},
			{Col: 2, Row: 3, Props: lock, Collidable: true},
			{Col: 0, Row: 3, Props: lock, Collidable: true},
		}},
		Spawns: []leveldata.SpawnPoint{{Kind: leveldata.SpawnPlayer}},
	})
}

func TestConsumeSpendsKeyAndOpensPair(t *testing.T) {
	lvl := keyholeLevel(1)
	state := NewLevelData(lvl)
	lower := lvl.BlockAt(0, 2, 3)
	upper := lvl.BlockAt(0, 2, 2)
	require.NotNil(t, lower)
	require.NotNil(t, upper)

	assert.True(t, state.Consume(lower))
	assert.Equal(t, 0, state.Keys)
	assert.True(t, state.IsConsumed(lower))
	assert.True(t, state.IsConsumed(upper))

	assert.False(t, state.Consume(lvl.BlockAt(0, 0, 3)), "no keys left")
	assert.False(t, state.IsConsumed(lvl.BlockAt(0, 0, 3)))
}

func TestKeyTargetsAreDeduplicated(t *testing.T) {
	lvl := keyholeLevel(2)
	state := NewLevelData(lvl)
	b := lvl.BlockAt(0, 2, 3)

	state.AddKeyTarget(b)
	state.AddKeyTarget(b)
	assert.Len(t, state.TakeTargets(), 1)
	assert.Empty(t, state.TakeTargets())
}
