package assets

import (
	"testing"

	"github.com/automoto/layerhop/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLevelsLoad(t *testing.T) {
	names, err := LevelNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"01-first-steps", "02-undertow", "03-lockstep"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevel(name)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, lvl.LayerCount(), 2)

			_, err = sim.New(lvl)
			require.NoError(t, err, "every spawn is placed on open tiles")
		})
	}
}

func TestLevelProperties(t *testing.T) {
	lvl := MustLoadLevel("02-undertow")
	assert.Equal(t, 900.0, lvl.Gravity)

	lvl = MustLoadLevel("03-lockstep")
	assert.Equal(t, 2, lvl.Keys)
	assert.Len(t, lvl.Spawns, 3)
}

func TestNextLevelWraps(t *testing.T) {
	assert.Equal(t, "02-undertow", NextLevel("01-first-steps"))
	assert.Equal(t, "01-first-steps", NextLevel("03-lockstep"))
	assert.Equal(t, "01-first-steps", NextLevel("unknown"))
}

func TestUnknownLevel(t *testing.T) {
	_, err := LoadLevel("nope")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoadLevel("nope") })
}
