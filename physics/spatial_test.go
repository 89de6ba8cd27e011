package physics

import (
	"testing"

	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stacked = []string{
	"#.....",
	"..=...",
	"......",
	"..#...",
	"......",
	"######",
}

func cellsOf(blocks []*level.Block) [][2]int {
	out := make([][2]int, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, [2]int{b.Col, b.Row})
	}
	return out
}

func scanNearby(lvl *level.Level, layer, cx, cy, radius int) []*level.Block {
	var out []*level.Block
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if b := lvl.BlockAt(layer, cx+i, cy+j); b != nil {
				out = append(out, b)
			}
		}
	}
	return out
}

func scanClosest(lvl *level.Level, layer int, box gamemath.Rect, cx int) *level.Block {
	for _, g := range lvl.GroundColumn(layer, cx) {
		if g.Box.Top() >= box.CenterY() {
			return g
		}
	}
	return nil
}

func TestNearbyBlocksColumnMajor(t *testing.T) {
	lvl := buildLevel(t, 70, stacked)
	idx := NewSpatialIndex(lvl)

	box := gamemath.NewRect(150, 290, 50, 50) // centre in cell (2,4)
	got := idx.NearbyBlocks(0, box, 1)

	assert.Equal(t, [][2]int{{1, 5}, {2, 3}, {2, 5}, {3, 5}}, cellsOf(got))
}

func TestNearbyBlocksOutsideGrid(t *testing.T) {
	lvl := buildLevel(t, 70, stacked)
	idx := NewSpatialIndex(lvl)

	assert.Empty(t, idx.NearbyBlocks(0, gamemath.NewRect(-1000, -1000, 50, 50), 1))
	assert.Empty(t, idx.NearbyBlocks(0, gamemath.NewRect(5000, 100, 50, 50), 2))
	assert.Empty(t, idx.NearbyBlocks(3, gamemath.NewRect(150, 290, 50, 50), 1), "missing layer")
}

func TestNearbyBlocksCacheMatchesFreshScan(t *testing.T) {
	lvl := buildLevel(t, 70, stacked, stacked)
	idx := NewSpatialIndex(lvl)

	for layer := 0; layer < 2; layer++ {
		for y := -80; y < 520; y += 7 {
			for x := -80; x < 480; x += 13 {
				box := gamemath.NewRect(x, y, 50, 50)
				cx, cy := idx.Cell(box)
				for _, r := range []int{1, 1, 2} {
					want := scanNearby(lvl, layer, cx, cy, r)
					assert.Equal(t, cellsOf(want), cellsOf(idx.NearbyBlocks(layer, box, r)),
						"layer=%d box=%v radius=%d", layer, box, r)
				}
			}
		}
	}
}

func TestClosestGround(t *testing.T) {
	lvl := buildLevel(t, 70, stacked)
	idx := NewSpatialIndex(lvl)

	t.Run("first ground below the centre", func(t *testing.T) {
		g := idx.ClosestGround(0, gamemath.NewRect(150, 10, 50, 50), false)
		require.NotNil(t, g)
		assert.Equal(t, 1, g.Row)

		g = idx.ClosestGround(0, gamemath.NewRect(150, 100, 50, 50), false)
		require.NotNil(t, g)
		assert.Equal(t, 3, g.Row)
	})

	t.Run("a ground whose top equals the centre qualifies", func(t *testing.T) {
		box := gamemath.NewRect(150, 185, 50, 50) // centre y 210
		g := idx.ClosestGround(0, box, false)
		require.NotNil(t, g)
		assert.Equal(t, 3, g.Row)
	})

	t.Run("nothing below", func(t *testing.T) {
		assert.Nil(t, idx.ClosestGround(0, gamemath.NewRect(150, 400, 50, 50), false))
		assert.Nil(t, idx.ClosestGround(0, gamemath.NewRect(-500, 100, 50, 50), false))
	})

	t.Run("touching ground qualifies while transitioning", func(t *testing.T) {
		box := gamemath.NewRect(150, 200, 50, 50) // centre y 225 is below row 3's top
		g := idx.ClosestGround(0, box, true)
		require.NotNil(t, g)
		assert.Equal(t, 3, g.Row)

		g = idx.ClosestGround(0, box, false)
		require.NotNil(t, g)
		assert.Equal(t, 5, g.Row)
	})
}

func TestClosestGroundCacheMatchesFreshScan(t *testing.T) {
	lvl := buildLevel(t, 70, stacked)
	idx := NewSpatialIndex(lvl)

	// falling then rising sweeps through every ground in column 2
	var ys []int
	for y := -60; y < 460; y += 3 {
		ys = append(ys, y)
	}
	for y := 460; y > -60; y -= 5 {
		ys = append(ys, y)
	}

	for _, y := range ys {
		box := gamemath.NewRect(150, y, 50, 50)
		cx, _ := idx.Cell(box)
		want := scanClosest(lvl, 0, box, cx)
		assert.Same(t, want, idx.ClosestGround(0, box, false), "y=%d", y)
	}
}
