package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproachNeverOvershoots(t *testing.T) {
	for _, tc := range []struct {
		name                 string
		current, target, rate float64
	}{
		{"up", 0, 600, 30},
		{"down", 600, -600, 30},
		{"friction", 250, 0, 10},
		{"offset", 0, 70, 5},
		{"tiny", 0.001, 0, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.current
			prevDist := math.Abs(tc.target - v)
			for i := 0; i < 10000 && v != tc.target; i++ {
				v = Approach(0.016, v, tc.target, tc.rate)
				dist := math.Abs(tc.target - v)
				require.LessOrEqual(t, dist, prevDist)
				if tc.target > tc.current {
					require.LessOrEqual(t, v, tc.target)
				} else {
					require.GreaterOrEqual(t, v, tc.target)
				}
				prevDist = dist
			}
			assert.Equal(t, tc.target, v)
		})
	}
}

func TestApproachZeroDt(t *testing.T) {
	assert.Equal(t, 12.5, Approach(0, 12.5, 0, 10))
	assert.Equal(t, 3.0, Approach(0, 3, 3, 10))
}

func TestRemapAndSlope(t *testing.T) {
	assert.InDelta(t, 5.0, Remap(0.5, 0, 1, 0, 10), 1e-9)
	assert.InDelta(t, 10.0, Remap(0, 1, 0, 0, 10), 1e-9)

	tile := NewRect(0, 100, 70, 70)
	assert.Equal(t, 170, SlopeFloorY(tile, 0, true))
	assert.Equal(t, 100, SlopeFloorY(tile, 70, true))
	assert.Equal(t, 99, SlopeFloorY(tile, 0, false))
	assert.Equal(t, 169, SlopeFloorY(tile, 70, false))
}

func TestSlopeFloorIsMonotonic(t *testing.T) {
	tile := NewRect(140, 210, 70, 70)
	prev := SlopeFloorY(tile, tile.Left()-3, true)
	for x := tile.Left() - 2; x <= tile.Right()+3; x++ {
		y := SlopeFloorY(tile, x, true)
		require.LessOrEqual(t, y, prev)
		prev = y
	}
}

func TestRectOverlapAndEdges(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	assert.True(t, a.Overlaps(NewRect(5, 5, 10, 10)))
	assert.False(t, a.Overlaps(NewRect(10, 0, 10, 10)))
	assert.False(t, a.Overlaps(NewRect(0, 10, 10, 10)))

	assert.True(t, a.Touches(NewRect(10, 0, 10, 10)))
	assert.True(t, a.Touches(NewRect(10, 10, 5, 5)))
	assert.False(t, a.Touches(NewRect(11, 0, 10, 10)))

	a.SetBottom(50)
	assert.Equal(t, 40, a.Top())
	a.SetRight(25)
	assert.Equal(t, 15, a.Left())
	assert.Equal(t, 20, a.CenterX())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 1, FloorDiv(75, 70))
	assert.Equal(t, 0, FloorDiv(0, 70))
	assert.Equal(t, -1, FloorDiv(-1, 70))
	assert.Equal(t, -1, FloorDiv(-70, 70))
}
