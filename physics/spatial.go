package physics

import (
	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/shared/gamemath"
)

type nearbyKey struct {
	layer, cx, cy, radius int
}

type groundKey struct {
	layer, cx, cy int
}

// SpatialIndex answers block queries around a box, remembering the last
// answer per query kind until the box moves to another cell.
type SpatialIndex struct {
	grid Grid

	nearbyKey   nearbyKey
	nearby      []*level.Block
	nearbyValid bool

	groundKey   groundKey
	ground      *level.Block
	groundIndex int
	groundValid bool
}

func NewSpatialIndex(grid Grid) *SpatialIndex {
	return &SpatialIndex{grid: grid}
}

// Reset drops both cached answers.
func (s *SpatialIndex) Reset() {
	s.nearby = nil
	s.nearbyValid = false
	s.ground = nil
	s.groundValid = false
}

// Cell returns the tile cell containing the centre of box.
func (s *SpatialIndex) Cell(box gamemath.Rect) (int, int) {
	tw, th := s.grid.TileSize()
	return gamemath.FloorDiv(box.CenterX(), tw), gamemath.FloorDiv(box.CenterY(), th)
}

// NearbyBlocks returns the blocks in the (2*radius+1)² cells around the cell
// of box, column by column.
func (s *SpatialIndex) NearbyBlocks(layer int, box gamemath.Rect, radius int) []*level.Block {
	cx, cy := s.Cell(box)
	key := nearbyKey{layer: layer, cx: cx, cy: cy, radius: radius}
	if s.nearbyValid && key == s.nearbyKey {
		return s.nearby
	}

	var found []*level.Block
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if b := s.grid.BlockAt(layer, cx+i, cy+j); b != nil {
				found = append(found, b)
			}
		}
	}

	s.nearbyKey = key
	s.nearby = found
	s.nearbyValid = true
	return found
}

// ClosestGround returns the first ground block of the column under box whose
// top is at or below the box's vertical centre. While transitioning, a ground
// block touching the box also qualifies. Returns nil when there is none.
func (s *SpatialIndex) ClosestGround(layer int, box gamemath.Rect, transitioning bool) *level.Block {
	cx, cy := s.Cell(box)
	column := s.grid.GroundColumn(layer, cx)

	if transitioning {
		ground, _ := scanGround(column, box, true)
		return ground
	}

	key := groundKey{layer: layer, cx: cx, cy: cy}
	if s.groundValid && key == s.groundKey && s.stillClosest(column, box) {
		return s.ground
	}

	s.ground, s.groundIndex = scanGround(column, box, false)
	s.groundKey = key
	s.groundValid = true
	return s.ground
}

// stillClosest checks the cached answer against the box's current centre so
// a hit always equals a fresh scan.
func (s *SpatialIndex) stillClosest(column []*level.Block, box gamemath.Rect) bool {
	centre := box.CenterY()
	if s.ground == nil {
		return len(column) == 0 || column[len(column)-1].Box.Top() < centre
	}
	if s.groundIndex >= len(column) || column[s.groundIndex] != s.ground {
		return false
	}
	if s.ground.Box.Top() < centre {
		return false
	}
	return s.groundIndex == 0 || column[s.groundIndex-1].Box.Top() < centre
}

func scanGround(column []*level.Block, box gamemath.Rect, transitioning bool) (*level.Block, int) {
	centre := box.CenterY()
	for i, g := range column {
		if g.Box.Top() >= centre || (transitioning && box.Touches(g.Box)) {
			return g, i
		}
	}
	return nil, -1
}
