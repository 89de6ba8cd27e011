package level

import (
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/automoto/layerhop/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Block is one tile of a layer. Blocks are read-only after load; the level
// state tracks which keyholes have been consumed.
type Block struct {
	Layer int
	// Tile coordinates within the layer.
	Col, Row int
	// World cell the block is indexed under. Rows are shifted by the layer
	// offset so that a character's cell finds blocks on its own layer.
	CellX, CellY int
	Box          gamemath.Rect
	Collidable   bool
	Props        leveldata.Props
	Slope        leveldata.Slope

	object *resolv.Object
}

// IsGround reports whether the block can hold a character up.
func (b *Block) IsGround() bool {
	return b.Props.Has(leveldata.PropUpWall) || b.Slope != leveldata.SlopeNone
}

// Has reports whether the block carries every flag in p.
func (b *Block) Has(p leveldata.Props) bool {
	return b.Props.Has(p)
}
