package physics

import (
	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/level"
)

// Grid is the read-only tile data a character moves through.
type Grid interface {
	BlockAt(layer, cx, cy int) *level.Block
	// GroundColumn returns the ground blocks of a column, top to bottom.
	GroundColumn(layer, cx int) []*level.Block
	LayerCount() int
	WorldBounds() (w, h int)
	TileSize() (w, h int)
}

// Animator plays the visual for a status. Frame advance is driven by the
// owner; onComplete fires once when a non-looping pass finishes.
type Animator interface {
	HasStatus(status config.StatusID) bool
	SetStatus(status config.StatusID, onComplete func(), keepFrame bool)
	FrameSize() (w, h int)
}

// Emitter receives particle emission requests.
type Emitter interface {
	Emit(dt float64, layer int)
}

// KeyholeState owns keyhole bookkeeping for the level.
type KeyholeState interface {
	IsConsumed(b *level.Block) bool
	AddKeyTarget(b *level.Block)
}

// DeathListener is told once when a character dies.
type DeathListener interface {
	CharacterDied(c *Character)
}

// Intents are the per-tick input requests for one character.
type Intents struct {
	MoveLeft    bool
	MoveRight   bool
	JumpHeld    bool
	JumpPressed bool
	LayerBack   bool
	LayerFront  bool
}
