package components

import (
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/yohamta/donburi"
)

// GoalData is the level exit: a tile box on one layer.
type GoalData struct {
	Box   gamemath.Rect
	Layer int
}

var Goal = donburi.NewComponentType[GoalData]()
