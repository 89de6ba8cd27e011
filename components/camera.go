package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view centre in world pixels.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64
	// Focus eases toward the followed character's layer offset so layer
	// fading and framing slide with a transition instead of snapping.
	Focus float64
}

var Camera = donburi.NewComponentType[CameraData]()
