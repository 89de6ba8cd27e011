package components

import (
	"github.com/automoto/layerhop/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData drives a character's status playback. The controller is the
// body's Animator.
type AnimationData struct {
	*animations.Controller
}

var Animation = donburi.NewComponentType[AnimationData]()
