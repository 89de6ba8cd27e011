package config

// AnimationDef describes playback of one status.
type AnimationDef struct {
	Frames int
	FPS    float64
}

// AnimationSet is the playback table of one character kind.
type AnimationSet struct {
	FrameWidth  int
	FrameHeight int
	Statuses    map[StatusID]AnimationDef
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]AnimationSet{
	"player": {
		FrameWidth:  50,
		FrameHeight: 50,
		Statuses: map[StatusID]AnimationDef{
			StandingLeft:  {Frames: 4, FPS: 6},
			StandingRight: {Frames: 4, FPS: 6},
			WalkingLeft:   {Frames: 8, FPS: 14},
			WalkingRight:  {Frames: 8, FPS: 14},
			JumpingLeft:   {Frames: 4, FPS: 12},
			JumpingRight:  {Frames: 4, FPS: 12},
			FallingLeft:   {Frames: 2, FPS: 8},
			FallingRight:  {Frames: 2, FPS: 8},
			SwitchFront:   {Frames: 6, FPS: 12},
			SwitchBack:    {Frames: 6, FPS: 12},
		},
	},
	// Walkers have no jump or layer switch animations.
	"walker": {
		FrameWidth:  50,
		FrameHeight: 40,
		Statuses: map[StatusID]AnimationDef{
			StandingLeft:  {Frames: 2, FPS: 4},
			StandingRight: {Frames: 2, FPS: 4},
			WalkingLeft:   {Frames: 6, FPS: 10},
			WalkingRight:  {Frames: 6, FPS: 10},
			FallingLeft:   {Frames: 1, FPS: 1},
			FallingRight:  {Frames: 1, FPS: 1},
		},
	},
}
