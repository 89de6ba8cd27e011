package config

// StatusID identifies a discrete motion status. Presentation maps each
// status to a playback descriptor.
type StatusID int

const (
	StatusNone StatusID = iota - 1

	StandingLeft
	StandingRight
	WalkingLeft
	WalkingRight
	JumpingLeft
	JumpingRight
	FallingLeft
	FallingRight
	SwitchFront
	SwitchBack
)

// StatusNames maps StatusID to its label.
var StatusNames = map[StatusID]string{
	StandingLeft:  "standingLeft",
	StandingRight: "standingRight",
	WalkingLeft:   "walkingLeft",
	WalkingRight:  "walkingRight",
	JumpingLeft:   "jumpingLeft",
	JumpingRight:  "jumpingRight",
	FallingLeft:   "fallingLeft",
	FallingRight:  "fallingRight",
	SwitchFront:   "switchFront",
	SwitchBack:    "switchBack",
}

func (s StatusID) String() string {
	if name, ok := StatusNames[s]; ok {
		return name
	}
	return "none"
}

// IsJumping reports whether s is one of the directional jump statuses.
func (s StatusID) IsJumping() bool {
	return s == JumpingLeft || s == JumpingRight
}
