package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionLayerBack
	ActionLayerFront
	ActionPause
	ActionRestart
	ActionCount // Must be last - used for array sizing
)
