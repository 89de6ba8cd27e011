// Package physics is the per-character kinematic simulation: velocity
// integration, layered tile collision, depth switching and motion status.
package physics

import (
	"log"
	"math"

	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/shared/gamemath"
)

// Direction is the way a character faces.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "Left"
	}
	return "Right"
}

// Options configure a new character.
type Options struct {
	Kind string
	// Player characters interact with keyholes.
	Player bool

	// Spawn box top-left in world pixels and the start layer.
	X, Y  int
	Layer int
	// Box size used when there is no animator.
	Width, Height int

	// Zero values fall back to config.Physics.
	Gravity      float64
	GravityAccel float64

	Animator Animator
	Dust     Emitter
	Bubbles  Emitter
	Keyholes KeyholeState
	Deaths   DeathListener
}

// Character is one simulated body.
type Character struct {
	Kind   string
	Player bool

	Position  gamemath.Rect
	Velocity  gamemath.Vec
	Layer     int
	DrawLayer int
	Direction Direction

	Resting       bool
	Jumping       bool
	Swimming      bool
	Sloping       bool
	WallSliding   int
	LayerChanging bool
	SpeedModifier float64
	JumpTimer     float64
	LayerCooldown float64
	Dead          bool
	// Paused suppresses status derivation.
	Paused bool

	Status config.StatusID

	opts          Options
	grid          Grid
	index         *SpatialIndex
	shadow        *GroundProjector
	transition    layerTransition
	statusChanged bool
	movingLeft    bool
	movingRight   bool
	holdJump      bool
}

// NewCharacter creates a character and spawns it.
func NewCharacter(grid Grid, opts Options) *Character {
	if opts.Gravity == 0 {
		opts.Gravity = config.Physics.Gravity
	}
	if opts.GravityAccel == 0 {
		opts.GravityAccel = config.Physics.GravityAccel
	}

	c := &Character{
		Kind:   opts.Kind,
		Player: opts.Player,
		Status: config.StatusNone,
		opts:   opts,
		grid:   grid,
		index:  NewSpatialIndex(grid),
		shadow: &GroundProjector{},
	}
	c.Spawn()
	return c
}

// Spawn resets all transient state to the spawn placement. Calling it again
// without ticking in between leaves the same state.
func (c *Character) Spawn() {
	w, h := c.opts.Width, c.opts.Height
	if c.opts.Animator != nil {
		w, h = c.opts.Animator.FrameSize()
	}

	c.Position = gamemath.NewRect(c.opts.X, c.opts.Y, w, h)
	c.Velocity = gamemath.Vec{}
	c.Direction = Right
	c.SpeedModifier = 1
	c.Resting = false
	c.Jumping = false
	c.Swimming = false
	c.Sloping = false
	c.WallSliding = 0
	c.JumpTimer = 0
	c.movingLeft = false
	c.movingRight = false
	c.holdJump = false

	c.Layer = c.opts.Layer
	c.DrawLayer = c.opts.Layer
	c.LayerChanging = false
	c.LayerCooldown = 0
	c.transition = newLayerTransition(c.opts.Layer)

	c.Dead = false

	c.index.Reset()
	c.shadow.reset(c.index.ClosestGround(c.Layer, c.Position, false))

	c.statusChanged = false
	c.setStatus(config.StandingRight, nil)
	c.statusChanged = false
}

// Update advances the character by dt seconds. Dead characters are not updated.
func (c *Character) Update(dt float64, in Intents) {
	if c.Dead {
		return
	}

	if in.JumpPressed {
		c.Jump()
	}
	if in.LayerBack {
		c.RequestBack()
	}
	if in.LayerFront {
		c.RequestFront()
	}
	c.movingLeft = in.MoveLeft
	c.movingRight = in.MoveRight
	c.holdJump = in.JumpHeld

	last := c.Position

	c.LayerCooldown = math.Max(0, c.LayerCooldown-dt)

	if c.movingLeft {
		c.MoveLeft(dt)
	}
	if c.movingRight {
		c.MoveRight(dt)
	}

	c.applyVerticalForces(dt)
	c.integrate(dt)
	c.clampToWorld()

	c.Resting = false
	c.Swimming = false
	c.Sloping = false
	c.WallSliding = 0

	c.stepTransition(dt)
	c.resolveCollisions(last)

	if !c.Paused {
		c.deriveStatus()
	}

	c.statusChanged = false
	c.movingLeft = false
	c.movingRight = false

	if config.Debug.LogPhysics {
		log.Printf("%s: pos=(%d,%d) vel=(%.1f,%.1f) layer=%d rest=%t jump=%t swim=%t status=%s",
			c.Kind, c.Position.X, c.Position.Y, c.Velocity.X, c.Velocity.Y,
			c.Layer, c.Resting, c.Jumping, c.Swimming, c.Status)
	}
}

// Die marks the character dead and notifies the listener the first time.
func (c *Character) Die() {
	if c.Dead {
		return
	}
	c.Dead = true
	if c.opts.Deaths != nil {
		c.opts.Deaths.CharacterDied(c)
	}
}

// Shadow returns the character's ground projector.
func (c *Character) Shadow() *GroundProjector {
	return c.shadow
}

// UpdateShadow moves the shadow toward the ground under the character.
func (c *Character) UpdateShadow(dt float64) {
	if !config.Shadow.Enabled {
		c.shadow.visible = false
		return
	}
	c.shadow.update(c, dt)
}

// State is a value snapshot of a character's simulation state.
type State struct {
	Position      gamemath.Rect
	Velocity      gamemath.Vec
	Layer         int
	DrawLayer     int
	Direction     Direction
	Resting       bool
	Jumping       bool
	Swimming      bool
	Sloping       bool
	WallSliding   int
	LayerChanging bool
	Transition    Transition
	LayerOffset   float64
	SpeedModifier float64
	JumpTimer     float64
	LayerCooldown float64
	Dead          bool
	Status        config.StatusID
}

// State returns a copy of the character's current simulation state.
func (c *Character) State() State {
	return State{
		Position:      c.Position,
		Velocity:      c.Velocity,
		Layer:         c.Layer,
		DrawLayer:     c.DrawLayer,
		Direction:     c.Direction,
		Resting:       c.Resting,
		Jumping:       c.Jumping,
		Swimming:      c.Swimming,
		Sloping:       c.Sloping,
		WallSliding:   c.WallSliding,
		LayerChanging: c.LayerChanging,
		Transition:    c.Transition(),
		LayerOffset:   c.transition.offset,
		SpeedModifier: c.SpeedModifier,
		JumpTimer:     c.JumpTimer,
		LayerCooldown: c.LayerCooldown,
		Dead:          c.Dead,
		Status:        c.Status,
	}
}
