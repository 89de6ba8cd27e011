package config

import "image/color"

// PhysicsConfig holds level-wide motion defaults. A level may override
// gravity through its map properties.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // terminal fall speed, px/s
	GravityAccel float64 `yaml:"gravity_accel"` // approach rate toward Gravity
	FixedDt      float64 `yaml:"fixed_dt"`      // seconds per simulation tick
}

// CharacterConfig contains per-character movement tuning. Speeds are in
// pixels per second, accelerations are approach rates.
type CharacterConfig struct {
	MoveSpeed      float64 `yaml:"move_speed"`
	MoveAccel      float64 `yaml:"move_accel"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	JumpAccel      float64 `yaml:"jump_accel"`
	JumpTimerLimit float64 `yaml:"jump_timer_limit"`
	SwimSpeed      float64 `yaml:"swim_speed"`
	SwimAccel      float64 `yaml:"swim_accel"`
	SwimDrag       float64 `yaml:"swim_drag"`
	Friction       float64 `yaml:"friction"`

	// Wall slide
	SlideJumpSpeedX float64 `yaml:"slide_jump_speed_x"`
	SlideJumpSpeedY float64 `yaml:"slide_jump_speed_y"`
	SlideModifier   float64 `yaml:"slide_modifier"`

	// Tile speed modifiers
	SlowModifier float64 `yaml:"slow_modifier"`
	SwimModifier float64 `yaml:"swim_modifier"`
	MudModifier  float64 `yaml:"mud_modifier"`

	SlopeGate   int `yaml:"slope_gate"`   // px either side of a slope tile that still snaps
	DeathMargin int `yaml:"death_margin"` // px below the world before a fall kills
}

// LayerConfig contains depth-layer switching configuration.
type LayerConfig struct {
	Step            int     `yaml:"step"`        // vertical px between adjacent layers
	OffsetRate      float64 `yaml:"offset_rate"` // approach rate of the transition offset
	Cooldown        float64 `yaml:"cooldown"`    // seconds between accepted switches
	BackProbe       int     `yaml:"back_probe"`
	FrontProbe      int     `yaml:"front_probe"`
	ProbeRadius     int     `yaml:"probe_radius"`
	CollisionRadius int     `yaml:"collision_radius"`
}

// ShadowConfig contains ground shadow projection values.
type ShadowConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	StepScale float64 `yaml:"step_scale"`
	MinStep   float64 `yaml:"min_step"`
	LagStep   float64 `yaml:"lag_step"`
	Color     color.RGBA
}

// ParticleConfig contains dust and bubble emitter values.
type ParticleConfig struct {
	MaxParticles int
	Rate         float64 // particles per second while emitting
	Lifetime     float64 // seconds
	Size         float64
	DustColor    color.RGBA
	BubbleColor  color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 0.0-1.0 per tick
	LookAheadX      float64 `yaml:"look_ahead_x"`
}

// PauseConfig contains pause overlay values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// RunConfig contains values for a single playthrough of a level.
type RunConfig struct {
	RespawnDelay float64 // seconds between death and respawn
	GoalRadius   float64 // px from the goal tile centre that counts as reached
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	FontSize      float64
	Margin        float64
	TextColor     color.RGBA
	IndicatorTime float64 // seconds the layer indicator stays visible
}

// RenderConfig contains layer drawing values.
type RenderConfig struct {
	BackgroundColor color.RGBA
	SolidColor      color.RGBA
	WaterColor      color.RGBA
	HazardColor     color.RGBA
	KeyholeColor    color.RGBA
	PlayerColor     color.RGBA
	WalkerColor     color.RGBA
	GoalColor       color.RGBA
	// Alpha multiplier per layer distance from the player's draw layer.
	LayerFade float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogPhysics bool // per-tick character state to the log
	DrawBoxes  bool // outline collision boxes
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Character CharacterConfig
var Layers LayerConfig
var Shadow ShadowConfig
var Particles ParticleConfig
var Camera CameraConfig
var Pause PauseConfig
var Run RunConfig
var HUD HUDConfig
var Render RenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Slate        = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	Sky          = color.RGBA{R: 30, G: 34, B: 48, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	ShadowBlack  = color.RGBA{R: 0, G: 0, B: 0, A: 90}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "layerhop",
	}

	Physics = PhysicsConfig{
		Gravity:      1000,
		GravityAccel: 5,
		FixedDt:      1.0 / 60.0,
	}

	Character = CharacterConfig{
		MoveSpeed:      600,
		MoveAccel:      30,
		JumpSpeed:      -750,
		JumpAccel:      20,
		JumpTimerLimit: 0.34,
		SwimSpeed:      -400,
		SwimAccel:      50,
		SwimDrag:       5,
		Friction:       10,

		SlideJumpSpeedX: 550,
		SlideJumpSpeedY: -450,
		SlideModifier:   0.6,

		SlowModifier: 0.4,
		SwimModifier: 0.5,
		MudModifier:  0.2,

		SlopeGate:   3,
		DeathMargin: 250,
	}

	Layers = LayerConfig{
		Step:            70,
		OffsetRate:      5,
		Cooldown:        0.5,
		BackProbe:       71,
		FrontProbe:      69,
		ProbeRadius:     1,
		CollisionRadius: 1,
	}

	Shadow = ShadowConfig{
		Enabled:   true,
		Width:     40,
		Height:    10,
		StepScale: 0.3,
		MinStep:   7,
		LagStep:   2.5,
		Color:     ShadowBlack,
	}

	Particles = ParticleConfig{
		MaxParticles: 50,
		Rate:         100,
		Lifetime:     0.5,
		Size:         6,
		DustColor:    color.RGBA{R: 0, G: 0, B: 0, A: 50},
		BubbleColor:  color.RGBA{R: 0, G: 0, B: 255, A: 50},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		LookAheadX:      60,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
	}

	Run = RunConfig{
		RespawnDelay: 0.75,
		GoalRadius:   35,
	}

	HUD = HUDConfig{
		FontSize:      24,
		Margin:        16,
		TextColor:     White,
		IndicatorTime: 0.6,
	}

	Render = RenderConfig{
		BackgroundColor: Sky,
		SolidColor:      Slate,
		WaterColor:      color.RGBA{R: 40, G: 90, B: 200, A: 140},
		HazardColor:     Red,
		KeyholeColor:    Yellow,
		PlayerColor:     LightBlue,
		WalkerColor:     Orange,
		GoalColor:       color.RGBA{R: 80, G: 220, B: 120, A: 255},
		LayerFade:       0.45,
	}
}
