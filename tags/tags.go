package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Walker = donburi.NewTag().SetName("Walker")
	Goal   = donburi.NewTag().SetName("Goal")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for block objects in a layer space
const (
	ResolvSolid   = "solid"
	ResolvRamp    = "ramp"
	ResolvWater   = "water"
	ResolvHazard  = "hazard"
	ResolvKeyhole = "keyhole"
	ResolvProbe   = "probe"
)
