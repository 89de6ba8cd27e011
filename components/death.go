package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has died. Timer counts down in seconds;
// at zero the player respawns and any other character is removed.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
