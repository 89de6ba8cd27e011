package components

import (
	"github.com/automoto/layerhop/physics"
	"github.com/automoto/layerhop/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CharacterData wraps a simulated body with the intents that drive it.
type CharacterData struct {
	Body    *physics.Character
	Intents physics.Intents
	Spawn   leveldata.SpawnPoint
}

var Character = donburi.NewComponentType[CharacterData]()

// WalkerData is the scripted state of a walking NPC.
type WalkerData struct {
	Direction physics.Direction
}

var Walker = donburi.NewComponentType[WalkerData]()
