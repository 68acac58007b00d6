package components

import "github.com/yohamta/donburi"

// PlayerData ties an actor to the client driving it.
type PlayerData struct {
	ClientID     string
	SpawnIndex   int
	LastSequence uint32
}

var Player = donburi.NewComponentType[PlayerData]()
