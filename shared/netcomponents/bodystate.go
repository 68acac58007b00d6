package netcomponents

import "github.com/yohamta/donburi"

type NetBodyStateData struct {
	Actor        int32 // Handle index, matches JoinAccepted.Actor
	Sector       int32
	Radius       int32
	Height       int32
	HitKind      uint8 // collision.Kind of the last obstruction, 0 for none
	HitIndex     int32
	Blocked      bool   // Stopped by a closed portal
	LastSequence uint32 // Last intent sequence processed by the server
}

var NetBodyState = donburi.NewComponentType[NetBodyStateData]()
