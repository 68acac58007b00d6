package netcomponents

import "github.com/yohamta/donburi"

// NetVelocityData is in world units per second.
type NetVelocityData struct {
	X, Y, Z int32
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

// LerpNetVelocity interpolates between two velocities
func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	return &NetVelocityData{
		X: lerp(from.X, to.X, t),
		Y: lerp(from.Y, to.Y, t),
		Z: lerp(from.Z, to.Z, t),
	}
}
