package netcomponents

import (
	"math"

	"github.com/yohamta/donburi"
)

// NetPositionData is a body's feet position in world units.
type NetPositionData struct {
	X, Y, Z int32
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// LerpNetPosition interpolates between two positions
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	return &NetPositionData{
		X: lerp(from.X, to.X, t),
		Y: lerp(from.Y, to.Y, t),
		Z: lerp(from.Z, to.Z, t),
	}
}

func lerp(a, b int32, t float64) int32 {
	return a + int32(math.Round(float64(b-a)*t))
}
