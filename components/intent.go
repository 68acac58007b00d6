package components

import (
	"github.com/automoto/collide/shared/gamemath"
	"github.com/yohamta/donburi"
)

// IntentData is the latest requested velocity, in world units per second.
type IntentData struct {
	Sequence uint32
	Velocity gamemath.Vec3
	Pending  bool
}

var Intent = donburi.NewComponentType[IntentData]()
