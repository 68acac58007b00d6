package components

import (
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	// Velocity is in world units per second.
	Velocity       gamemath.Vec3
	MaxSpeed       int32
	IgnoreEthereal bool

	// Results of the last move
	LastHit    collision.Handle
	LastNormal gamemath.Vec3
	Blocked    bool
	Capped     bool
	Iterations int
}

var Physics = donburi.NewComponentType[PhysicsData]()
