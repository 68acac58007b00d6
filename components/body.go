package components

import (
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is a collidable cylinder standing on Position (its feet).
type BodyData struct {
	Handle   collision.Handle
	Position gamemath.Vec3
	Radius   int32
	Height   int32
	Sector   int32
	Passable bool
}

// Collider returns the body in the form the resolver tests against.
func (b *BodyData) Collider() collision.Body {
	return collision.Body{
		Handle:   b.Handle,
		Position: b.Position,
		Radius:   b.Radius,
		Height:   b.Height,
		Passable: b.Passable,
	}
}

var Body = donburi.NewComponentType[BodyData]()
