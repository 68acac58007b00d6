package systems

import (
	"github.com/automoto/collide/components"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIntents turns the latest move intent of every actor into its
// velocity, limited to the actor's top speed.
func UpdateIntents(e *ecs.ECS) {
	components.Intent.Each(e.World, func(entry *donburi.Entry) {
		intent := components.Intent.Get(entry)
		physics := components.Physics.Get(entry)
		physics.Velocity = clampSpeed(intent.Velocity, physics.MaxSpeed)

		if intent.Pending && entry.HasComponent(components.Player) {
			components.Player.Get(entry).LastSequence = intent.Sequence
		}
		intent.Pending = false
	})
}

// SetIntent records a requested velocity for the next tick.
func SetIntent(entry *donburi.Entry, sequence uint32, velocity gamemath.Vec3) {
	if !entry.Valid() || !entry.HasComponent(components.Intent) {
		return
	}
	intent := components.Intent.Get(entry)
	intent.Sequence = sequence
	intent.Velocity = velocity
	intent.Pending = true
}

func clampSpeed(v gamemath.Vec3, max int32) gamemath.Vec3 {
	if max <= 0 || v.Length() <= max {
		return v
	}
	return v.Normalize().Scale(max)
}
