package systems

import (
	"github.com/automoto/collide/components"
	"github.com/automoto/collide/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNetState copies the simulated bodies into their synced components.
func UpdateNetState(e *ecs.ECS) {
	netcomponents.NetPosition.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(entry)

		pos := netcomponents.NetPosition.Get(entry)
		pos.X, pos.Y, pos.Z = body.Position.X, body.Position.Y, body.Position.Z

		if entry.HasComponent(components.Physics) && entry.HasComponent(netcomponents.NetVelocity) {
			v := components.Physics.Get(entry).Velocity
			vel := netcomponents.NetVelocity.Get(entry)
			vel.X, vel.Y, vel.Z = v.X, v.Y, v.Z
		}

		if entry.HasComponent(netcomponents.NetBodyState) {
			state := netcomponents.NetBodyState.Get(entry)
			state.Actor = body.Handle.Index
			state.Sector = body.Sector
			state.Radius = body.Radius
			state.Height = body.Height
			if entry.HasComponent(components.Physics) {
				physics := components.Physics.Get(entry)
				state.HitKind = uint8(physics.LastHit.Kind)
				state.HitIndex = physics.LastHit.Index
				state.Blocked = physics.Blocked
			}
			if entry.HasComponent(components.Player) {
				state.LastSequence = components.Player.Get(entry).LastSequence
			}
		}
	})
}
