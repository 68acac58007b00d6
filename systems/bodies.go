package systems

import (
	"github.com/automoto/collide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies pushes every moving body into the broad phase, so bodies
// placed directly (spawns, teleports) are seen by the next move.
func UpdateBodies(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	ld := components.Level.Get(levelEntry)

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		obj := components.Object.Get(entry)
		obj.Entry = ld.Bodies.Set(body.Collider())
	})
}
