package systems

import (
	"log"

	"github.com/automoto/collide/components"
	cfg "github.com/automoto/collide/config"
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/automoto/collide/shared/leveldata"
	"github.com/automoto/collide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement moves every body with a velocity through the resolver,
// one tick's worth, and writes back where it ended up.
func UpdateMovement(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	ld := components.Level.Get(levelEntry)
	dt := TickDelta(ld.TickRate)

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		body := components.Body.Get(entry)
		if physics.Velocity.IsZero() {
			return
		}

		c := collision.NewContext(body.Handle, body.Position, body.Radius, body.Height, body.Sector)
		c.SetTarget(body.Position.Add(physics.Velocity))
		res := ld.Resolver.Move(c, dt, physics.IgnoreEthereal)

		body.Position = c.Feet()
		body.Sector = relocate(ld.Level, c)
		physics.LastHit = res.Hit
		physics.LastNormal = c.HitNormal
		physics.Blocked = res.Blocked
		physics.Capped = res.Capped
		physics.Iterations = res.Iterations
		ld.Bodies.Set(body.Collider())

		if !res.Hit.IsNone() {
			if entry.HasComponent(tags.Sprite) {
				physics.Velocity = gamemath.Vec3{}
			}
			if cfg.Collision.Verbose {
				log.Printf("[collision] tick %d: %s moved %d, hit %s (iterations %d, blocked %t)",
					ld.Tick, body.Handle, res.Distance, res.Hit, res.Iterations, res.Blocked)
			}
		}
		if res.Capped {
			log.Printf("[collision] %s hit the iteration cap at %v", body.Handle, body.Position)
		}
	})

	ld.Tick++
}

// TickDelta returns the Q16.16 length of one tick.
func TickDelta(tickRate int) int64 {
	if tickRate <= 0 {
		return gamemath.One
	}
	return gamemath.Div(gamemath.One, gamemath.FromInt(int32(tickRate)))
}

// relocate keeps the sector the resolver tracked, falling back to a lookup
// when the body left every sector it knew about.
func relocate(l *leveldata.Level, c *collision.Context) int32 {
	if l.Kind == leveldata.KindOutdoor {
		return -1
	}
	if l.Sector(c.SectorID) != nil {
		return c.SectorID
	}
	return l.SectorAt(c.Feet())
}
