package factory

import (
	"github.com/automoto/collide/archetypes"
	"github.com/automoto/collide/components"
	cfg "github.com/automoto/collide/config"
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/automoto/collide/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor spawns a scripted actor from the level.
func CreateActor(e *ecs.ECS, spawn leveldata.ActorSpawn) *donburi.Entry {
	actor := archetypes.Actor.Spawn(e)
	setupBody(e, actor, components.BodyData{
		Position: spawn.Position,
		Radius:   spawn.Radius,
		Height:   spawn.Height,
		Sector:   spawn.Sector,
	}, collision.KindActor)
	return actor
}

// CreatePlayer spawns the actor driven by a client at the spawn point. Extra
// components, such as the synced network state, are added to the entity.
func CreatePlayer(e *ecs.ECS, clientID string, spawn leveldata.SpawnPoint, extra ...donburi.IComponentType) *donburi.Entry {
	player := archetypes.Player.Spawn(e, extra...)
	components.Player.SetValue(player, components.PlayerData{
		ClientID:   clientID,
		SpawnIndex: spawn.Index,
	})
	setupBody(e, player, components.BodyData{
		Position: spawn.Position,
		Radius:   cfg.Actor.Radius,
		Height:   cfg.Actor.Height,
		Sector:   spawn.Sector,
	}, collision.KindActor)
	return player
}

// CreateParty spawns the party. There is at most one, so it always uses
// the party handle.
func CreateParty(e *ecs.ECS, feet gamemath.Vec3) *donburi.Entry {
	party := archetypes.Party.Spawn(e)
	setupBody(e, party, components.BodyData{
		Position: feet,
		Radius:   cfg.Actor.PartyRadius,
		Height:   cfg.Actor.PartyHeight,
		Sector:   -1,
	}, collision.KindParty)
	return party
}

// CreateSprite spawns a small moving body, such as a projectile, that keeps
// its velocity until it hits something.
func CreateSprite(e *ecs.ECS, feet gamemath.Vec3, radius, height int32, velocity gamemath.Vec3) *donburi.Entry {
	sprite := archetypes.Sprite.Spawn(e)
	setupBody(e, sprite, components.BodyData{
		Position: feet,
		Radius:   radius,
		Height:   height,
		Sector:   -1,
	}, collision.KindSprite)
	physics := components.Physics.Get(sprite)
	physics.Velocity = velocity
	return sprite
}

// CreateDecoration mirrors level decoration i as an entity. The resolver
// already sees it through the level geometry.
func CreateDecoration(e *ecs.ECS, i int32) *donburi.Entry {
	ld := currentLevel(e)
	if ld == nil {
		return nil
	}
	d := ld.Level.Decoration(i)
	if d == nil {
		return nil
	}
	deco := archetypes.Decoration.Spawn(e)
	components.Body.SetValue(deco, components.BodyData{
		Handle:   d.Handle,
		Position: d.Position,
		Radius:   d.Radius,
		Height:   d.Height,
		Sector:   sectorFor(ld.Level, d.Position, -1),
		Passable: d.Passable,
	})
	return deco
}

// RemoveBody takes a moving body out of the index and the world.
func RemoveBody(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if ld := currentLevel(e); ld != nil && entry.HasComponent(components.Body) {
		ld.Bodies.Remove(components.Body.Get(entry).Handle)
	}
	e.World.Remove(entry.Entity())
}

func setupBody(e *ecs.ECS, entry *donburi.Entry, body components.BodyData, kind collision.Kind) {
	ld := currentLevel(e)
	if ld == nil {
		panic("factory: bodies need a level entity, call CreateLevel first")
	}
	switch kind {
	case collision.KindParty:
		body.Handle = collision.PartyHandle()
	case collision.KindSprite:
		body.Handle = collision.SpriteHandle(ld.Allocate())
	default:
		body.Handle = collision.ActorHandle(ld.Allocate())
	}
	body.Sector = sectorFor(ld.Level, body.Position, body.Sector)
	components.Body.SetValue(entry, body)

	components.Physics.SetValue(entry, components.PhysicsData{
		MaxSpeed:       cfg.Actor.MaxSpeed,
		IgnoreEthereal: cfg.Collision.IgnoreEthereal,
	})
	components.Object.SetValue(entry, components.ObjectData{
		Entry: ld.Bodies.Set(body.Collider()),
	})
}
