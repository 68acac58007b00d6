package factory

import (
	"github.com/automoto/collide/archetypes"
	"github.com/automoto/collide/components"
	cfg "github.com/automoto/collide/config"
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/automoto/collide/shared/leveldata"
	"github.com/automoto/collide/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity: the geometry, the body index and the
// resolver every movement system shares.
func CreateLevel(e *ecs.ECS, l *leveldata.Level, tickRate int) *donburi.Entry {
	level := archetypes.Level.Spawn(e)

	bodies := spatial.NewBodies(l.Bounds, cfg.Level.CellSize)
	settings := collision.Settings{
		MaxIterations: cfg.Collision.MaxIterations,
		MaxPortalHops: cfg.Collision.MaxPortalHops,
		PortalReach:   cfg.Collision.PortalReach,
	}

	components.Level.SetValue(level, components.LevelData{
		Level:    l,
		Bodies:   bodies,
		Resolver: collision.NewResolver(spatial.GeometryFor(l), bodies, settings),
		TickRate: tickRate,
	})
	return level
}

// PopulateLevel spawns the level's decorations and scripted actors.
func PopulateLevel(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	l := components.Level.Get(levelEntry).Level
	for i := range l.Decorations {
		CreateDecoration(e, int32(i))
	}
	for _, a := range l.Actors {
		CreateActor(e, a)
	}
}

func currentLevel(e *ecs.ECS) *components.LevelData {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry)
}

// sectorFor returns known when it names a sector of l, otherwise the sector
// holding feet. Outdoor levels have none.
func sectorFor(l *leveldata.Level, feet gamemath.Vec3, known int32) int32 {
	if l.Kind == leveldata.KindOutdoor {
		return -1
	}
	if l.Sector(known) != nil {
		return known
	}
	return l.SectorAt(feet)
}
