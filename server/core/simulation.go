package core

import (
	"fmt"

	"github.com/automoto/collide/components"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/automoto/collide/shared/leveldata"
	"github.com/automoto/collide/shared/replay"
	"github.com/automoto/collide/systems"
	"github.com/automoto/collide/systems/factory"
	"github.com/automoto/collide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation is one level's world and the systems that move it. It is not
// safe for concurrent use; the Server serialises access.
type Simulation struct {
	ecs    *ecs.ECS
	level  *donburi.Entry
	actors map[int32]*donburi.Entry
}

func NewSimulation(l *leveldata.Level, tickRate int) *Simulation {
	return NewSimulationInWorld(donburi.NewWorld(), l, tickRate)
}

// NewSimulationInWorld builds the simulation on an existing world, such as
// one already set up for network sync.
func NewSimulationInWorld(world donburi.World, l *leveldata.Level, tickRate int) *Simulation {
	e := ecs.NewECS(world)
	e.AddSystem(systems.UpdateIntents)
	e.AddSystem(systems.UpdateBodies)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateNetState)

	s := &Simulation{
		ecs:    e,
		actors: make(map[int32]*donburi.Entry),
	}
	s.level = factory.CreateLevel(e, l, tickRate)
	factory.PopulateLevel(e)
	return s
}

func (s *Simulation) World() donburi.World { return s.ecs.World }

func (s *Simulation) ECS() *ecs.ECS { return s.ecs }

func (s *Simulation) LevelData() *components.LevelData {
	return components.Level.Get(s.level)
}

// Tick is the number of steps run so far.
func (s *Simulation) Tick() uint64 { return s.LevelData().Tick }

// SpawnPlayer places a client's actor on the spawn point with the given
// index and returns the actor id.
func (s *Simulation) SpawnPlayer(clientID string, spawnIndex int, extra ...donburi.IComponentType) (*donburi.Entry, int32, error) {
	l := s.LevelData().Level
	spawn, ok := l.SpawnFor(spawnIndex)
	if !ok {
		return nil, 0, fmt.Errorf("level %s has no spawn points", l.Name)
	}
	entry := factory.CreatePlayer(s.ecs, clientID, spawn, extra...)
	id := components.Body.Get(entry).Handle.Index
	s.actors[id] = entry
	return entry, id, nil
}

func (s *Simulation) Actor(id int32) (*donburi.Entry, bool) {
	entry, ok := s.actors[id]
	if !ok || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

func (s *Simulation) RemoveActor(id int32) {
	if entry, ok := s.actors[id]; ok {
		factory.RemoveBody(s.ecs, entry)
		delete(s.actors, id)
	}
}

// Apply records the intents for the next step. Unknown actors are skipped.
func (s *Simulation) Apply(intents []replay.Intent) {
	for _, in := range intents {
		if entry, ok := s.Actor(in.Actor); ok {
			systems.SetIntent(entry, in.Sequence, gamemath.V3(in.X, in.Y, in.Z))
		}
	}
}

// Step runs every system once.
func (s *Simulation) Step() {
	s.ecs.Update()
}

func (s *Simulation) Snapshot() []systems.BodyState {
	return systems.Snapshot(s.ecs)
}

// SwapLevel replaces the level under the running world. Decorations and
// scripted actors are rebuilt from the new level. Players and the party keep
// their positions, moving to the first spawn point when they end up outside
// every sector.
func (s *Simulation) SwapLevel(l *leveldata.Level) {
	ld := *s.LevelData()
	s.ecs.World.Remove(s.level.Entity())

	var stale []*donburi.Entry
	components.Body.Each(s.ecs.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Player) && !entry.HasComponent(tags.Party) {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		s.ecs.World.Remove(entry.Entity())
	}

	s.level = factory.CreateLevel(s.ecs, l, ld.TickRate)
	next := s.LevelData()
	next.Tick = ld.Tick
	next.NextID = ld.NextID
	factory.PopulateLevel(s.ecs)

	fallback, hasSpawn := l.SpawnFor(0)
	components.Physics.Each(s.ecs.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if l.Kind == leveldata.KindIndoor {
			body.Sector = l.SectorAt(body.Position)
			if body.Sector < 0 && hasSpawn {
				body.Position = fallback.Position
				body.Sector = fallback.Sector
			}
		} else {
			body.Sector = -1
		}
	})
	systems.UpdateBodies(s.ecs)
}
