package factory

import (
	"testing"

	"github.com/automoto/collide/components"
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/automoto/collide/shared/leveldata"
	"github.com/automoto/collide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func twoRooms(t *testing.T) *leveldata.Level {
	t.Helper()
	b := leveldata.NewBuilder("rooms", leveldata.KindIndoor)
	b.AddSector([]leveldata.Point2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}, 0, 128)
	b.AddSector([]leveldata.Point2{{X: 100, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 100}, {X: 100, Y: 100}}, 0, 128)
	b.AddDecoration(gamemath.V3(50, 50, 0), 8, 40, false)
	b.AddDecoration(gamemath.V3(150, 50, 0), 8, 40, true)
	b.AddActor(leveldata.ActorSpawn{Name: "guard", Position: gamemath.V3(150, 20, 0), Radius: 12, Height: 60})
	l, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return l
}

func TestPopulateLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level := CreateLevel(e, twoRooms(t), 30)
	PopulateLevel(e)

	n := 0
	tags.Decoration.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 2 {
		t.Errorf("decorations = %d, want 2", n)
	}
	guard, ok := tags.Actor.First(e.World)
	if !ok {
		t.Fatal("no actor spawned")
	}
	body := components.Body.Get(guard)
	if body.Sector != 1 || body.Radius != 12 || body.Handle.Kind != collision.KindActor {
		t.Errorf("guard body = %+v", body)
	}

	ld := components.Level.Get(level)
	if ld.Bodies.Body(body.Handle) == nil {
		t.Error("guard not indexed")
	}
	if ld.TickRate != 30 || ld.Resolver == nil {
		t.Errorf("level data = %+v", ld)
	}
}

func TestHandlesAreUnique(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateLevel(e, twoRooms(t), 60)

	a := CreatePlayer(e, "a", leveldata.SpawnPoint{Position: gamemath.V3(10, 10, 0), Sector: -1})
	b := CreatePlayer(e, "b", leveldata.SpawnPoint{Position: gamemath.V3(30, 10, 0), Sector: -1})
	s := CreateSprite(e, gamemath.V3(50, 10, 10), 2, 2, gamemath.V3(1, 0, 0))

	ha, hb, hs := components.Body.Get(a).Handle, components.Body.Get(b).Handle, components.Body.Get(s).Handle
	if ha == hb || hs.Kind != collision.KindSprite || hs.Index == ha.Index || hs.Index == hb.Index {
		t.Errorf("handles %v %v %v", ha, hb, hs)
	}
}

func TestRemoveBody(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level := CreateLevel(e, twoRooms(t), 60)
	p := CreatePlayer(e, "a", leveldata.SpawnPoint{Position: gamemath.V3(10, 10, 0), Sector: -1})
	h := components.Body.Get(p).Handle

	RemoveBody(e, p)
	if components.Level.Get(level).Bodies.Body(h) != nil {
		t.Error("body still indexed")
	}
	if p.Valid() {
		t.Error("entity still valid")
	}
}
