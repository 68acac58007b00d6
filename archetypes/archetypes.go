package archetypes

import (
	"github.com/automoto/collide/components"
	"github.com/automoto/collide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		components.Level,
	)
	Actor = newArchetype(
		tags.Actor,
		components.Body,
		components.Physics,
		components.Intent,
		components.Object,
	)
	Player = newArchetype(
		tags.Actor,
		tags.Player,
		components.Player,
		components.Body,
		components.Physics,
		components.Intent,
		components.Object,
	)
	Party = newArchetype(
		tags.Party,
		components.Body,
		components.Physics,
		components.Intent,
		components.Object,
	)
	Sprite = newArchetype(
		tags.Sprite,
		components.Body,
		components.Physics,
		components.Object,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Body,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return e.World.Entry(e.World.Create(all...))
}
