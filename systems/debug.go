package systems

import (
	"fmt"
	"log"
	"sort"

	"github.com/automoto/collide/components"
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BodyState is a snapshot of one moving body.
type BodyState struct {
	Handle   collision.Handle
	Position gamemath.Vec3
	Sector   int32
	LastHit  collision.Handle
}

func (s BodyState) String() string {
	return fmt.Sprintf("%s at (%d,%d,%d) sector %d, last hit %s",
		s.Handle, s.Position.X, s.Position.Y, s.Position.Z, s.Sector, s.LastHit)
}

// Snapshot returns every moving body ordered by handle.
func Snapshot(e *ecs.ECS) []BodyState {
	var out []BodyState
	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		out = append(out, BodyState{
			Handle:   body.Handle,
			Position: body.Position,
			Sector:   body.Sector,
			LastHit:  components.Physics.Get(entry).LastHit,
		})
	})
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Handle, out[j].Handle
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Index < b.Index
	})
	return out
}

// LogBodies writes the snapshot to the log.
func LogBodies(e *ecs.ECS) {
	for _, s := range Snapshot(e) {
		log.Printf("[debug] %s", s)
	}
}
