package collision

import (
	"testing"

	"github.com/automoto/collide/shared/gamemath"
)

func actorAt(id int32, x int32) *Body {
	return &Body{Handle: ActorHandle(id), Position: gamemath.V3(x, 0, 0), Radius: 5, Height: 20}
}

func TestCollideWithActor(t *testing.T) {
	tests := []struct {
		name     string
		other    *Body
		override int32
		want     bool
		adjusted int32
	}{
		{"8 apart", actorAt(2, 8), 0, true, 0},
		{"20 apart", actorAt(2, 20), 0, false, 4},
		{"20 apart with override", actorAt(2, 20), 12, true, 3},
		{"behind", actorAt(2, -8), 0, false, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(Indoor{newTestLevel()}, testBodies{tt.other}, DefaultSettings())
			c := NewContext(ActorHandle(1), gamemath.V3(0, 0, 0), 5, 20, 0)
			c.SetTarget(gamemath.V3(4, 0, 0))
			c.Prepare(gamemath.One)

			if got := r.CollideWithActor(c, tt.other.Handle, tt.override); got != tt.want {
				t.Fatalf("CollideWithActor = %v, want %v", got, tt.want)
			}
			if c.AdjustedMoveDistance != tt.adjusted {
				t.Errorf("AdjustedMoveDistance = %d, want %d", c.AdjustedMoveDistance, tt.adjusted)
			}
			if tt.want && c.Hit != tt.other.Handle {
				t.Errorf("Hit = %v, want %v", c.Hit, tt.other.Handle)
			}
		})
	}
}

func TestCollideWithActorExclusions(t *testing.T) {
	self := actorAt(1, 8)
	ghost := actorAt(3, 8)
	ghost.Passable = true
	r := NewResolver(Indoor{newTestLevel()}, testBodies{self, ghost}, DefaultSettings())

	c := NewContext(ActorHandle(1), gamemath.V3(0, 0, 0), 5, 20, 0)
	c.SetTarget(gamemath.V3(4, 0, 0))
	c.Prepare(gamemath.One)

	if r.CollideWithActor(c, ActorHandle(1), 0) {
		t.Error("an actor should never collide with itself")
	}
	if r.CollideWithActor(c, ActorHandle(3), 0) {
		t.Error("passable bodies should never collide")
	}
	if r.CollideWithActor(c, ActorHandle(99), 0) {
		t.Error("unknown handle should not collide")
	}
	if c.AdjustedMoveDistance != 4 {
		t.Errorf("AdjustedMoveDistance = %d, want 4", c.AdjustedMoveDistance)
	}
}

func TestCollideWithActorHeight(t *testing.T) {
	above := &Body{Handle: SpriteHandle(2), Position: gamemath.V3(8, 0, 50), Radius: 5, Height: 20}
	r := NewResolver(Indoor{newTestLevel()}, testBodies{above}, DefaultSettings())

	c := NewContext(ActorHandle(1), gamemath.V3(0, 0, 0), 5, 20, 0)
	c.SetTarget(gamemath.V3(4, 0, 0))
	c.Prepare(gamemath.One)
	if r.CollideWithActor(c, above.Handle, 0) {
		t.Error("a body entirely above the actor should not collide")
	}
}

func TestCollideWithBodiesPicksNearest(t *testing.T) {
	near := &Body{Handle: ActorHandle(2), Position: gamemath.V3(30, 0, 0), Radius: 5, Height: 20}
	far := &Body{Handle: PartyHandle(), Position: gamemath.V3(60, 0, 0), Radius: 5, Height: 20}
	r := NewResolver(Indoor{newTestLevel()}, testBodies{far, near}, DefaultSettings())

	c := NewContext(ActorHandle(1), gamemath.V3(0, 0, 0), 5, 20, 0)
	c.SetTarget(gamemath.V3(100, 0, 0))
	c.Prepare(gamemath.One)
	r.CollideWithBodies(c)

	if c.Hit != near.Handle || c.AdjustedMoveDistance != 20 {
		t.Errorf("got (%d, %v), want (20, %v)", c.AdjustedMoveDistance, c.Hit, near.Handle)
	}
	if c.HitNormal != dirNegX {
		t.Errorf("HitNormal = %v, want %v", c.HitNormal, dirNegX)
	}
}
