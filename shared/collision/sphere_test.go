package collision

import (
	"testing"

	"github.com/automoto/collide/shared/gamemath"
)

var (
	dirPosX = gamemath.V3(gamemath.One, 0, 0)
	dirNegX = gamemath.V3(-gamemath.One, 0, 0)
	dirPosY = gamemath.V3(0, gamemath.One, 0)
)

func TestCollideIndoorWithFace(t *testing.T) {
	wall := wallX(1, 50)

	tests := []struct {
		name   string
		pos    gamemath.Vec3
		dir    gamemath.Vec3
		wantOK bool
		want   int32
	}{
		{"head on", gamemath.V3(0, 0, 0), dirPosX, true, 40},
		{"parallel", gamemath.V3(0, 0, 0), dirPosY, false, 0},
		{"moving away", gamemath.V3(0, 0, 0), dirNegX, false, 0},
		{"misses polygon", gamemath.V3(0, 500, 0), dirPosX, false, 0},
		{"already overlapping", gamemath.V3(45, 0, 0), dirPosX, true, 0},
		{"from behind", gamemath.V3(100, 0, 0), dirNegX, true, 40},
		{"zero direction", gamemath.V3(0, 0, 0), gamemath.Vec3{}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CollideIndoorWithFace(wall, tt.pos, 10, tt.dir, FaceOptions{})
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("distance = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCollideIndoorWithFaceDiagonal(t *testing.T) {
	wall := wallX(1, 50)
	dir := gamemath.V3(1, 1, 0).Normalize()

	d, ok := CollideIndoorWithFace(wall, gamemath.V3(0, 0, 0), 10, dir, FaceOptions{})
	if !ok {
		t.Fatal("expected a hit")
	}
	// 40 / cos(45°) = 56.57
	if d < 55 || d > 57 {
		t.Errorf("distance = %d, want ~56", d)
	}
	if d < 0 {
		t.Error("distance must never be negative")
	}
}

func TestTouchPointLiesOnFace(t *testing.T) {
	wall := wallX(1, 50)
	pos := gamemath.V3(0, 30, -20)
	d, ok := CollideIndoorWithFace(wall, pos, 10, dirPosX, FaceOptions{})
	if !ok {
		t.Fatal("expected a hit")
	}
	touch := pos.Advance(dirPosX, d).Sub(wall.Plane.Normal.Scale(10))
	if !IsProjectedPointInsideIndoorFace(wall, touch) {
		t.Errorf("touch point %v is outside the face", touch)
	}
	if dist := wall.Plane.Distance(touch); gamemath.Abs(dist) > gamemath.One {
		t.Errorf("touch point is %d (Q16.16) away from the plane", dist)
	}
}

func TestCollideIsIdempotentAtContact(t *testing.T) {
	wall := wallX(1, 50)
	pos := gamemath.V3(0, 0, 0)
	d, ok := CollideIndoorWithFace(wall, pos, 10, dirPosX, FaceOptions{})
	if !ok {
		t.Fatal("expected a hit")
	}
	again, ok := CollideIndoorWithFace(wall, pos.Advance(dirPosX, d), 10, dirPosX, FaceOptions{})
	if !ok || again != 0 {
		t.Errorf("second test = (%d, %v), want (0, true)", again, ok)
	}
}

func TestFaceOptions(t *testing.T) {
	wall := wallX(7, 50)
	wall.Flags |= FaceEthereal
	pos := gamemath.V3(0, 0, 0)

	if _, ok := CollideIndoorWithFace(wall, pos, 10, dirPosX, FaceOptions{IgnoreEthereal: true}); ok {
		t.Error("ethereal face should be skipped when ignoring ethereal faces")
	}
	if _, ok := CollideIndoorWithFace(wall, pos, 10, dirPosX, FaceOptions{}); !ok {
		t.Error("ethereal face should collide when ethereal faces are not ignored")
	}

	wall.Flags = 0
	if _, ok := CollideIndoorWithFace(wall, pos, 10, dirPosX, FaceOptions{Ignored: FaceHandle(7)}); ok {
		t.Error("ignored face should never collide")
	}
	if _, ok := CollideIndoorWithFace(wall, pos, 10, dirPosX, FaceOptions{Ignored: FaceHandle(8)}); !ok {
		t.Error("ignoring another face should not matter")
	}
}

func TestCollidePointIndoorWithFace(t *testing.T) {
	wall := wallX(1, 50)
	pos := gamemath.V3(0, 0, 0)

	tests := []struct {
		name   string
		pos    gamemath.Vec3
		dir    gamemath.Vec3
		best   int32
		want   int32
		wantOK bool
	}{
		{"within best", pos, dirPosX, 100, 50, true},
		{"beyond best", pos, dirPosX, 30, 30, false},
		{"exactly best", pos, dirPosX, 50, 50, true},
		{"parallel", pos, dirPosY, 100, 100, false},
		{"outside polygon", gamemath.V3(0, 300, 0), dirPosX, 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CollidePointIndoorWithFace(wall, tt.pos, tt.dir, tt.best)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
			if got > tt.best {
				t.Errorf("point test increased best from %d to %d", tt.best, got)
			}
		})
	}
}

func TestCollideOutdoorWithFace(t *testing.T) {
	m := &Model{
		Index: 3,
		Vertices: []gamemath.Vec3{
			gamemath.V3(50, -100, -100),
			gamemath.V3(50, 100, -100),
			gamemath.V3(50, 100, 100),
			gamemath.V3(50, -100, 100),
		},
		Faces: []ModelFace{{
			Normal:   gamemath.V3(-gamemath.One, 0, 0),
			Vertices: []int32{0, 1, 2, 3},
		}},
	}

	d, ok := CollideOutdoorWithFace(m, 0, gamemath.V3(0, 0, 0), 10, dirPosX, FaceOptions{})
	if !ok || d != 40 {
		t.Errorf("sphere test = (%d, %v), want (40, true)", d, ok)
	}
	if _, ok := CollideOutdoorWithFace(m, 0, gamemath.V3(0, 0, 0), 10, dirPosX, FaceOptions{Ignored: ModelFaceHandle(3, 0)}); ok {
		t.Error("ignored model face should not collide")
	}
	if _, ok := CollideOutdoorWithFace(m, 5, gamemath.V3(0, 0, 0), 10, dirPosX, FaceOptions{}); ok {
		t.Error("out of range face should not collide")
	}
	if d, ok := CollidePointOutdoorWithFace(m, 0, gamemath.V3(0, 0, 0), dirPosX, 80); !ok || d != 50 {
		t.Errorf("point test = (%d, %v), want (50, true)", d, ok)
	}
}
