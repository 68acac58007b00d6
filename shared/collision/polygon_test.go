package collision

import (
	"testing"

	"github.com/automoto/collide/shared/gamemath"
)

func TestIsProjectedPointInsideIndoorFace(t *testing.T) {
	floor := newFace(1, gamemath.V3(0, 0, 1),
		gamemath.V3(0, 0, 0),
		gamemath.V3(100, 0, 0),
		gamemath.V3(100, 100, 0),
		gamemath.V3(0, 100, 0),
	)
	triangle := newFace(2, gamemath.V3(0, 0, 1),
		gamemath.V3(0, 0, 0),
		gamemath.V3(100, 0, 0),
		gamemath.V3(0, 100, 0),
	)

	tests := []struct {
		name string
		face *Face
		p    gamemath.Vec3
		want bool
	}{
		{"centre", floor, gamemath.V3(50, 50, 0), true},
		{"above centre projects inside", floor, gamemath.V3(50, 50, 999), true},
		{"on edge", floor, gamemath.V3(100, 50, 0), true},
		{"on vertex", floor, gamemath.V3(0, 0, 0), true},
		{"outside", floor, gamemath.V3(101, 50, 0), false},
		{"triangle inside", triangle, gamemath.V3(20, 20, 0), true},
		{"triangle hypotenuse", triangle, gamemath.V3(50, 50, 0), true},
		{"triangle outside", triangle, gamemath.V3(60, 60, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProjectedPointInsideIndoorFace(tt.face, tt.p); got != tt.want {
				t.Errorf("inside(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDegeneratePolygonsContainNothing(t *testing.T) {
	line := newFace(1, gamemath.V3(0, 0, 1),
		gamemath.V3(0, 0, 0),
		gamemath.V3(50, 0, 0),
		gamemath.V3(100, 0, 0),
	)
	if IsProjectedPointInsideIndoorFace(line, gamemath.V3(50, 0, 0)) {
		t.Error("zero area polygon should contain nothing")
	}

	two := &Face{Axis: AxisXY, Vertices: []gamemath.Vec3{{}, gamemath.V3(10, 10, 0)}}
	if IsProjectedPointInsideIndoorFace(two, gamemath.V3(5, 5, 0)) {
		t.Error("polygon with two vertices should contain nothing")
	}
	if IsProjectedPointInsideIndoorFace(nil, gamemath.Vec3{}) {
		t.Error("nil face should contain nothing")
	}
}

func TestDominantAxis(t *testing.T) {
	tests := []struct {
		n    gamemath.Vec3
		want Axis
	}{
		{gamemath.V3(0, 0, gamemath.One), AxisXY},
		{gamemath.V3(gamemath.One, 0, 0), AxisYZ},
		{gamemath.V3(0, -gamemath.One, 0), AxisXZ},
		{gamemath.V3(1, 2, -3).Normalize(), AxisXY},
	}
	for _, tt := range tests {
		if got := DominantAxis(tt.n); got != tt.want {
			t.Errorf("DominantAxis(%v) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestIsProjectedPointInsideOutdoorFace(t *testing.T) {
	m := &Model{
		Vertices: []gamemath.Vec3{
			gamemath.V3(0, 0, 10), gamemath.V3(10, 0, 10), gamemath.V3(10, 10, 10), gamemath.V3(0, 10, 10),
		},
		Faces: []ModelFace{{Normal: gamemath.V3(0, 0, gamemath.One), Vertices: []int32{0, 1, 2, 3}}},
	}
	if !IsProjectedPointInsideOutdoorFace(m, &m.Faces[0], gamemath.V3(5, 5, 0)) {
		t.Error("point should project inside the top face")
	}
	if IsProjectedPointInsideOutdoorFace(m, &m.Faces[0], gamemath.V3(15, 5, 0)) {
		t.Error("point should project outside the top face")
	}
}
