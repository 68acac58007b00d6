package collision

import "github.com/automoto/collide/shared/gamemath"

func newFace(id int32, normal gamemath.Vec3, verts ...gamemath.Vec3) *Face {
	n := normal.Normalize()
	return &Face{
		ID:       id,
		Plane:    PlaneFrom(n, verts[0]),
		Axis:     DominantAxis(n),
		Vertices: verts,
		Bounds:   gamemath.BoundsOf(verts...),
	}
}

// wallX is a 200x200 square in the plane x = at, facing -x.
func wallX(id int32, at int32) *Face {
	return newFace(id, gamemath.V3(-1, 0, 0),
		gamemath.V3(at, -100, -100),
		gamemath.V3(at, 100, -100),
		gamemath.V3(at, 100, 100),
		gamemath.V3(at, -100, 100),
	)
}

type testLevel struct {
	sectors     map[int32]*Sector
	faces       map[int32]*Face
	decorations map[int32]*Body
	queries     int
}

func newTestLevel() *testLevel {
	return &testLevel{
		sectors:     map[int32]*Sector{},
		faces:       map[int32]*Face{},
		decorations: map[int32]*Body{},
	}
}

func (l *testLevel) Sector(id int32) *Sector {
	l.queries++
	return l.sectors[id]
}

func (l *testLevel) Face(id int32) *Face {
	l.queries++
	return l.faces[id]
}

func (l *testLevel) Decoration(id int32) *Body {
	l.queries++
	return l.decorations[id]
}

func (l *testLevel) addSector(id int32, faces ...*Face) *Sector {
	s := &Sector{ID: id}
	for _, f := range faces {
		f.Sector = id
		l.faces[f.ID] = f
		s.Faces = append(s.Faces, f.ID)
	}
	l.sectors[id] = s
	return s
}

// addPortal joins front and back through f; f's normal must point into front.
func (l *testLevel) addPortal(f *Face, front, back int32) {
	f.Flags |= FacePortal
	f.Sector = front
	f.BackSector = back
	l.faces[f.ID] = f
	for _, id := range []int32{front, back} {
		if s := l.sectors[id]; s != nil {
			s.Portals = append(s.Portals, f.ID)
		}
	}
}

type testBodies []*Body

func (tb testBodies) Body(h Handle) *Body {
	for _, b := range tb {
		if b.Handle == h {
			return b
		}
	}
	return nil
}

func (tb testBodies) BodiesNear(box gamemath.BBox) []*Body {
	var out []*Body
	for _, b := range tb {
		if b.Bounds().Intersects(box) {
			out = append(out, b)
		}
	}
	return out
}

type testOutdoor struct {
	models []*Model
	cells  map[[2]int][]*Body
}

func (o *testOutdoor) ModelsNear(box gamemath.BBox) []*Model { return o.models }

func (o *testOutdoor) GridCell(p gamemath.Vec3) (int, int) {
	return int(p.X) / 64, int(p.Y) / 64
}

func (o *testOutdoor) DecorationsInCell(x, y int) []*Body { return o.cells[[2]int{x, y}] }

// movingContext starts a radius 10 actor whose lower sphere is centred at
// lo and asks it to move to lo+delta.
func movingContext(lo, delta gamemath.Vec3) *Context {
	c := NewContext(ActorHandle(1), lo.Sub(gamemath.V3(0, 0, 11)), 10, 0, 0)
	c.NewPositionLo = c.PositionLo.Add(delta)
	c.NewPositionHi = c.PositionHi.Add(delta)
	return c
}

// slopedWall lies on the line 3x + y = 150, facing the origin.
func slopedWall(id int32) *Face {
	return newFace(id, gamemath.V3(-3, -1, 0),
		gamemath.V3(200, -450, -100),
		gamemath.V3(200, -450, 100),
		gamemath.V3(-100, 450, 100),
		gamemath.V3(-100, 450, -100),
	)
}
