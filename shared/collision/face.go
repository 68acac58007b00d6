package collision

import "github.com/automoto/collide/shared/gamemath"

// Plane satisfies Normal·p + Dist = 0. Normal is a Q16.16 unit vector and
// Dist is Q16.16.
type Plane struct {
	Normal gamemath.Vec3
	Dist   int64
}

// PlaneFrom builds the plane with the given normal passing through p.
func PlaneFrom(normal, p gamemath.Vec3) Plane {
	return Plane{Normal: normal, Dist: -normal.Dot(p)}
}

// Distance is the signed Q16.16 distance from p to the plane, positive on
// the side the normal points to.
func (pl Plane) Distance(p gamemath.Vec3) int64 {
	return pl.Normal.Dot(p) + pl.Dist
}

// Axis names the plane a polygon is projected onto for containment tests.
type Axis uint8

const (
	AxisXY Axis = iota // drops Z
	AxisXZ             // drops Y
	AxisYZ             // drops X
)

// DominantAxis picks the projection that drops the largest normal component.
func DominantAxis(n gamemath.Vec3) Axis {
	ax, ay, az := gamemath.Abs32(n.X), gamemath.Abs32(n.Y), gamemath.Abs32(n.Z)
	switch {
	case az >= ax && az >= ay:
		return AxisXY
	case ay >= ax:
		return AxisXZ
	default:
		return AxisYZ
	}
}

func (a Axis) project(p gamemath.Vec3) (u, v int64) {
	switch a {
	case AxisXZ:
		return int64(p.X), int64(p.Z)
	case AxisYZ:
		return int64(p.Y), int64(p.Z)
	default:
		return int64(p.X), int64(p.Y)
	}
}

type FaceFlags uint16

const (
	FaceEthereal FaceFlags = 1 << iota // never blocks when ethereal faces are ignored
	FacePortal                         // boundary between two sectors
	FaceClosed                         // portal that cannot be crossed
	FaceInvisible
)

func (f FaceFlags) Has(flag FaceFlags) bool { return f&flag != 0 }

// Face is a convex planar polygon of indoor geometry.
type Face struct {
	ID       int32
	Plane    Plane
	Axis     Axis
	Vertices []gamemath.Vec3
	Flags    FaceFlags
	Bounds   gamemath.BBox

	// Sector is the sector the normal points into. BackSector is only
	// meaningful for portals.
	Sector     int32
	BackSector int32
}

func (f *Face) Handle() Handle { return FaceHandle(f.ID) }

// IsPortal reports whether the face joins two sectors.
func (f *Face) IsPortal() bool { return f.Flags.Has(FacePortal) }

// OtherSide returns the sector on the far side of a portal as seen from
// sector, or -1 when the face does not join sector to anything.
func (f *Face) OtherSide(sector int32) int32 {
	switch sector {
	case f.Sector:
		return f.BackSector
	case f.BackSector:
		return f.Sector
	}
	return -1
}

// Sector owns a list of faces; portals are listed separately.
type Sector struct {
	ID          int32
	Faces       []int32
	Portals     []int32
	Decorations []int32
	Bounds      gamemath.BBox
}

// Model is a piece of outdoor geometry.
type Model struct {
	Index    int32
	Name     string
	Vertices []gamemath.Vec3
	Faces    []ModelFace
	Bounds   gamemath.BBox
}

// ModelFace indexes into its model's vertex list. Its plane is rebuilt from
// Normal and the first vertex whenever it is tested.
type ModelFace struct {
	Normal   gamemath.Vec3
	Vertices []int32
	Flags    FaceFlags
	Bounds   gamemath.BBox
}

func (m *Model) Plane(face *ModelFace) Plane {
	if len(face.Vertices) == 0 || face.Vertices[0] < 0 || int(face.Vertices[0]) >= len(m.Vertices) {
		return Plane{Normal: face.Normal}
	}
	return PlaneFrom(face.Normal, m.Vertices[face.Vertices[0]])
}

// polygon is the one contract both face families satisfy.
type polygon interface {
	plane() Plane
	axis() Axis
	count() int
	vertex(i int) gamemath.Vec3
}

type indoorPolygon struct{ f *Face }

func (p indoorPolygon) plane() Plane               { return p.f.Plane }
func (p indoorPolygon) axis() Axis                 { return p.f.Axis }
func (p indoorPolygon) count() int                 { return len(p.f.Vertices) }
func (p indoorPolygon) vertex(i int) gamemath.Vec3 { return p.f.Vertices[i] }

type outdoorPolygon struct {
	m  *Model
	f  *ModelFace
	pl Plane
}

func newOutdoorPolygon(m *Model, f *ModelFace) outdoorPolygon {
	return outdoorPolygon{m: m, f: f, pl: m.Plane(f)}
}

func (p outdoorPolygon) plane() Plane { return p.pl }
func (p outdoorPolygon) axis() Axis   { return DominantAxis(p.f.Normal) }
func (p outdoorPolygon) count() int   { return len(p.f.Vertices) }

func (p outdoorPolygon) vertex(i int) gamemath.Vec3 {
	idx := p.f.Vertices[i]
	if idx < 0 || int(idx) >= len(p.m.Vertices) {
		return gamemath.Vec3{}
	}
	return p.m.Vertices[idx]
}
