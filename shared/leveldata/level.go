package leveldata

import (
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
)

// Geometry wraps the level in the variant matching its kind.
func (l *Level) Geometry() collision.Geometry {
	if l.Kind == KindOutdoor {
		return collision.Outdoor{OutdoorGeometry: l}
	}
	return collision.Indoor{IndoorGeometry: l}
}

func (l *Level) Sector(id int32) *collision.Sector {
	if id < 0 || int(id) >= len(l.Sectors) {
		return nil
	}
	return &l.Sectors[id]
}

func (l *Level) Face(id int32) *collision.Face {
	if id < 0 || int(id) >= len(l.Faces) {
		return nil
	}
	return &l.Faces[id]
}

func (l *Level) Decoration(id int32) *collision.Body {
	if id < 0 || int(id) >= len(l.Decorations) {
		return nil
	}
	return &l.Decorations[id]
}

// ModelsNear scans every model; the spatial package provides an indexed
// alternative for large maps.
func (l *Level) ModelsNear(box gamemath.BBox) []*collision.Model {
	var out []*collision.Model
	for i := range l.Models {
		if l.Models[i].Bounds.Intersects(box) {
			out = append(out, &l.Models[i])
		}
	}
	return out
}

func (l *Level) GridCell(p gamemath.Vec3) (x, y int) {
	return CellOf(p, l.CellSize)
}

func (l *Level) DecorationsInCell(x, y int) []*collision.Body {
	var out []*collision.Body
	for i := range l.Decorations {
		d := &l.Decorations[i]
		if cx, cy := CellOf(d.Position, l.CellSize); cx == x && cy == y {
			out = append(out, d)
		}
	}
	return out
}

// CellOf returns the grid cell holding p, rounding toward negative infinity.
func CellOf(p gamemath.Vec3, size int32) (x, y int) {
	if size <= 0 {
		size = DefaultCellSize
	}
	return floorDiv(p.X, size), floorDiv(p.Y, size)
}

func floorDiv(v, size int32) int {
	q := v / size
	if v%size != 0 && v < 0 {
		q--
	}
	return int(q)
}

// SectorAt returns the sector whose footprint holds p and whose floor and
// ceiling span its height, or -1.
func (l *Level) SectorAt(p gamemath.Vec3) int32 {
	for i, span := range l.floors {
		if p.Z < span.floor || p.Z > span.ceiling {
			continue
		}
		if collision.IsProjectedPointInsideIndoorFace(l.Face(span.floorFace), p) {
			return int32(i)
		}
	}
	return -1
}

// SpawnFor returns the spawn point with the given index, falling back to
// the first one.
func (l *Level) SpawnFor(index int) (SpawnPoint, bool) {
	for _, s := range l.Spawns {
		if s.Index == index {
			return s, true
		}
	}
	if n := len(l.Spawns); n > 0 {
		return l.Spawns[((index%n)+n)%n], true
	}
	return SpawnPoint{}, false
}
