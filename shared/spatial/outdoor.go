package spatial

import (
	"github.com/automoto/collide/shared/collision"
	"github.com/automoto/collide/shared/gamemath"
	"github.com/automoto/collide/shared/leveldata"
	"github.com/automoto/collide/tags"
)

// Outdoor serves an outdoor level's models and decorations from resolv
// spaces instead of the level's linear scans.
type Outdoor struct {
	Level *leveldata.Level

	models      *Index
	decorations *Index
}

func NewOutdoor(l *leveldata.Level) *Outdoor {
	o := &Outdoor{
		Level:       l,
		models:      NewIndex(l.Bounds, l.CellSize),
		decorations: NewIndex(l.Bounds, l.CellSize),
	}
	for i := range l.Models {
		m := &l.Models[i]
		o.models.Insert(m.Bounds, m, tags.ResolvModel)
	}
	// decorations belong to the cell holding their position
	for i := range l.Decorations {
		d := &l.Decorations[i]
		o.decorations.Insert(gamemath.BoundsOf(d.Position), d, tags.ResolvDecoration)
	}
	return o
}

// Geometry returns o as the outdoor variant.
func (o *Outdoor) Geometry() collision.Geometry {
	return collision.Outdoor{OutdoorGeometry: o}
}

func (o *Outdoor) ModelsNear(box gamemath.BBox) []*collision.Model {
	var out []*collision.Model
	for _, e := range o.models.Query(box, tags.ResolvModel) {
		out = append(out, e.Value.(*collision.Model))
	}
	return out
}

func (o *Outdoor) GridCell(p gamemath.Vec3) (x, y int) {
	return o.decorations.CellOf(p)
}

func (o *Outdoor) DecorationsInCell(x, y int) []*collision.Body {
	var out []*collision.Body
	for _, e := range o.decorations.Cell(x, y, tags.ResolvDecoration) {
		out = append(out, e.Value.(*collision.Body))
	}
	return out
}

// GeometryFor returns the indexed geometry for outdoor levels and the level
// itself otherwise.
func GeometryFor(l *leveldata.Level) collision.Geometry {
	if l.Kind == leveldata.KindOutdoor {
		return NewOutdoor(l).Geometry()
	}
	return l.Geometry()
}
