// Package collision resolves how far an actor may move in one tick before it
// touches level faces, portals, decorations or other actors.
//
// All arithmetic is integer: world positions are plain units and normals,
// directions and plane distances are Q16.16. Lookups that fail (unknown
// sector, missing body, degenerate polygon) mean "no collision".
package collision

import "github.com/automoto/collide/shared/gamemath"

// IndoorGeometry provides sectors, faces and decorations by id. Unknown ids
// return nil.
type IndoorGeometry interface {
	Sector(id int32) *Sector
	Face(id int32) *Face
	Decoration(id int32) *Body
}

// OutdoorGeometry provides the models and decorations of an outdoor level.
type OutdoorGeometry interface {
	ModelsNear(box gamemath.BBox) []*Model
	GridCell(p gamemath.Vec3) (x, y int)
	DecorationsInCell(x, y int) []*Body
}

// Population provides the moving bodies (actors, sprites, party).
type Population interface {
	Body(h Handle) *Body
	BodiesNear(box gamemath.BBox) []*Body
}

// Geometry is either Indoor or Outdoor.
type Geometry interface {
	geometry()
}

type Indoor struct{ IndoorGeometry }

type Outdoor struct{ OutdoorGeometry }

func (Indoor) geometry()  {}
func (Outdoor) geometry() {}

type Settings struct {
	// MaxIterations caps the slide iterations of one Move.
	MaxIterations int
	// MaxPortalHops caps sector changes within one pass.
	MaxPortalHops int
	// PortalReach is the slack added to the move budget when deciding
	// whether a neighbouring sector is close enough to be searched.
	PortalReach int32
}

func DefaultSettings() Settings {
	return Settings{
		MaxIterations: 100,
		MaxPortalHops: 8,
		PortalReach:   16,
	}
}

// Resolver runs collision passes against one level.
type Resolver struct {
	Level    Geometry
	Bodies   Population
	Settings Settings
}

func NewResolver(level Geometry, bodies Population, settings Settings) *Resolver {
	if settings.MaxIterations <= 0 {
		settings.MaxIterations = DefaultSettings().MaxIterations
	}
	if settings.MaxPortalHops <= 0 {
		settings.MaxPortalHops = DefaultSettings().MaxPortalHops
	}
	return &Resolver{Level: level, Bodies: bodies, Settings: settings}
}

// Pass runs one full iteration for the level kind and returns the granted
// distance and what stopped the actor.
func (r *Resolver) Pass(c *Context, ignoreEthereal bool) (int32, Handle) {
	switch r.Level.(type) {
	case Indoor:
		return r.ResolveIndoor(c, ignoreEthereal)
	case Outdoor:
		return r.ResolveOutdoor(c, ignoreEthereal)
	}
	return c.AdjustedMoveDistance, c.Hit
}

func (r *Resolver) indoor() IndoorGeometry {
	if g, ok := r.Level.(Indoor); ok && g.IndoorGeometry != nil {
		return g.IndoorGeometry
	}
	return nil
}

func (r *Resolver) outdoor() OutdoorGeometry {
	if g, ok := r.Level.(Outdoor); ok && g.OutdoorGeometry != nil {
		return g.OutdoorGeometry
	}
	return nil
}

// testSphere applies the face pre-filter and the sphere test, falling back to
// the centre ray, for one sphere against one polygon. Distances are oriented
// so that positive means in front of the face; a move that does not bring
// the sphere closer to the plane is skipped.
func (r *Resolver) testSphere(c *Context, poly polygon, center, end gamemath.Vec3, radius int32, side int64) (int32, bool) {
	pl := poly.plane()
	rr := gamemath.FromInt(radius)
	old := side * pl.Distance(center)
	next := side * pl.Distance(end)
	if old <= 0 || (old > rr && next > rr) || next >= old {
		return 0, false
	}

	if d, ok := collideSphere(poly, center, radius, c.Direction); ok {
		return d, true
	}
	best := c.MoveDistance + radius
	if d, ok := collidePoint(poly, center, c.Direction, best); ok {
		return d - radius, true
	}
	return 0, false
}

// testFace runs testSphere for the lower sphere and, when enabled, the upper
// one, and narrows the context on the closer touch.
func (r *Resolver) testFace(c *Context, poly polygon, h Handle, side int64) {
	d, ok := r.testSphere(c, poly, c.PositionLo, c.NewPositionLo, c.RadiusLo, side)
	if c.CheckHi {
		if dh, okh := r.testSphere(c, poly, c.PositionHi, c.NewPositionHi, c.RadiusHi, side); okh && (!ok || dh < d) {
			d, ok = dh, true
		}
	}
	if !ok {
		return
	}
	n := poly.plane().Normal
	if side < 0 {
		n = n.Neg()
	}
	c.narrow(d, h, n)
}
