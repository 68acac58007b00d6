package collision

import "github.com/automoto/collide/shared/gamemath"

type PortalResult uint8

const (
	// PortalNone means no portal was reached within the granted distance.
	PortalNone PortalResult = iota
	// PortalCrossed means the actor passes through an open portal; SectorID
	// now names the far sector and the granted distance was reset so the
	// caller searches again.
	PortalCrossed
	// PortalBlocked means a closed portal stops the actor; the granted
	// distance ends at it and Blocked is set.
	PortalBlocked
)

func (p PortalResult) String() string {
	switch p {
	case PortalCrossed:
		return "crossed"
	case PortalBlocked:
		return "blocked"
	default:
		return "none"
	}
}

// ResolvePortals tests the move against the portals of the current sector.
func (r *Resolver) ResolvePortals(c *Context) PortalResult {
	geo := r.indoor()
	if geo == nil {
		return PortalNone
	}
	res, _ := r.resolvePortals(c, geo)
	return res
}

// CollidePortals reports whether the move stays clear of every portal. It
// is false when a portal was crossed (the caller must search the new
// sector) or when a closed portal blocks further progress.
func (r *Resolver) CollidePortals(c *Context) bool {
	return r.ResolvePortals(c) == PortalNone
}

// resolvePortals also returns the distance at which the event happens.
func (r *Resolver) resolvePortals(c *Context, geo IndoorGeometry) (PortalResult, int32) {
	cur := geo.Sector(c.SectorID)
	if cur == nil || c.MoveDistance <= 0 {
		return PortalNone, 0
	}

	var (
		nearest *Face
		at      int32
		closed  bool
	)
	rr := gamemath.FromInt(c.RadiusLo)
	for _, id := range cur.Portals {
		p := geo.Face(id)
		if p == nil || !p.Bounds.Intersects(c.Box) {
			continue
		}
		other := p.OtherSide(cur.ID)
		if other < 0 || geo.Sector(other) == nil {
			continue
		}

		// oriented so that positive is inside the current sector
		side := int64(1)
		if p.Sector != cur.ID {
			side = -1
		}
		old := side * p.Plane.Distance(c.PositionLo)
		next := side * p.Plane.Distance(c.NewPositionLo)
		if !((old < rr || next < rr) && (old > -rr || next > -rr)) {
			continue
		}

		if p.Flags.Has(FaceClosed) {
			d, ok := collideSphere(indoorPolygon{p}, c.PositionLo, c.RadiusLo, c.Direction)
			if !ok || d > c.AdjustedMoveDistance {
				continue
			}
			if nearest == nil || d < at {
				nearest, at, closed = p, d, true
			}
			continue
		}

		// only leaving the current sector counts as a crossing
		if side*p.Plane.Normal.FixDot(c.Direction) >= 0 {
			continue
		}
		d, ok := collidePoint(indoorPolygon{p}, c.PositionLo, c.Direction, c.MoveDistance)
		if !ok || d > c.AdjustedMoveDistance {
			continue
		}
		if nearest == nil || d < at {
			nearest, at, closed = p, d, false
		}
	}

	if nearest == nil {
		return PortalNone, 0
	}
	if closed {
		n := nearest.Plane.Normal
		if nearest.Sector != cur.ID {
			n = n.Neg()
		}
		c.AdjustedMoveDistance = at
		c.Hit = nearest.Handle()
		c.HitNormal = n
		c.Blocked = true
		return PortalBlocked, at
	}

	c.SectorID = nearest.OtherSide(cur.ID)
	c.AdjustedMoveDistance = c.MoveDistance
	c.Hit = NoHandle
	c.HitNormal = gamemath.Vec3{}
	return PortalCrossed, at
}
