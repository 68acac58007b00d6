package collision

import "github.com/automoto/collide/shared/gamemath"

// ResolveIndoor narrows the granted distance against the faces of the
// current sector and of every sector behind a portal within reach, against
// decorations and bodies, and finally against the portals themselves. A
// crossed portal moves the search into the next sector and starts over, at
// most MaxPortalHops times; the last sector reached is still searched, and
// the move ends at its next open portal. It returns the granted distance and
// the hit.
func (r *Resolver) ResolveIndoor(c *Context, ignoreEthereal bool) (int32, Handle) {
	geo := r.indoor()
	if geo == nil || c.MoveDistance <= 0 {
		return c.AdjustedMoveDistance, c.Hit
	}

	type crossing struct {
		from int32
		at   int32
	}
	var crossed []crossing

	for hop := 0; ; hop++ {
		r.collideSectorFaces(c, geo, ignoreEthereal)
		r.CollideIndoorWithDecorations(c)
		r.CollideWithBodies(c)

		if hop >= r.Settings.MaxPortalHops {
			r.stopShortOfPortals(c, geo)
			break
		}
		from := c.SectorID
		res, at := r.resolvePortals(c, geo)
		if res != PortalCrossed {
			break
		}
		crossed = append(crossed, crossing{from: from, at: at})
	}

	// an obstruction found after a crossing may stop the actor short of it
	for i := len(crossed) - 1; i >= 0; i-- {
		if c.AdjustedMoveDistance >= crossed[i].at {
			break
		}
		c.SectorID = crossed[i].from
	}
	return c.AdjustedMoveDistance, c.Hit
}

// stopShortOfPortals resolves the portals of the current sector once the hop
// budget is spent. A closed portal still blocks; an open one is not entered
// and the granted distance ends where the crossing would happen.
func (r *Resolver) stopShortOfPortals(c *Context, geo IndoorGeometry) {
	sector, granted, hit, normal := c.SectorID, c.AdjustedMoveDistance, c.Hit, c.HitNormal
	if res, at := r.resolvePortals(c, geo); res == PortalCrossed {
		c.SectorID = sector
		c.AdjustedMoveDistance, c.Hit, c.HitNormal = granted, hit, normal
		if at < granted {
			c.AdjustedMoveDistance = at
			c.Hit = NoHandle
			c.HitNormal = gamemath.Vec3{}
		}
	}
}

// nearbySectors lists the current sector followed by every sector behind a
// portal close enough to matter for this move.
func (r *Resolver) nearbySectors(c *Context, geo IndoorGeometry) []*Sector {
	cur := geo.Sector(c.SectorID)
	if cur == nil {
		return nil
	}
	sectors := []*Sector{cur}
	reach := gamemath.FromInt(c.MoveDistance + c.RadiusLo + r.Settings.PortalReach)
	for _, id := range cur.Portals {
		p := geo.Face(id)
		if p == nil || !p.Bounds.Intersects(c.Box) {
			continue
		}
		if gamemath.Abs(p.Plane.Distance(c.PositionLo)) > reach {
			continue
		}
		next := geo.Sector(p.OtherSide(cur.ID))
		if next == nil || containsSector(sectors, next.ID) {
			continue
		}
		sectors = append(sectors, next)
	}
	return sectors
}

func containsSector(sectors []*Sector, id int32) bool {
	for _, s := range sectors {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (r *Resolver) collideSectorFaces(c *Context, geo IndoorGeometry, ignoreEthereal bool) {
	opts := FaceOptions{IgnoreEthereal: ignoreEthereal, Ignored: c.IgnoredFace}
	for _, s := range r.nearbySectors(c, geo) {
		for _, id := range s.Faces {
			f := geo.Face(id)
			if f == nil || f.IsPortal() || opts.skips(f.Handle(), f.Flags) {
				continue
			}
			if !f.Bounds.Intersects(c.Box) {
				continue
			}
			r.testFace(c, indoorPolygon{f}, f.Handle(), 1)
		}
	}
}

// CollideIndoorWithDecorations tests the decorations of the current sector
// and its neighbours.
func (r *Resolver) CollideIndoorWithDecorations(c *Context) {
	geo := r.indoor()
	if geo == nil {
		return
	}
	for _, s := range r.nearbySectors(c, geo) {
		for _, id := range s.Decorations {
			r.collideBody(c, geo.Decoration(id), 0)
		}
	}
}
