package collision

// ResolveOutdoor narrows the granted distance against the faces of the
// models near the swept box, the decorations in the grid cells around the
// actor and the population.
func (r *Resolver) ResolveOutdoor(c *Context, ignoreEthereal bool) (int32, Handle) {
	geo := r.outdoor()
	if geo == nil || c.MoveDistance <= 0 {
		return c.AdjustedMoveDistance, c.Hit
	}

	opts := FaceOptions{IgnoreEthereal: ignoreEthereal, Ignored: c.IgnoredFace}
	for _, m := range geo.ModelsNear(c.Box) {
		if m == nil || !m.Bounds.Intersects(c.Box) {
			continue
		}
		for i := range m.Faces {
			f := &m.Faces[i]
			h := ModelFaceHandle(m.Index, int32(i))
			if opts.skips(h, f.Flags) || !f.Bounds.Intersects(c.Box) {
				continue
			}
			r.testFace(c, newOutdoorPolygon(m, f), h, 1)
		}
	}

	gx, gy := geo.GridCell(c.PositionLo)
	r.CollideOutdoorWithDecorations(c, gx, gy)
	r.CollideWithBodies(c)
	return c.AdjustedMoveDistance, c.Hit
}

// CollideOutdoorWithDecorations tests the decorations of the 3x3 block of
// grid cells centred on (gridX, gridY).
func (r *Resolver) CollideOutdoorWithDecorations(c *Context, gridX, gridY int) {
	geo := r.outdoor()
	if geo == nil {
		return
	}
	for y := gridY - 1; y <= gridY+1; y++ {
		for x := gridX - 1; x <= gridX+1; x++ {
			for _, d := range geo.DecorationsInCell(x, y) {
				r.collideBody(c, d, 0)
			}
		}
	}
}
