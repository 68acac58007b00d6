package collision

import "github.com/automoto/collide/shared/gamemath"

// Body is a vertical cylinder standing on Position.
type Body struct {
	Handle   Handle
	Position gamemath.Vec3
	Radius   int32
	Height   int32
	Passable bool
}

func (b *Body) Bounds() gamemath.BBox {
	return gamemath.BBox{
		Min: b.Position.Sub(gamemath.V3(b.Radius, b.Radius, 0)),
		Max: b.Position.Add(gamemath.V3(b.Radius, b.Radius, b.Height)),
	}
}

// CollideWithActor tests the move against the body behind h. A positive
// radiusOverride replaces the body's own radius. It returns whether a
// collision is possible within this move; the context is only narrowed
// when the contact is closer than the current obstruction.
func (r *Resolver) CollideWithActor(c *Context, h Handle, radiusOverride int32) bool {
	if r.Bodies == nil {
		return false
	}
	return r.collideBody(c, r.Bodies.Body(h), radiusOverride)
}

// CollideWithBodies tests every body of the population near the swept box.
func (r *Resolver) CollideWithBodies(c *Context) {
	if r.Bodies == nil {
		return
	}
	for _, b := range r.Bodies.BodiesNear(c.Box) {
		r.collideBody(c, b, 0)
	}
}

func (r *Resolver) collideBody(c *Context, b *Body, radiusOverride int32) bool {
	if b == nil || b.Passable || b.Handle == c.Self || c.MoveDistance <= 0 {
		return false
	}
	radius := b.Radius
	if radiusOverride > 0 {
		radius = radiusOverride
	}
	bounds := gamemath.BBox{
		Min: b.Position.Sub(gamemath.V3(radius, radius, 0)),
		Max: b.Position.Add(gamemath.V3(radius, radius, b.Height)),
	}
	if !bounds.Intersects(c.Box) {
		return false
	}

	// horizontal part of the direction, and its length h
	dir := c.Direction
	h := int64(gamemath.SqrtU(uint64(int64(dir.X)*int64(dir.X) + int64(dir.Y)*int64(dir.Y))))
	if h == 0 {
		return false
	}
	ux := gamemath.Div(int64(dir.X), h)
	uy := gamemath.Div(int64(dir.Y), h)

	dx := int64(b.Position.X - c.PositionLo.X)
	dy := int64(b.Position.Y - c.PositionLo.Y)
	along := dx*ux + dy*uy
	perp := dx*uy - dy*ux
	sum := gamemath.FromInt(radius + c.RadiusLo)
	if gamemath.Abs(perp) >= sum || along <= 0 {
		return false
	}

	chord := int64(gamemath.SqrtU(uint64(sum)*uint64(sum) - uint64(perp*perp)))
	flat := along - chord
	if flat < 0 {
		flat = 0
	}
	dist := gamemath.Sat32(gamemath.Div(flat, h) >> gamemath.Shift)
	if dist > c.MoveDistance {
		return false
	}

	lo := c.PositionLo.Advance(dir, dist)
	bottom, top := lo.Z-c.RadiusLo, lo.Z+c.RadiusLo
	if c.CheckHi {
		top = c.PositionHi.Advance(dir, dist).Z + c.RadiusHi
	}
	if top < b.Position.Z || bottom > b.Position.Z+b.Height {
		return false
	}

	normal := lo.Sub(b.Position).XY().Normalize()
	if normal.IsZero() {
		normal = dir.XY().Normalize().Neg()
	}
	c.narrow(dist, b.Handle, normal)
	return true
}
