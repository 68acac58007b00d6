package collision

import "github.com/automoto/collide/shared/gamemath"

// Context holds the state of one actor's movement attempt for one tick. It
// is built fresh by NewContext and must not be shared between actors.
type Context struct {
	// CheckHi enables the second, upper sphere.
	CheckHi  bool
	RadiusLo int32
	RadiusHi int32

	PositionLo    gamemath.Vec3
	PositionHi    gamemath.Vec3
	NewPositionLo gamemath.Vec3
	NewPositionHi gamemath.Vec3

	Velocity  gamemath.Vec3
	Direction gamemath.Vec3 // Q16.16 unit vector
	Speed     int32

	TotalMoveDistance    int32
	MoveDistance         int32
	AdjustedMoveDistance int32

	SectorID int32

	Hit         Handle
	HitNormal   gamemath.Vec3 // Q16.16, points away from the obstruction
	Blocked     bool          // stopped by a closed portal
	IgnoredFace Handle
	Self        Handle

	// Box bounds both spheres over the whole attempted move.
	Box gamemath.BBox
}

// NewContext places the two spheres of a cylinder-shaped actor whose feet
// are at feet. The lower sphere rests one unit above the feet and the upper
// one sits one unit below the head; CheckHi is only set when they differ.
func NewContext(self Handle, feet gamemath.Vec3, radius, height, sector int32) *Context {
	c := &Context{
		Self:     self,
		RadiusLo: radius,
		RadiusHi: radius,
		SectorID: sector,
	}
	c.PositionLo = feet.Add(gamemath.V3(0, 0, radius+1))
	c.PositionHi = feet.Add(gamemath.V3(0, 0, gamemath.Max32(radius+1, height-radius-1)))
	c.CheckHi = c.PositionHi.Z > c.PositionLo.Z
	c.NewPositionLo = c.PositionLo
	c.NewPositionHi = c.PositionHi
	return c
}

// Feet returns the feet position the lower sphere was derived from.
func (c *Context) Feet() gamemath.Vec3 {
	return c.PositionLo.Sub(gamemath.V3(0, 0, c.RadiusLo+1))
}

// SetTarget asks for the feet to end up at target.
func (c *Context) SetTarget(target gamemath.Vec3) {
	delta := target.Sub(c.Feet())
	c.NewPositionLo = c.PositionLo.Add(delta)
	c.NewPositionHi = c.PositionHi.Add(delta)
}

// Prepare derives velocity, direction and the move budget from the desired
// positions and resets the per-pass results. dt is Q16.16 and scales the
// displacement, rounded to whole units per axis; One attempts all of it.
// MoveDistance is the displacement's length rounded up, so any touch inside
// the move narrows it. Returns true when there is nothing to move, in which
// case no queries should be issued.
func (c *Context) Prepare(dt int64) (stationary bool) {
	c.Velocity = c.NewPositionLo.Sub(c.PositionLo)
	c.Speed = c.Velocity.Length()
	c.Hit = NoHandle
	c.HitNormal = gamemath.Vec3{}
	c.Blocked = false

	disp := c.Velocity
	if dt != gamemath.One {
		disp = c.Velocity.MulFix(dt)
	}
	if disp.IsZero() {
		c.Direction = gamemath.Vec3{}
		c.MoveDistance = 0
		c.AdjustedMoveDistance = 0
		c.NewPositionLo = c.PositionLo
		c.NewPositionHi = c.PositionHi
		return true
	}
	c.Direction = disp.Normalize()
	c.MoveDistance = disp.LengthCeil()
	c.AdjustedMoveDistance = c.MoveDistance

	c.NewPositionLo = c.PositionLo.Add(disp)
	c.NewPositionHi = c.PositionHi.Add(disp)
	c.Box = c.sweptBox()
	return false
}

func (c *Context) sweptBox() gamemath.BBox {
	lo := gamemath.BoundsOf(c.PositionLo, c.NewPositionLo).Grow(c.RadiusLo)
	hi := gamemath.BoundsOf(c.PositionHi, c.NewPositionHi).Grow(c.RadiusHi)
	return lo.Union(hi)
}

// narrow lowers the granted distance to d when d is closer than the current
// obstruction. It never increases the distance nor lets it go negative.
func (c *Context) narrow(d int32, hit Handle, normal gamemath.Vec3) bool {
	if d < 0 {
		d = 0
	}
	if d >= c.AdjustedMoveDistance {
		return false
	}
	c.AdjustedMoveDistance = d
	c.Hit = hit
	c.HitNormal = normal
	return true
}

// Advance moves both spheres by the granted distance. A full grant lands
// exactly on the prepared positions; a partial one steps along Direction,
// truncated toward the start. The budget is charged with the granted
// distance and the total with the length actually travelled, which is
// returned.
func (c *Context) Advance() int32 {
	d := gamemath.Clamp32(c.AdjustedMoveDistance, 0, c.MoveDistance)
	var step gamemath.Vec3
	switch {
	case d == 0:
	case d >= c.MoveDistance:
		step = c.NewPositionLo.Sub(c.PositionLo)
	default:
		step = c.Direction.Scale(d)
	}
	c.PositionLo = c.PositionLo.Add(step)
	c.PositionHi = c.PositionHi.Add(step)
	c.MoveDistance -= d

	moved := step.Length()
	c.TotalMoveDistance += moved
	return moved
}

// Slide redirects the remaining displacement along the obstruction by
// removing its component into HitNormal. It returns false when nothing is
// left to move.
func (c *Context) Slide() bool {
	remaining := c.NewPositionLo.Sub(c.PositionLo)
	if remaining.IsZero() {
		return false
	}
	n := c.HitNormal
	if into := n.Dot(remaining); into < 0 {
		remaining = tangent(remaining, n, into)
		if remaining.IsZero() {
			return false
		}
	}
	c.NewPositionLo = c.PositionLo.Add(remaining)
	c.NewPositionHi = c.PositionHi.Add(remaining)
	return true
}

// tangent removes from v its component along the Q16.16 unit normal n, where
// into = n·v is negative. Each axis rounds toward the side n points to, so
// the result never heads back into the surface. Less than a unit of tangent
// on every axis counts as none.
func tangent(v, n gamemath.Vec3, into int64) gamemath.Vec3 {
	var t [3]int64
	comps := [3]int32{v.X, v.Y, v.Z}
	normal := [3]int32{n.X, n.Y, n.Z}
	small := true
	for i := range t {
		t[i] = gamemath.FromInt(comps[i]) - gamemath.Mul(int64(normal[i]), into)
		if gamemath.Abs(t[i]) >= gamemath.One {
			small = false
		}
	}
	if small {
		return gamemath.Vec3{}
	}

	var out [3]int32
	for i := range t {
		switch {
		case normal[i] > 0:
			out[i] = gamemath.CeilToInt(t[i])
		case normal[i] < 0:
			out[i] = gamemath.FloorToInt(t[i])
		default:
			out[i] = gamemath.RoundToInt(t[i])
		}
	}
	r := gamemath.V3(out[0], out[1], out[2])

	// n·r must not be negative
	for i := 0; i < 3 && n.Dot(r) < 0; i++ {
		r = r.Add(n.Sign())
	}
	return r
}
