package collision

import "github.com/automoto/collide/shared/gamemath"

// FaceOptions filters which faces take part in a test.
type FaceOptions struct {
	IgnoreEthereal bool
	Ignored        Handle
}

func (o FaceOptions) skips(h Handle, flags FaceFlags) bool {
	if o.IgnoreEthereal && flags.Has(FaceEthereal) {
		return true
	}
	return !o.Ignored.IsNone() && o.Ignored == h
}

// CollideIndoorWithFace sweeps a sphere of radius centred at pos along the
// Q16.16 direction dir and returns the distance it can travel before its
// surface touches the face.
func CollideIndoorWithFace(face *Face, pos gamemath.Vec3, radius int32, dir gamemath.Vec3, opts FaceOptions) (int32, bool) {
	if face == nil || opts.skips(face.Handle(), face.Flags) {
		return 0, false
	}
	return collideSphere(indoorPolygon{face}, pos, radius, dir)
}

// CollideOutdoorWithFace is the outdoor model variant of CollideIndoorWithFace.
func CollideOutdoorWithFace(model *Model, face int32, pos gamemath.Vec3, radius int32, dir gamemath.Vec3, opts FaceOptions) (int32, bool) {
	f := modelFace(model, face)
	if f == nil || opts.skips(ModelFaceHandle(model.Index, face), f.Flags) {
		return 0, false
	}
	return collideSphere(newOutdoorPolygon(model, f), pos, radius, dir)
}

// CollidePointIndoorWithFace casts a ray from pos along dir. On a hit within
// best it returns the hit distance; otherwise best is returned unchanged.
func CollidePointIndoorWithFace(face *Face, pos, dir gamemath.Vec3, best int32) (int32, bool) {
	if face == nil {
		return best, false
	}
	return collidePoint(indoorPolygon{face}, pos, dir, best)
}

func CollidePointOutdoorWithFace(model *Model, face int32, pos, dir gamemath.Vec3, best int32) (int32, bool) {
	f := modelFace(model, face)
	if f == nil {
		return best, false
	}
	return collidePoint(newOutdoorPolygon(model, f), pos, dir, best)
}

func modelFace(model *Model, face int32) *ModelFace {
	if model == nil || face < 0 || int(face) >= len(model.Faces) {
		return nil
	}
	return &model.Faces[face]
}

func collideSphere(poly polygon, pos gamemath.Vec3, radius int32, dir gamemath.Vec3) (int32, bool) {
	if dir.IsZero() || radius < 0 {
		return 0, false
	}
	pl := poly.plane()
	d := pl.Distance(pos)
	cos := pl.Normal.FixDot(dir)
	side := int32(1)
	if d < 0 {
		d, cos, side = -d, -cos, -1
	}
	if cos >= 0 {
		return 0, false
	}

	r := gamemath.FromInt(radius)
	var t int64
	reach := r
	if d <= r {
		// already overlapping: touch at the foot of the perpendicular
		reach = d
	} else {
		t = gamemath.Div(d-r, -cos)
	}

	dist := gamemath.Sat32(t >> gamemath.Shift)
	center := pos.Advance(dir, dist)
	touch := center.Sub(pl.Normal.Scale(side * gamemath.ToInt(reach)))
	if !insideProjected(poly, touch) {
		return 0, false
	}
	return dist, true
}

func collidePoint(poly polygon, pos, dir gamemath.Vec3, best int32) (int32, bool) {
	if dir.IsZero() {
		return best, false
	}
	pl := poly.plane()
	d := pl.Distance(pos)
	cos := pl.Normal.FixDot(dir)
	if d < 0 {
		d, cos = -d, -cos
	}
	if cos >= 0 {
		return best, false
	}

	dist := gamemath.Sat32(gamemath.Div(d, -cos) >> gamemath.Shift)
	if dist > best {
		return best, false
	}
	if !insideProjected(poly, pos.Advance(dir, dist)) {
		return best, false
	}
	return dist, true
}
