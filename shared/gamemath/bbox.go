package gamemath

import "math"

// BBox is an axis aligned box with inclusive bounds.
type BBox struct {
	Min, Max Vec3
}

// EmptyBox returns an inverted box that any Extend call replaces.
func EmptyBox() BBox {
	return BBox{
		Min: Vec3{math.MaxInt32, math.MaxInt32, math.MaxInt32},
		Max: Vec3{math.MinInt32, math.MinInt32, math.MinInt32},
	}
}

// BoundsOf returns the smallest box holding every point.
func BoundsOf(points ...Vec3) BBox {
	b := EmptyBox()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

func (b BBox) Extend(p Vec3) BBox {
	return BBox{
		Min: Vec3{Min32(b.Min.X, p.X), Min32(b.Min.Y, p.Y), Min32(b.Min.Z, p.Z)},
		Max: Vec3{Max32(b.Max.X, p.X), Max32(b.Max.Y, p.Y), Max32(b.Max.Z, p.Z)},
	}
}

func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Grow pads the box by r on every side.
func (b BBox) Grow(r int32) BBox {
	return BBox{
		Min: b.Min.Sub(Vec3{r, r, r}),
		Max: b.Max.Add(Vec3{r, r, r}),
	}
}

func (b BBox) Intersects(o BBox) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

func (b BBox) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

func (b BBox) Size() Vec3 { return b.Max.Sub(b.Min) }
