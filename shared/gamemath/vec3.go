package gamemath

// Vec3 is an integer 3D vector. World positions use plain integer units;
// normals and directions use the same type holding Q16.16 components, so a
// unit vector has length One.
type Vec3 struct {
	X, Y, Z int32
}

func V3(x, y, z int32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) Neg() Vec3 { return Vec3{-a.X, -a.Y, -a.Z} }

func (a Vec3) IsZero() bool { return a.X == 0 && a.Y == 0 && a.Z == 0 }

// Dot is the raw integer dot product. With a Q16.16 normal and a world
// position the result is a Q16.16 distance.
func (a Vec3) Dot(b Vec3) int64 {
	return int64(a.X)*int64(b.X) + int64(a.Y)*int64(b.Y) + int64(a.Z)*int64(b.Z)
}

// FixDot is the dot product of two Q16.16 vectors, in Q16.16.
func (a Vec3) FixDot(b Vec3) int64 {
	return a.Dot(b) >> Shift
}

func (a Vec3) LengthSq() uint64 {
	x, y, z := int64(a.X), int64(a.Y), int64(a.Z)
	return uint64(x*x) + uint64(y*y) + uint64(z*z)
}

// Length is the integer length, rounded down.
func (a Vec3) Length() int32 {
	return Sat32(int64(SqrtU(a.LengthSq())))
}

// LengthCeil is the integer length, rounded up.
func (a Vec3) LengthCeil() int32 {
	sq := a.LengthSq()
	l := SqrtU(sq)
	if l*l < sq {
		l++
	}
	return Sat32(int64(l))
}

// Normalize returns the Q16.16 unit vector pointing along a, or the zero
// vector when a is zero.
func (a Vec3) Normalize() Vec3 {
	sq := a.LengthSq()
	if sq == 0 {
		return Vec3{}
	}
	// length in Q16.16
	var l int64
	if sq < 1<<31 {
		l = int64(SqrtU(sq << 32))
	} else {
		l = int64(SqrtU(sq)) << Shift
	}
	return Vec3{
		Sat32(MulDiv(int64(a.X), One*One, l)),
		Sat32(MulDiv(int64(a.Y), One*One, l)),
		Sat32(MulDiv(int64(a.Z), One*One, l)),
	}
}

// Scale multiplies every component of a Q16.16 vector by an integer length,
// yielding an integer vector truncated toward zero.
func (a Vec3) Scale(length int32) Vec3 {
	return Vec3{
		ToInt(int64(a.X) * int64(length)),
		ToInt(int64(a.Y) * int64(length)),
		ToInt(int64(a.Z) * int64(length)),
	}
}

// Advance moves a by distance units along the Q16.16 direction dir.
func (a Vec3) Advance(dir Vec3, distance int32) Vec3 {
	return a.Add(dir.Scale(distance))
}

// MulFix multiplies an integer vector by the Q16.16 factor f, rounding each
// component to the nearest integer (halves away from zero).
func (a Vec3) MulFix(f int64) Vec3 {
	return Vec3{
		RoundToInt(Mul(FromInt(a.X), f)),
		RoundToInt(Mul(FromInt(a.Y), f)),
		RoundToInt(Mul(FromInt(a.Z), f)),
	}
}

// Sign returns -1, 0 or 1 per component.
func (a Vec3) Sign() Vec3 {
	return Vec3{sign32(a.X), sign32(a.Y), sign32(a.Z)}
}

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// XY drops the vertical component.
func (a Vec3) XY() Vec3 { return Vec3{X: a.X, Y: a.Y} }
