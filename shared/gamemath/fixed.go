// Package gamemath holds the deterministic Q16.16 fixed-point arithmetic and
// integer vector types shared by the collision engine, the server and replays.
// Nothing in here touches floating point.
package gamemath

import (
	"math"
	"math/bits"
)

// Q16.16 fixed point constants
const (
	Shift = 16
	One   = 1 << Shift
	Half  = 1 << (Shift - 1)
	Mask  = One - 1
)

func FromInt(i int32) int64 { return int64(i) << Shift }

// ToInt truncates toward zero.
func ToInt(f int64) int32 {
	if f < 0 {
		return -int32((-f) >> Shift)
	}
	return int32(f >> Shift)
}

// RoundToInt rounds to the nearest integer, halves away from zero.
func RoundToInt(f int64) int32 {
	if f < 0 {
		return -Sat32((-f + Half) >> Shift)
	}
	return Sat32((f + Half) >> Shift)
}

// FloorToInt rounds toward negative infinity.
func FloorToInt(f int64) int32 {
	return Sat32(f >> Shift)
}

// CeilToInt rounds toward positive infinity.
func CeilToInt(f int64) int32 {
	return Sat32((f + Mask) >> Shift)
}

// Mul multiplies two Q16.16 values with a 128-bit intermediate. The result is
// truncated toward zero and saturates at the int64 range.
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU(a), absU(b))
	if hi>>Shift != 0 {
		return saturate(negative)
	}
	r := hi<<(64-Shift) | lo>>Shift
	return signed(r, negative)
}

// Div divides two Q16.16 values. Division by zero yields 0.
func Div(a, b int64) int64 {
	if b == 0 || a == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := absU(a), absU(b)

	// a << 16 as 128-bit
	hi := ua >> (64 - Shift)
	lo := ua << Shift
	if hi >= ub {
		return saturate(negative)
	}
	quo, _ := bits.Div64(hi, lo, ub)
	return signed(quo, negative)
}

// MulDiv computes a*b/c with a 128-bit intermediate, truncating toward zero.
func MulDiv(a, b, c int64) int64 {
	if c == 0 || a == 0 || b == 0 {
		return 0
	}
	negative := ((a < 0) != (b < 0)) != (c < 0)
	hi, lo := bits.Mul64(absU(a), absU(b))
	uc := absU(c)
	if hi >= uc {
		return saturate(negative)
	}
	quo, _ := bits.Div64(hi, lo, uc)
	return signed(quo, negative)
}

// Sqrt is the integer square root, rounded down. Negative input yields 0.
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}
	return int64(SqrtU(uint64(x)))
}

func SqrtU(u uint64) uint64 {
	if u == 0 {
		return 0
	}
	var r uint64
	b := uint64(1) << ((bits.Len64(u) - 1) &^ 1)
	for b != 0 {
		if u >= r+b {
			u -= r + b
			r = r>>1 + b
		} else {
			r >>= 1
		}
		b >>= 2
	}
	return r
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func Abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Clamp32 restricts v to [lo, hi].
func Clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sat32 narrows an int64 to int32, saturating at the bounds.
func Sat32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func absU(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

func saturate(negative bool) int64 {
	if negative {
		return math.MinInt64
	}
	return math.MaxInt64
}

func signed(u uint64, negative bool) int64 {
	if u > math.MaxInt64 {
		return saturate(negative)
	}
	if negative {
		return -int64(u)
	}
	return int64(u)
}
