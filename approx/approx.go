// Package approx provides approximate equality comparisons for
// floating-point values of either precision.
//
// Two comparison modes are supported. RelativeEq accepts values whose
// absolute difference is within an epsilon or whose difference relative
// to the larger of the two is within a maximum relative difference.
// UlpsEq accepts values whose absolute difference is within an epsilon
// or which are at most some number of representable steps apart.
package approx

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Float is a constraint for the types that the functions in this
// package can compare.
type Float interface {
	constraints.Float
}

// DefaultMaxUlps is the default maximum distance in units in the last
// place used by callers that do not provide their own.
const DefaultMaxUlps uint = 4

// Equaler is implemented by types that can be compared approximately
// in both supported modes.
type Equaler[T any, F Float] interface {
	RelativeEq(other T, epsilon, maxRelative F) bool
	UlpsEq(other T, epsilon F, maxUlps uint) bool
}

// Bits returns the width of F in bits, either 32 or 64.
func Bits[F Float]() int {
	var f F
	return int(unsafe.Sizeof(f)) * 8
}

// Epsilon returns the machine epsilon of F, the difference between 1
// and the next representable value.
func Epsilon[F Float]() F {
	if Bits[F]() == 32 {
		return 0x1p-23
	}
	return 0x1p-52
}

// DefaultEpsilon returns the absolute tolerance used when none is
// provided.
func DefaultEpsilon[F Float]() F {
	return Epsilon[F]()
}

// DefaultMaxRelative returns the relative tolerance used when none is
// provided.
func DefaultMaxRelative[F Float]() F {
	return Epsilon[F]()
}

// RelativeEq reports whether a and b differ by no more than epsilon or
// by no more than maxRelative times the larger of their magnitudes.
// Infinities are only equal to themselves and NaN is never equal to
// anything.
func RelativeEq[F Float](a, b, epsilon, maxRelative F) bool {
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), float64(epsilon), float64(maxRelative))
}

// UlpsEq reports whether a and b differ by no more than epsilon or are
// no more than maxUlps representable values of F apart.
func UlpsEq[F Float](a, b, epsilon F, maxUlps uint) bool {
	if scalar.EqualWithinAbs(float64(a), float64(b), float64(epsilon)) {
		return true
	}

	if Bits[F]() == 32 {
		return equalWithinULP32(float32(a), float32(b), maxUlps)
	}
	return scalar.EqualWithinULP(float64(a), float64(b), maxUlps)
}

// Eq reports whether a and b are relatively equal using the default
// tolerances.
func Eq[F Float](a, b F) bool {
	return RelativeEq(a, b, DefaultEpsilon[F](), DefaultMaxRelative[F]())
}

// equalWithinULP32 is the single precision counterpart of
// scalar.EqualWithinULP. Distances must be counted in float32 steps, so
// the values cannot be widened first.
func equalWithinULP32(a, b float32, ulps uint) bool {
	if a == b {
		return true
	}
	if a != a || b != b {
		return false
	}

	x, y := math.Float32bits(a), math.Float32bits(b)
	const sign = 1 << 31
	if x&sign != y&sign {
		return uint64(x&^sign)+uint64(y&^sign) <= uint64(ulps)
	}
	if x < y {
		x, y = y, x
	}
	return uint64(x-y) <= uint64(ulps)
}
