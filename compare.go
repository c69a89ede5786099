package xangle

import "deedles.dev/xangle/approx"

var (
	_ approx.Equaler[Angle32, float32] = Angle32{}
	_ approx.Equaler[Angle64, float64] = Angle64{}
)

// The ordering methods compare the stored radian values directly, so
// any comparison involving NaN is false. No normalization is done
// first, so 2π is not Equal to 0.

func (a Angle[F]) Equal(other Angle[F]) bool { return a.rad == other.rad }
func (a Angle[F]) Less(other Angle[F]) bool { return a.rad < other.rad }
func (a Angle[F]) LessOrEqual(other Angle[F]) bool { return a.rad <= other.rad }
func (a Angle[F]) Greater(other Angle[F]) bool { return a.rad > other.rad }
func (a Angle[F]) GreaterOrEqual(other Angle[F]) bool { return a.rad >= other.rad }

// PartialCompare returns -1, 0 or 1 depending on whether a is less
// than, equal to or greater than other. If the two are unordered
// because either is NaN, ok is false.
func (a Angle[F]) PartialCompare(other Angle[F]) (c int, ok bool) {
	switch {
	case a.rad < other.rad:
		return -1, true
	case a.rad > other.rad:
		return 1, true
	case a.rad == other.rad:
		return 0, true
	default:
		return 0, false
	}
}

// RelativeEq reports whether the radian values of a and other differ
// by no more than epsilon or by no more than maxRelative relative to
// the larger of the two. See approx.RelativeEq.
//
// Angles are compared as stored. To treat angles a full turn apart as
// equal, normalize both first.
func (a Angle[F]) RelativeEq(other Angle[F], epsilon, maxRelative F) bool {
	return approx.RelativeEq(a.rad, other.rad, epsilon, maxRelative)
}

// UlpsEq reports whether the radian values of a and other differ by no
// more than epsilon or are no more than maxUlps representable values
// apart. See approx.UlpsEq.
func (a Angle[F]) UlpsEq(other Angle[F], epsilon F, maxUlps uint) bool {
	return approx.UlpsEq(a.rad, other.rad, epsilon, maxUlps)
}

// ApproxEq is RelativeEq with the default tolerances from the approx
// package.
func (a Angle[F]) ApproxEq(other Angle[F]) bool {
	return a.RelativeEq(other, approx.DefaultEpsilon[F](), approx.DefaultMaxRelative[F]())
}
