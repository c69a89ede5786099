package xangle

import "math"

// NormalizeAroundZero wraps the angle into the range [-π, π), half a
// cycle in each direction.
func (a *Angle[F]) NormalizeAroundZero() {
	*a = a.AroundZero()
}

// NormalizeAsPositive wraps the angle into the range [0, 2π), a full
// positive cycle.
func (a *Angle[F]) NormalizeAsPositive() {
	*a = a.AsPositive()
}

// AroundZero returns a copy of the angle normalized to [-π, π).
func (a Angle[F]) AroundZero() Angle[F] {
	pi, tau := pi[F](), tau[F]()

	// Both adjustments are exact because r is within a factor of two
	// of tau, so an angle already in range is returned bit for bit.
	r := mod(a.rad, tau)
	switch {
	case r >= pi:
		r -= tau
	case r < -pi:
		r += tau
	}
	return Angle[F]{rad: r}
}

// AsPositive returns a copy of the angle normalized to [0, 2π).
func (a Angle[F]) AsPositive() Angle[F] {
	tau := tau[F]()

	r := mod(a.rad, tau)
	if r < 0 {
		r += tau
		if r >= tau {
			// A tiny negative remainder rounds up to a full cycle.
			r = 0
		}
	}
	return Angle[F]{rad: r}
}

// DifferenceTo returns the shortest signed angle from other to a,
// normalized to [-π, π).
func (a Angle[F]) DifferenceTo(other Angle[F]) Angle[F] {
	return a.Sub(other).AroundZero()
}

// mod is the truncated remainder of x / y, with the sign of x. It is
// exact, so widening F to float64 and back loses nothing.
func mod[F Float](x, y F) F {
	return F(math.Mod(float64(x), float64(y)))
}
