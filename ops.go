package xangle

import (
	"iter"

	"deedles.dev/xiter"
)

// Add returns a + other.
func (a Angle[F]) Add(other Angle[F]) Angle[F] {
	return Angle[F]{rad: a.rad + other.rad}
}

// Sub returns a - other.
func (a Angle[F]) Sub(other Angle[F]) Angle[F] {
	return Angle[F]{rad: a.rad - other.rad}
}

// Mul multiplies the radian values of two angles. This is a plain
// scalar product and does not attempt to be dimensionally meaningful.
// To scale an angle, use MulScalar.
func (a Angle[F]) Mul(other Angle[F]) Angle[F] {
	return Angle[F]{rad: a.rad * other.rad}
}

// Div divides the radian value of a by that of other.
func (a Angle[F]) Div(other Angle[F]) Angle[F] {
	return Angle[F]{rad: a.rad / other.rad}
}

// Rem returns the remainder of dividing the radian value of a by that
// of other. The result has the sign of a, as with math.Mod.
func (a Angle[F]) Rem(other Angle[F]) Angle[F] {
	return Angle[F]{rad: mod(a.rad, other.rad)}
}

// MulScalar scales the angle by s.
func (a Angle[F]) MulScalar(s F) Angle[F] {
	return Angle[F]{rad: a.rad * s}
}

// DivScalar scales the angle by 1/s.
func (a Angle[F]) DivScalar(s F) Angle[F] {
	return Angle[F]{rad: a.rad / s}
}

// Neg returns -a.
func (a Angle[F]) Neg() Angle[F] {
	return Angle[F]{rad: -a.rad}
}

// The Assign variants set *a to the result of the corresponding
// operation.

func (a *Angle[F]) AddAssign(other Angle[F]) { *a = a.Add(other) }
func (a *Angle[F]) SubAssign(other Angle[F]) { *a = a.Sub(other) }
func (a *Angle[F]) MulAssign(other Angle[F]) { *a = a.Mul(other) }
func (a *Angle[F]) DivAssign(other Angle[F]) { *a = a.Div(other) }
func (a *Angle[F]) RemAssign(other Angle[F]) { *a = a.Rem(other) }
func (a *Angle[F]) MulScalarAssign(s F) { *a = a.MulScalar(s) }
func (a *Angle[F]) DivScalarAssign(s F) { *a = a.DivScalar(s) }

// Sum adds together all of the angles yielded by angles, starting from
// Zero. An empty sequence sums to Zero.
func Sum[F Float](angles iter.Seq[Angle[F]]) Angle[F] {
	return xiter.Reduce(angles, Zero[F](), Angle[F].Add)
}
