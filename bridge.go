package xangle

import (
	"fmt"

	"deedles.dev/xangle/tag"
	"gonum.org/v1/gonum/unit"
)

// FromRad returns the angle represented by r. No conversion is done.
func FromRad[F Float](r tag.Rad[F]) Angle[F] {
	return FromRadians(r.Radians)
}

// Rad returns the angle as a tag.Rad. No conversion is done.
func (a Angle[F]) Rad() tag.Rad[F] {
	return tag.Radians(a.rad)
}

// FromDeg returns the angle represented by d, converted as with
// FromDegrees.
func FromDeg[F Float](d tag.Deg[F]) Angle[F] {
	return FromDegrees(d.Degrees)
}

// Deg returns the angle as a tag.Deg, converted as with Degrees.
func (a Angle[F]) Deg() tag.Deg[F] {
	return tag.Degrees(a.Degrees())
}

// FromUnitAngle returns the angle represented by u. It is lossless for
// float64.
func FromUnitAngle[F Float](u unit.Angle) Angle[F] {
	return FromRadians(F(u))
}

// UnitAngle returns the angle as a gonum unit.Angle.
func (a Angle[F]) UnitAngle() unit.Angle {
	return unit.Angle(a.rad)
}

// Unit implements unit.Uniter, allowing an Angle to take part in
// gonum's dimensional arithmetic.
func (a Angle[F]) Unit() *unit.Unit {
	return a.UnitAngle().Unit()
}

// FromUniter converts a dimensioned gonum value into an angle. It
// returns an error if u does not have the dimensions of an angle.
func FromUniter[F Float](u unit.Uniter) (Angle[F], error) {
	var ua unit.Angle
	err := ua.From(u)
	if err != nil {
		return Angle[F]{}, fmt.Errorf("convert %v: %w", u.Unit(), err)
	}
	return FromUnitAngle[F](ua), nil
}
