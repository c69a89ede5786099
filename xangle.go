// Package xangle provides a planar angle type that is generic over the
// precision of its underlying floating-point value.
//
// An Angle always stores radians. Functions that accept or return
// plain numbers are explicit about which unit those numbers are in,
// whether radians, degrees or cycles, where one cycle is a full turn.
// Angles are never normalized implicitly; see NormalizeAroundZero and
// NormalizeAsPositive.
package xangle

import (
	"fmt"
	"math"

	"deedles.dev/xangle/approx"
	"golang.org/x/exp/constraints"
)

// Float is a constraint for the types that an Angle can be built on.
type Float interface {
	constraints.Float
}

// Angle is an angle stored in radians.
//
// The zero value is an angle of zero radians.
type Angle[F Float] struct {
	rad F
}

type (
	Angle32 = Angle[float32]
	Angle64 = Angle[float64]
)

func pi[F Float]() F {
	return F(math.Pi)
}

func tau[F Float]() F {
	return 2 * pi[F]()
}

// FromRadians returns an angle of r radians.
func FromRadians[F Float](r F) Angle[F] {
	return Angle[F]{rad: r}
}

// FromDegrees returns an angle of d degrees.
func FromDegrees[F Float](d F) Angle[F] {
	return Angle[F]{rad: pi[F]() * d / 180}
}

// FromCycles returns an angle of c cycles. A cycle is a full circle.
func FromCycles[F Float](c F) Angle[F] {
	return Angle[F]{rad: tau[F]() * c}
}

// Radians returns the value of the angle in radians. It is exactly the
// value that the angle was created with if it was created with
// FromRadians.
func (a Angle[F]) Radians() F {
	return a.rad
}

// Degrees returns the value of the angle in degrees.
func (a Angle[F]) Degrees() F {
	return a.rad * 180 / pi[F]()
}

// Cycles returns the value of the angle as a number of full circles.
func (a Angle[F]) Cycles() F {
	return a.rad / tau[F]()
}

// Zero returns the additive identity, an angle of zero radians.
func Zero[F Float]() Angle[F] {
	return Angle[F]{}
}

// One returns the multiplicative identity. It is an angle of one
// radian, not a full turn.
func One[F Float]() Angle[F] {
	return Angle[F]{rad: 1}
}

func (a Angle[F]) IsZero() bool {
	return a.rad == 0
}

func (a Angle[F]) IsOne() bool {
	return a.rad == 1
}

// MinAngle returns the most negative finite angle representable by F.
func MinAngle[F Float]() Angle[F] {
	return Angle[F]{rad: -maxFloat[F]()}
}

// MaxAngle returns the most positive finite angle representable by F.
func MaxAngle[F Float]() Angle[F] {
	return Angle[F]{rad: maxFloat[F]()}
}

func maxFloat[F Float]() F {
	if approx.Bits[F]() == 32 {
		return math.MaxFloat32
	}

	m := math.MaxFloat64
	return F(m)
}

func (a Angle[F]) String() string {
	return fmt.Sprintf("%v rad", a.rad)
}
