// Package tag provides scalar wrappers that record the unit of an
// angle in their type. They are the loose, unit-tagged form of an
// angle that linear algebra code tends to pass around, and they
// convert to and from xangle.Angle.
package tag

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rad is an angle in radians.
type Rad[F constraints.Float] struct {
	Radians F
}

// Radians returns r as a Rad.
func Radians[F constraints.Float](r F) Rad[F] {
	return Rad[F]{Radians: r}
}

func (r Rad[F]) Add(other Rad[F]) Rad[F] {
	return Rad[F]{Radians: r.Radians + other.Radians}
}

func (r Rad[F]) Sub(other Rad[F]) Rad[F] {
	return Rad[F]{Radians: r.Radians - other.Radians}
}

func (r Rad[F]) String() string {
	return fmt.Sprintf("%v rad", r.Radians)
}

// Deg is an angle in degrees.
type Deg[F constraints.Float] struct {
	Degrees F
}

// Degrees returns d as a Deg.
func Degrees[F constraints.Float](d F) Deg[F] {
	return Deg[F]{Degrees: d}
}

func (d Deg[F]) Add(other Deg[F]) Deg[F] {
	return Deg[F]{Degrees: d.Degrees + other.Degrees}
}

func (d Deg[F]) Sub(other Deg[F]) Deg[F] {
	return Deg[F]{Degrees: d.Degrees - other.Degrees}
}

func (d Deg[F]) String() string {
	return fmt.Sprintf("%v°", d.Degrees)
}
