package xangle_test

import (
	"math"
	"testing"

	"deedles.dev/xangle"
	"deedles.dev/xangle/approx"
	"github.com/stretchr/testify/require"
)

func TestOrdering(t *testing.T) {
	small := xangle.FromDegrees(10.0)
	large := xangle.FromDegrees(20.0)

	require.True(t, small.Less(large))
	require.True(t, small.LessOrEqual(large))
	require.True(t, small.LessOrEqual(small))
	require.True(t, large.Greater(small))
	require.True(t, large.GreaterOrEqual(large))
	require.True(t, small.Equal(xangle.FromDegrees(10.0)))
	require.False(t, xangle.FromCycles(1.0).Equal(xangle.Zero[float64]()))
}

func TestPartialCompare(t *testing.T) {
	nan := xangle.FromRadians(math.NaN())
	one := xangle.FromRadians(1.0)
	two := xangle.FromRadians(2.0)

	tests := []struct {
		name string
		a, b xangle.Angle64
		c    int
		ok   bool
	}{
		{"Less", one, two, -1, true},
		{"Greater", two, one, 1, true},
		{"Equal", one, one, 0, true},
		{"NaNLeft", nan, one, 0, false},
		{"NaNRight", one, nan, 0, false},
		{"NaNBoth", nan, nan, 0, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, ok := test.a.PartialCompare(test.b)
			require.Equal(t, test.c, c)
			require.Equal(t, test.ok, ok)
		})
	}

	require.False(t, nan.Equal(nan))
	require.False(t, nan.Less(one))
	require.False(t, nan.GreaterOrEqual(one))
}

func TestApproxEq(t *testing.T) {
	a := xangle.FromRadians(1.0)
	b := xangle.FromRadians(math.Nextafter(1, 2))
	c := xangle.FromRadians(1.001)

	require.True(t, a.ApproxEq(b))
	require.False(t, a.ApproxEq(c))
	require.True(t, a.RelativeEq(c, 0, 1e-2))
	require.True(t, a.UlpsEq(c, 1e-2, 0))
	require.True(t, a.UlpsEq(b, 0, 1))
	require.False(t, a.UlpsEq(c, 0, approx.DefaultMaxUlps))
	require.False(t, xangle.FromRadians(math.NaN()).ApproxEq(xangle.FromRadians(math.NaN())))
}

func equaler[T approx.Equaler[T, F], F approx.Float](a, b T) bool {
	return a.RelativeEq(b, approx.DefaultEpsilon[F](), approx.DefaultMaxRelative[F]()) &&
		a.UlpsEq(b, approx.DefaultEpsilon[F](), approx.DefaultMaxUlps)
}

func TestEqualer(t *testing.T) {
	require.True(t, equaler[xangle.Angle32, float32](
		xangle.FromRadians[float32](math.Pi),
		xangle.FromCycles[float32](0.5),
	))
	require.False(t, equaler[xangle.Angle64, float64](
		xangle.FromRadians(math.Pi),
		xangle.FromCycles(0.25),
	))
}
