package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDistribution(t *testing.T) {
	for _, d := range Distributions() {
		parsed, err := ParseDistribution(string(d))
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	_, err := ParseDistribution("poisson")
	require.ErrorIs(t, err, ErrUnknownDistribution)
}

func TestPoints_Reproducible(t *testing.T) {
	for _, d := range Distributions() {
		a, err := New(42).Points(d, 200)
		require.NoError(t, err)
		b, err := New(42).Points(d, 200)
		require.NoError(t, err)
		require.Equal(t, a, b, "distribution %s not reproducible", d)

		c, err := New(43).Points(d, 200)
		require.NoError(t, err)
		require.NotEqual(t, a, c, "distribution %s ignores the seed", d)
	}
}

func TestPoints_Count(t *testing.T) {
	g := New(7)
	for _, n := range []int{0, 1, 17, 500} {
		pts, err := g.Points(Uniform, n)
		require.NoError(t, err)
		require.Len(t, pts, n)
	}

	_, err := g.Points(Uniform, -1)
	require.Error(t, err)
}

func TestPoints_UniformRange(t *testing.T) {
	pts, err := New(1).Points(Uniform, 1000)
	require.NoError(t, err)
	for _, p := range pts {
		require.GreaterOrEqual(t, p.X, 0.0)
		require.Less(t, p.X, 1.0)
		require.GreaterOrEqual(t, p.Y, 0.0)
		require.Less(t, p.Y, 1.0)
	}
}

func TestPoints_CircleOnUnitRadius(t *testing.T) {
	pts, err := New(1).Points(Circle, 500)
	require.NoError(t, err)
	for _, p := range pts {
		r := math.Hypot(p.X, p.Y)
		require.InDelta(t, 1.0, r, 1e-9)
	}
}

func TestPoints_ClusterTighterThanGaussian(t *testing.T) {
	cluster, err := New(5).Points(Cluster, 1000)
	require.NoError(t, err)
	gauss, err := New(5).Points(Gaussian, 1000)
	require.NoError(t, err)

	var clusterMax, gaussMax float64
	for _, p := range cluster {
		clusterMax = math.Max(clusterMax, math.Hypot(p.X, p.Y))
	}
	for _, p := range gauss {
		gaussMax = math.Max(gaussMax, math.Hypot(p.X, p.Y))
	}
	require.Less(t, clusterMax, gaussMax)
}

func TestPoints_UnknownDistribution(t *testing.T) {
	_, err := New(1).Points("triangular", 10)
	require.ErrorIs(t, err, ErrUnknownDistribution)
}
