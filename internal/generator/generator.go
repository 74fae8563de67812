// Package generator produces reproducible random point sets for the
// benchmark harness. All randomness flows from an explicit seed; the
// same seed and parameters always yield the same points.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hullbench/hullbench/internal/geometry"
)

// Distribution selects how generated points are spread.
type Distribution string

const (
	// Uniform spreads points uniformly over the unit square.
	Uniform Distribution = "uniform"
	// Gaussian draws both coordinates from a standard normal.
	Gaussian Distribution = "gaussian"
	// Circle places points exactly on the unit circle, forcing the
	// hull size to equal the input size.
	Circle Distribution = "circle"
	// Cluster draws from a tight normal around the origin, keeping
	// the hull small relative to the input.
	Cluster Distribution = "cluster"
)

// ErrUnknownDistribution is returned for unrecognized distribution names.
var ErrUnknownDistribution = errors.New("unknown distribution")

// Distributions returns all supported distributions in a fixed order.
func Distributions() []Distribution {
	return []Distribution{Uniform, Gaussian, Circle, Cluster}
}

// ParseDistribution converts a string into a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	for _, d := range Distributions() {
		if s == string(d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDistribution, s)
}

// Generator produces point sets from a seeded PCG source.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator seeded deterministically from seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Points generates n points with the given distribution.
func (g *Generator) Points(dist Distribution, n int) ([]geometry.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("point count must be non-negative, got %d", n)
	}
	switch dist {
	case Uniform:
		return g.uniform(n), nil
	case Gaussian:
		return g.gaussian(n, 1.0), nil
	case Circle:
		return g.circle(n), nil
	case Cluster:
		return g.gaussian(n, 0.01), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, dist)
	}
}

func (g *Generator) uniform(n int) []geometry.Point {
	pts := make([]geometry.Point, n)
	for i := range pts {
		pts[i] = geometry.Point{X: g.rng.Float64(), Y: g.rng.Float64()}
	}
	return pts
}

func (g *Generator) gaussian(n int, stddev float64) []geometry.Point {
	pts := make([]geometry.Point, n)
	for i := range pts {
		pts[i] = geometry.Point{
			X: g.rng.NormFloat64() * stddev,
			Y: g.rng.NormFloat64() * stddev,
		}
	}
	return pts
}

func (g *Generator) circle(n int) []geometry.Point {
	pts := make([]geometry.Point, n)
	for i := range pts {
		theta := g.rng.Float64() * 2 * math.Pi
		pts[i] = geometry.Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return pts
}
