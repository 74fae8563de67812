package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrient(t *testing.T) {
	tests := []struct {
		name     string
		o, a, b  Point
		expected Orientation
	}{
		{
			name:     "counter-clockwise turn",
			o:        Point{0, 0},
			a:        Point{1, 0},
			b:        Point{1, 1},
			expected: CounterClockwise,
		},
		{
			name:     "clockwise turn",
			o:        Point{0, 0},
			a:        Point{0, 1},
			b:        Point{1, 1},
			expected: Clockwise,
		},
		{
			name:     "collinear horizontal",
			o:        Point{0, 0},
			a:        Point{1, 0},
			b:        Point{2, 0},
			expected: Collinear,
		},
		{
			name:     "collinear diagonal",
			o:        Point{0, 0},
			a:        Point{1, 1},
			b:        Point{3, 3},
			expected: Collinear,
		},
		{
			name:     "near-collinear within epsilon",
			o:        Point{0, 0},
			a:        Point{1, 0},
			b:        Point{2, 1e-12},
			expected: Collinear,
		},
		{
			name:     "coincident points",
			o:        Point{2, 2},
			a:        Point{2, 2},
			b:        Point{2, 2},
			expected: Collinear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Orient(tt.o, tt.a, tt.b))
		})
	}
}

func TestCross_Anticommutative(t *testing.T) {
	o := Point{1, 2}
	a := Point{4, -1}
	b := Point{-3, 5}
	require.InDelta(t, Cross(o, a, b), -Cross(o, b, a), 1e-12)
}

func TestSquaredDistance(t *testing.T) {
	require.Equal(t, 25.0, SquaredDistance(Point{0, 0}, Point{3, 4}))
	require.Equal(t, 0.0, SquaredDistance(Point{1, 1}, Point{1, 1}))
	require.Equal(t, 2.0, SquaredDistance(Point{0, 0}, Point{-1, 1}))
}

func TestDistinct(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		expected []Point
	}{
		{
			name:     "empty",
			points:   nil,
			expected: []Point{},
		},
		{
			name:     "duplicates removed",
			points:   []Point{{1, 1}, {0, 0}, {1, 1}, {0, 0}, {2, 2}},
			expected: []Point{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name:     "sorted by x then y",
			points:   []Point{{1, 2}, {1, 0}, {0, 5}},
			expected: []Point{{0, 5}, {1, 0}, {1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Distinct(tt.points))
		})
	}
}

func TestDistinct_DoesNotMutateInput(t *testing.T) {
	pts := []Point{{3, 0}, {1, 0}, {2, 0}}
	_ = Distinct(pts)
	require.Equal(t, []Point{{3, 0}, {1, 0}, {2, 0}}, pts)
}

func TestSignedArea(t *testing.T) {
	ccwSquare := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	require.InDelta(t, 32.0, SignedArea(ccwSquare), 1e-12)

	cwSquare := []Point{{0, 4}, {4, 4}, {4, 0}, {0, 0}}
	require.InDelta(t, -32.0, SignedArea(cwSquare), 1e-12)
}
