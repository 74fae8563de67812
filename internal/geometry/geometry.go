// Package geometry provides the planar primitives shared by all hull
// algorithms: points, the orientation test, and squared distances.
package geometry

import "sort"

// Epsilon is the tolerance for classifying a near-zero cross product as
// collinear. Near-ties at this boundary are resolved deterministically
// but may differ from the mathematically exact classification.
const Epsilon = 1e-9

// Point is an immutable 2D point. Equality is by value.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Orientation is the turning direction of an ordered point triple.
type Orientation int

const (
	Collinear Orientation = iota
	CounterClockwise
	Clockwise
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "counter-clockwise"
	case Clockwise:
		return "clockwise"
	default:
		return "collinear"
	}
}

// Cross returns the z-component of the cross product (a-o) x (b-o).
// Positive means the triple o, a, b turns counter-clockwise.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Orient classifies the turn o -> a -> b. Cross products within
// Epsilon of zero are reported as Collinear.
func Orient(o, a, b Point) Orientation {
	c := Cross(o, a, b)
	switch {
	case c > Epsilon:
		return CounterClockwise
	case c < -Epsilon:
		return Clockwise
	default:
		return Collinear
	}
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Avoiding the square root keeps comparisons exact on integral inputs.
func SquaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Less orders points lexicographically by X, then Y.
func Less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// SortByXY sorts points in place by X, tie-broken by Y.
func SortByXY(pts []Point) {
	sort.Slice(pts, func(i, j int) bool { return Less(pts[i], pts[j]) })
}

// Clone returns a fresh copy of pts. The result is never nil.
func Clone(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// Distinct returns a sorted copy of pts with exact duplicates removed.
// The input slice is left untouched.
func Distinct(pts []Point) []Point {
	if len(pts) == 0 {
		return []Point{}
	}
	p := Clone(pts)
	SortByXY(p)
	q := p[:1]
	for _, pt := range p[1:] {
		if pt != q[len(q)-1] {
			q = append(q, pt)
		}
	}
	return q
}

// SignedArea returns twice the signed area of the polygon described by
// pts via the shoelace formula. Positive for counter-clockwise rings.
func SignedArea(pts []Point) float64 {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area
}
