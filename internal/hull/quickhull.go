package hull

import (
	"fmt"
	"math"

	"github.com/hullbench/hullbench/internal/geometry"
)

// QuickHull computes the convex hull by divide and conquer: split on
// the two x-extremes, then recursively keep the point farthest from
// each splitting edge and discard everything inside the triangle it
// forms. Expected O(n log n), worst case O(n^2).
func QuickHull(pts []geometry.Point) ([]geometry.Point, error) {
	return quickHull(pts, nil)
}

func quickHull(points []geometry.Point, tr *trace) ([]geometry.Point, error) {
	pts := prepare(points)
	if len(pts) < 3 {
		return pts, nil
	}
	if allCollinear(pts) {
		return collinearHull(pts), nil
	}

	// Extremes of the (x, y) sort: min-x and max-x endpoints.
	a := pts[0]
	b := pts[len(pts)-1]

	// Exact sign partition; the shared filter excludes near-collinear
	// boundary vertices afterwards, with the same tolerance the other
	// algorithms see.
	var below, above []geometry.Point
	for _, p := range pts {
		c := geometry.Cross(a, b, p)
		switch {
		case c < 0:
			below = append(below, p)
		case c > 0:
			above = append(above, p)
		}
	}

	// Walking a -> below chain -> b -> above chain yields CCW order.
	hull := make([]geometry.Point, 0, len(pts))
	hull = append(hull, a)
	lower, err := quickHullSide(a, b, below, len(pts), tr)
	if err != nil {
		return nil, err
	}
	hull = append(hull, lower...)
	hull = append(hull, b)
	tr.record(hull)
	upper, err := quickHullSide(b, a, above, len(pts), tr)
	if err != nil {
		return nil, err
	}
	hull = append(hull, upper...)
	tr.record(hull)
	return finish(hull, tr), nil
}

// quickHullSide returns the hull vertices strictly between p1 and p2,
// in traversal order, given the points lying right of the directed
// edge p1->p2. The depth budget bounds recursion at the number of
// distinct input points; running out means the strictly-outside
// partition failed to shrink.
func quickHullSide(p1, p2 geometry.Point, pts []geometry.Point, depth int, tr *trace) ([]geometry.Point, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	if depth <= 0 {
		return nil, fmt.Errorf("quickhull: recursion depth exhausted: %w", ErrInternalInconsistency)
	}

	// Farthest point from the edge; first found wins on exact ties.
	far := pts[0]
	best := math.Abs(geometry.Cross(p1, p2, pts[0]))
	for _, p := range pts[1:] {
		if d := math.Abs(geometry.Cross(p1, p2, p)); d > best {
			best = d
			far = p
		}
	}

	// Points inside the triangle (p1, far, p2) are discarded; only the
	// strictly-outside remainders recurse.
	var outer1, outer2 []geometry.Point
	for _, p := range pts {
		switch {
		case geometry.Cross(p1, far, p) < 0:
			outer1 = append(outer1, p)
		case geometry.Cross(far, p2, p) < 0:
			outer2 = append(outer2, p)
		}
	}

	left, err := quickHullSide(p1, far, outer1, depth-1, tr)
	if err != nil {
		return nil, err
	}
	right, err := quickHullSide(far, p2, outer2, depth-1, tr)
	if err != nil {
		return nil, err
	}

	out := make([]geometry.Point, 0, len(left)+len(right)+1)
	out = append(out, left...)
	out = append(out, far)
	out = append(out, right...)
	tr.record(out)
	return out, nil
}
