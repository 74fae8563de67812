package hull

import "github.com/hullbench/hullbench/internal/geometry"

// MonotoneChain computes the convex hull with Andrew's algorithm:
// sort by x (tie y), build the lower and upper chains, and stitch
// them together. O(n log n), sort-dominated; no recursion.
func MonotoneChain(pts []geometry.Point) ([]geometry.Point, error) {
	return monotoneChain(pts, nil)
}

func monotoneChain(points []geometry.Point, tr *trace) ([]geometry.Point, error) {
	pts := prepare(points)
	if len(pts) < 3 {
		return pts, nil
	}
	if allCollinear(pts) {
		return collinearHull(pts), nil
	}

	// Exact cross-product pops; near-collinear turns are excluded by
	// the shared filter afterwards.
	lower := make([]geometry.Point, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 &&
			geometry.Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
			tr.record(lower)
		}
		lower = append(lower, p)
		tr.record(lower)
	}

	upper := make([]geometry.Point, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 &&
			geometry.Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
			tr.record(upper)
		}
		upper = append(upper, p)
		tr.record(upper)
	}

	// Each chain's last point duplicates the other chain's first.
	hull := make([]geometry.Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	tr.record(hull)
	return finish(hull, tr), nil
}
