package hull

import (
	"sort"

	"github.com/hullbench/hullbench/internal/geometry"
)

// GrahamScan computes the convex hull by sorting points by polar angle
// around a pivot and sweeping them through a stack. O(n log n),
// dominated by the angular sort.
func GrahamScan(pts []geometry.Point) ([]geometry.Point, error) {
	return grahamScan(pts, nil)
}

func grahamScan(points []geometry.Point, tr *trace) ([]geometry.Point, error) {
	pts := prepare(points)
	if len(pts) < 3 {
		return pts, nil
	}
	if allCollinear(pts) {
		return collinearHull(pts), nil
	}

	// Pivot: lowest y, tie-broken by lowest x.
	pivot := pts[0]
	for _, p := range pts[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	rest := make([]geometry.Point, 0, len(pts)-1)
	for _, p := range pts {
		if p != pivot {
			rest = append(rest, p)
		}
	}

	// Counter-clockwise angular order around the pivot via the exact
	// cross-product sign. Same-ray ties are broken closer-first:
	// combined with the non-CCW pop below, interior collinear points
	// are always popped before the farther point on the same ray
	// lands on the stack. Near-collinear turns survive the scan and
	// are excluded by the shared filter afterwards.
	sort.Slice(rest, func(i, j int) bool {
		c := geometry.Cross(pivot, rest[i], rest[j])
		if c == 0 {
			return geometry.SquaredDistance(pivot, rest[i]) < geometry.SquaredDistance(pivot, rest[j])
		}
		return c > 0
	})

	stack := make([]geometry.Point, 0, len(pts))
	stack = append(stack, pivot)
	tr.record(stack)
	for _, p := range rest {
		for len(stack) >= 2 &&
			geometry.Cross(stack[len(stack)-2], stack[len(stack)-1], p) <= 0 {
			stack = stack[:len(stack)-1]
			tr.record(stack)
		}
		stack = append(stack, p)
		tr.record(stack)
	}
	return finish(stack, tr), nil
}
