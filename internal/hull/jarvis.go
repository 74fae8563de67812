package hull

import (
	"fmt"

	"github.com/hullbench/hullbench/internal/geometry"
)

// JarvisMarch computes the convex hull by gift wrapping: starting at
// the leftmost point, repeatedly pick the vertex with every remaining
// point to its left. O(n*h); degrades when most points lie on the hull.
func JarvisMarch(pts []geometry.Point) ([]geometry.Point, error) {
	return jarvisMarch(pts, nil)
}

func jarvisMarch(points []geometry.Point, tr *trace) ([]geometry.Point, error) {
	pts := prepare(points)
	if len(pts) < 3 {
		return pts, nil
	}
	if allCollinear(pts) {
		return collinearHull(pts), nil
	}

	// Leftmost point, tie-broken by lowest y. First after the (x, y) sort.
	start := pts[0]
	hull := make([]geometry.Point, 0)
	current := start

	// The wrap visits each hull vertex exactly once; more than len(pts)
	// iterations means the tie-break failed to make progress.
	for range len(pts) + 1 {
		hull = append(hull, current)
		tr.record(hull)

		next := pts[0]
		if next == current {
			next = pts[1]
		}
		for _, p := range pts {
			if p == current {
				continue
			}
			// Exact sign tests only: a tolerance here could accept a
			// candidate that is slightly left of current->next and
			// steer the wrap into a cycle that never closes.
			c := geometry.Cross(current, next, p)
			switch {
			case c < 0:
				// p lies right of current->next: a tighter wrap.
				next = p
			case c == 0 &&
				geometry.SquaredDistance(current, p) > geometry.SquaredDistance(current, next):
				// Same ray: take the farthest so interior collinear
				// points never become hull vertices.
				next = p
			}
		}
		current = next
		if current == start {
			return finish(hull, tr), nil
		}
	}
	return nil, fmt.Errorf("jarvis march: wrap did not close after %d steps: %w",
		len(pts)+1, ErrInternalInconsistency)
}
