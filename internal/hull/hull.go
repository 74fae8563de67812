// Package hull implements four classical planar convex-hull
// algorithms: Graham scan, Jarvis march, QuickHull and monotone chain.
// All four return the same vertex set for any input; Normalize makes
// the emitted slices directly comparable.
package hull

import (
	"errors"
	"fmt"

	"github.com/hullbench/hullbench/internal/geometry"
)

// ErrInternalInconsistency signals a violated termination guard.
// It indicates a tie-break bug in the implementation, never bad input.
var ErrInternalInconsistency = errors.New("internal consistency error")

// ErrUnknownAlgorithm is returned for unrecognized algorithm names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm identifies one of the four hull algorithms.
type Algorithm string

const (
	AlgorithmGraham        Algorithm = "graham"
	AlgorithmJarvis        Algorithm = "jarvis"
	AlgorithmQuickHull     Algorithm = "quickhull"
	AlgorithmMonotoneChain Algorithm = "monotone_chain"
)

// Algorithms returns all supported algorithms in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmGraham, AlgorithmJarvis, AlgorithmQuickHull, AlgorithmMonotoneChain}
}

// ParseAlgorithm converts a string into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if s == string(a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Compute runs the selected algorithm and returns the hull in
// counter-clockwise order without a closing duplicate vertex.
func Compute(alg Algorithm, pts []geometry.Point) ([]geometry.Point, error) {
	switch alg {
	case AlgorithmGraham:
		return GrahamScan(pts)
	case AlgorithmJarvis:
		return JarvisMarch(pts)
	case AlgorithmQuickHull:
		return QuickHull(pts)
	case AlgorithmMonotoneChain:
		return MonotoneChain(pts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// ComputeSteps runs the selected algorithm while recording the partial
// hull after every stack or chain mutation. The snapshots feed
// external visualization; the final hull is identical to Compute's.
func ComputeSteps(alg Algorithm, pts []geometry.Point) ([]geometry.Point, [][]geometry.Point, error) {
	tr := &trace{}
	var (
		h   []geometry.Point
		err error
	)
	switch alg {
	case AlgorithmGraham:
		h, err = grahamScan(pts, tr)
	case AlgorithmJarvis:
		h, err = jarvisMarch(pts, tr)
	case AlgorithmQuickHull:
		h, err = quickHull(pts, tr)
	case AlgorithmMonotoneChain:
		h, err = monotoneChain(pts, tr)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	if err != nil {
		return nil, nil, err
	}
	return h, tr.steps, nil
}

// trace collects partial-hull snapshots. A nil trace records nothing,
// so the plain entry points pay no copying cost.
type trace struct {
	steps [][]geometry.Point
}

func (t *trace) record(step []geometry.Point) {
	if t == nil {
		return
	}
	t.steps = append(t.steps, geometry.Clone(step))
}

// prepare returns the input's distinct points sorted by (x, y).
// Every algorithm starts from this shared view so duplicates can
// never corrupt hull construction.
func prepare(pts []geometry.Point) []geometry.Point {
	return geometry.Distinct(pts)
}

// allCollinear reports whether every point in the sorted distinct
// slice lies on the line through its first two points.
func allCollinear(pts []geometry.Point) bool {
	for i := 2; i < len(pts); i++ {
		if geometry.Orient(pts[0], pts[1], pts[i]) != geometry.Collinear {
			return false
		}
	}
	return true
}

// collinearHull returns the two extreme endpoints of an all-collinear
// sorted point slice.
func collinearHull(pts []geometry.Point) []geometry.Point {
	return []geometry.Point{pts[0], pts[len(pts)-1]}
}

// finish applies the shared collinear-vertex exclusion to a freshly
// built hull. Construction uses exact cross-product signs; the
// tolerance lives in this single pass, so no two algorithms can ever
// classify the same boundary vertex differently.
func finish(h []geometry.Point, tr *trace) []geometry.Point {
	out := dropCollinear(h)
	if len(out) != len(h) {
		tr.record(out)
	}
	return out
}

// dropCollinear removes vertices whose cyclic turn is Collinear under
// the epsilon orientation test, repeating until every remaining turn
// is strictly counter-clockwise. Filtering stops rather than degrade
// a polygon below three vertices.
func dropCollinear(h []geometry.Point) []geometry.Point {
	for len(h) >= 3 {
		n := len(h)
		kept := make([]geometry.Point, 0, n)
		for i := range n {
			prev := h[(i+n-1)%n]
			next := h[(i+1)%n]
			if geometry.Orient(prev, h[i], next) == geometry.CounterClockwise {
				kept = append(kept, h[i])
			}
		}
		if len(kept) == n || len(kept) < 3 {
			return h
		}
		h = kept
	}
	return h
}

// Normalize rewrites a hull so it is counter-clockwise and starts at
// the lexicographically smallest vertex. Algorithms begin their wrap
// at different vertices; normalized hulls compare as plain slices.
func Normalize(h []geometry.Point) []geometry.Point {
	out := geometry.Clone(h)
	if len(out) < 2 {
		return out
	}
	if len(out) >= 3 && geometry.SignedArea(out) < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	start := 0
	for i := 1; i < len(out); i++ {
		if geometry.Less(out[i], out[start]) {
			start = i
		}
	}
	rotated := make([]geometry.Point, 0, len(out))
	rotated = append(rotated, out[start:]...)
	rotated = append(rotated, out[:start]...)
	return rotated
}
