package pathpos

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// convexHull returns the convex hull of pts in counter-clockwise order (in a
// y-up frame), using Andrew's monotone chain.
func convexHull(pts []Point) []Point {
	pts = slices.Clone(pts)
	slices.SortFunc(pts, func(a, b Point) int {
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		switch {
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		default:
			return 0
		}
	})
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return pts
	}
	cross := func(o, a, b Point) float64 { return a.Sub(o).Cross(b.Sub(o)) }
	hull := make([]Point, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// inHull reports whether pt lies inside the counter-clockwise convex polygon
// hull, allowing for an error of eps.
func inHull(hull []Point, pt Point, eps float64) bool {
	switch len(hull) {
	case 0:
		return false
	case 1:
		return pt.Distance(hull[0]) <= eps
	case 2:
		return pt.SegmentDistance(hull[0], hull[1]) <= eps
	}
	for i := range hull {
		a, b := hull[i], hull[(i+1)%len(hull)]
		ab := b.Sub(a)
		// Signed distance of pt to the edge; negative means outside.
		if ab.Cross(pt.Sub(a))/ab.Hypot() < -eps {
			return false
		}
	}
	return true
}
