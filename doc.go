// Package pathpos places markers along 2D paths by arc length.
//
// The typical use is an infographic in which points of interest, such as the
// events of a timeline, sit on a curved road drawn as an SVG path. Markers are
// specified by their progress along the path, a fraction of the path's total
// arc length, and are resolved to coordinates in the path's [ViewBox], and from
// there to percentages suitable for CSS "left" and "top" properties.
//
// # Paths
//
// A [Path] is a sequence of cubic Béziers ([CubicBez]) in which every segment
// starts where the previous one ended. Paths can be built from segments with
// [NewPath], or parsed from SVG path data with [ParseSVGPath]:
//
//	p, err := pathpos.ParseSVGPath("M 900 500 C 800 500, 800 400, 700 400 C 600 400, 600 300, 500 300")
//
// Lines and quadratic Béziers in path data are converted to cubic Béziers.
//
// # Flattening and lookup
//
// Arc length of cubic Béziers has no closed form. [Flatten] approximates a
// path by a polyline whose vertices lie on the path and are annotated with
// their cumulative arc length; the tolerance bounds the distance between the
// curve and its approximation. [Polyline.PointAt] then finds the point at a
// given progress with a binary search and linear interpolation.
//
// Progress outside of [0, 1] is clamped, never rejected. A path whose points
// all coincide has zero length; it resolves every progress to its single point
// rather than failing.
//
// # Positioning markers
//
// [Positioner] combines a path, a view box, and a tolerance. It flattens the
// path once and resolves any number of [Marker] values to [PositionedMarker]
// values, preserving their order:
//
//	vb, _ := pathpos.ParseViewBox("0 0 1000 600")
//	ps, _ := pathpos.NewPositioner(p, vb, pathpos.DefaultTolerance)
//	for _, pm := range ps.Place(markers) {
//		left, top := pm.Percent.CSS(2)
//		...
//	}
//
// All types in this package are values or immutable after construction and
// are safe for concurrent use.
package pathpos
