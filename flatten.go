package pathpos

import (
	"iter"
	"math"
	"slices"
	"sort"
)

// DefaultTolerance is a flattening tolerance suitable for placing markers on
// paths drawn in user units that map to roughly one pixel each. For
// antialiased rendering, 0.25 gives results that are indistinguishable from
// the true curve.
const DefaultTolerance = 0.25

// maxFlattenDepth bounds the recursion of [Flatten] for a single segment,
// limiting each segment to at most 2^maxFlattenDepth lines.
const maxFlattenDepth = 16

// Sample is a vertex of a flattened path.
type Sample struct {
	Point Point
	// Length is the arc length of the polyline from the start of the path up
	// to Point.
	Length float64
}

// Polyline is a path that has been flattened to a sequence of lines, with
// each vertex annotated with its cumulative arc length.
//
// A Polyline produced by [Flatten] has at least one sample, its first sample
// has length 0, and lengths are strictly increasing. It is immutable and safe
// for concurrent use.
type Polyline struct {
	samples []Sample
}

// Flatten approximates the path by a polyline whose vertices lie on the path.
//
// Every cubic is subdivided recursively, using de Casteljau, until its control
// points are no farther than tolerance from the chord connecting its end
// points. Because a cubic lies within the convex hull of its control points,
// this bounds the distance between the curve and its polyline approximation by
// tolerance. Subdivision is deterministic: flattening the same path with the
// same tolerance always produces the same samples.
//
// The first sample is exactly the path's start point and the last sample is
// exactly its end point. Segments with zero length don't contribute samples,
// which means that a path consisting only of coincident points flattens to a
// single sample.
//
// Flatten returns a slice-backed value rather than an iterator because
// looking up points by arc length needs random access.
//
// Flatten panics if tolerance isn't positive.
func Flatten(p Path, tolerance float64) Polyline {
	if !(tolerance > 0) || math.IsInf(tolerance, 1) {
		panic("pathpos: Flatten requires a positive, finite tolerance")
	}
	if len(p) == 0 {
		panic("pathpos: Flatten called on empty path")
	}
	pl := Polyline{samples: []Sample{{Point: p[0].P0}}}
	for _, c := range p {
		pl.appendCubic(c, tolerance, 0)
	}
	return pl
}

func (pl *Polyline) appendCubic(c CubicBez, tolerance float64, depth int) {
	if depth >= maxFlattenDepth || c.Flatness() <= tolerance {
		pl.lineTo(c.P3)
		return
	}
	l, r := c.Subdivide()
	pl.appendCubic(l, tolerance, depth+1)
	pl.appendCubic(r, tolerance, depth+1)
}

func (pl *Polyline) lineTo(pt Point) {
	last := &pl.samples[len(pl.samples)-1]
	d := last.Point.Distance(pt)
	if d == 0 {
		return
	}
	l := last.Length + d
	if l <= last.Length {
		// The step is too small to register in the cumulative length. Keep
		// the later point so that the end of the path stays exact, unless
		// that would move the start of the path.
		if len(pl.samples) > 1 {
			last.Point = pt
		}
		return
	}
	pl.samples = append(pl.samples, Sample{Point: pt, Length: l})
}

// Len returns the number of samples.
func (pl Polyline) Len() int { return len(pl.samples) }

// Sample returns the i'th sample.
func (pl Polyline) Sample(i int) Sample { return pl.samples[i] }

// Samples returns an iterator over the polyline's samples.
func (pl Polyline) Samples() iter.Seq[Sample] { return slices.Values(pl.samples) }

// Points returns an iterator over the polyline's vertices.
func (pl Polyline) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, s := range pl.samples {
			if !yield(s.Point) {
				return
			}
		}
	}
}

// Length returns the total arc length of the polyline.
func (pl Polyline) Length() float64 {
	if len(pl.samples) == 0 {
		return 0
	}
	return pl.samples[len(pl.samples)-1].Length
}

// IsDegenerate reports whether the polyline has zero length, which is the
// case when all points of the flattened path coincide. Degenerate polylines
// resolve every progress to their only point.
func (pl Polyline) IsDegenerate() bool {
	return len(pl.samples) < 2
}

// ClampProgress clamps progress to [0, 1]. NaN is treated as 0.
func ClampProgress(progress float64) float64 {
	if math.IsNaN(progress) {
		return 0
	}
	return min(max(progress, 0), 1)
}

// LengthAt returns the arc length from the start of the path to the point at
// the given progress. Progress is clamped to [0, 1].
func (pl Polyline) LengthAt(progress float64) float64 {
	return ClampProgress(progress) * pl.Length()
}

// PointAt returns the point at the given fraction of the polyline's arc
// length. Progress is clamped to [0, 1]; out of range values are not an error.
//
// PointAt(0) is exactly the first sample and PointAt(1) is exactly the last
// sample. Points in between are interpolated linearly between the two samples
// that bracket the target arc length.
func (pl Polyline) PointAt(progress float64) Point {
	pt, _ := pl.locate(progress)
	return pt
}

// locate returns the point at progress and the index of the sample ending the
// line that contains it.
func (pl Polyline) locate(progress float64) (Point, int) {
	s := pl.samples
	if len(s) == 0 {
		return Point{}, 0
	}
	if len(s) == 1 {
		return s[0].Point, 0
	}
	progress = ClampProgress(progress)
	switch progress {
	case 0:
		return s[0].Point, 1
	case 1:
		return s[len(s)-1].Point, len(s) - 1
	}
	target := progress * pl.Length()
	// s[0].Length is 0 and target is positive, so i ≥ 1.
	i := sort.Search(len(s), func(i int) bool { return s[i].Length >= target })
	if i >= len(s) {
		return s[len(s)-1].Point, len(s) - 1
	}
	a, b := s[i-1], s[i]
	t := (target - a.Length) / (b.Length - a.Length)
	return a.Point.Lerp(b.Point, t), i
}

// Prefix returns the vertices of the part of the polyline from its start up
// to the given progress, ending with the point at that progress. This is the
// portion of a path that is visible when it is drawn up to progress.
func (pl Polyline) Prefix(progress float64) []Point {
	pt, i := pl.locate(progress)
	out := make([]Point, 0, i+1)
	for _, s := range pl.samples[:i] {
		out = append(out, s.Point)
	}
	if len(out) == 0 || out[len(out)-1] != pt {
		out = append(out, pt)
	}
	return out
}
