package pathpos

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned, wrapped, for paths that have no segments, have
// non-finite coordinates, are not continuous, or cannot be parsed.
//
// A path with zero arc length is not invalid; see [Polyline.IsDegenerate].
var ErrInvalidPath = errors.New("invalid path")

// Path is an ordered, non-empty sequence of cubic Bézier segments, where each
// segment starts exactly where the previous one ended.
//
// Use [NewPath] or [ParseSVGPath] to construct paths that are known to be
// valid. Functions in this package that accept a Path assume that it is
// valid.
type Path []CubicBez

// NewPath returns a path consisting of a copy of segs, or an error wrapping
// [ErrInvalidPath] if the segments don't form a valid path.
func NewPath(segs ...CubicBez) (Path, error) {
	p := Path(slices.Clone(segs))
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustNewPath is like [NewPath] but panics on invalid input. It is intended
// for paths known at compile time.
func MustNewPath(segs ...CubicBez) Path {
	p, err := NewPath(segs...)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks that p is non-empty, finite, and C0-continuous.
func (p Path) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: path has no segments", ErrInvalidPath)
	}
	for i, c := range p {
		if c.IsNaN() || c.IsInf() {
			return fmt.Errorf("%w: segment %d has non-finite coordinates", ErrInvalidPath, i)
		}
		if i > 0 && p[i-1].P3 != c.P0 {
			return fmt.Errorf("%w: segment %d starts at %s, but segment %d ends at %s",
				ErrInvalidPath, i, c.P0, i-1, p[i-1].P3)
		}
	}
	return nil
}

// Start returns the start point of the first segment.
func (p Path) Start() Point { return p[0].P0 }

// End returns the end point of the last segment.
func (p Path) End() Point { return p[len(p)-1].P3 }

// Segments returns an iterator over the path's segments.
func (p Path) Segments() iter.Seq[CubicBez] { return slices.Values(p) }

// ControlPoints returns an iterator over all points that define the path, in
// order. Points shared by adjacent segments are produced once.
func (p Path) ControlPoints() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if len(p) == 0 {
			return
		}
		if !yield(p[0].P0) {
			return
		}
		for _, c := range p {
			if !yield(c.P1) || !yield(c.P2) || !yield(c.P3) {
				return
			}
		}
	}
}

// ControlBox returns a rectangle that conservatively encloses the path.
func (p Path) ControlBox() Rect {
	var cbox Rect
	first := true
	for pt := range p.ControlPoints() {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	return cbox
}

// Flatten is shorthand for [Flatten](p, tolerance).
func (p Path) Flatten(tolerance float64) Polyline {
	return Flatten(p, tolerance)
}

// SVGOptions specifies optional settings for [Path.SVG] and [Path.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to SVG path data of the form "M x,y C x1,y1 x2,y2 x,y ...".
//
// The result round-trips through [ParseSVGPath] when MaxPrecision is 0.
func (p Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG is like [Path.SVG] but writes to w.
func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	if len(p) == 0 {
		return nil
	}
	writef("M%s,%s", format(p[0].P0.X), format(p[0].P0.Y))
	for _, c := range p {
		writef(" C%s,%s %s,%s %s,%s",
			format(c.P1.X), format(c.P1.Y),
			format(c.P2.X), format(c.P2.Y),
			format(c.P3.X), format(c.P3.Y))
	}
	return err
}
