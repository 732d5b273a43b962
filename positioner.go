package pathpos

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Marker is a point of interest placed along a path.
type Marker struct {
	// ID correlates the marker with presentation data owned by the caller. It
	// is not interpreted.
	ID string
	// Progress is the marker's position as a fraction of the path's arc
	// length. Values outside [0, 1] are clamped.
	Progress float64
}

// PositionedMarker is a marker resolved against a path and view box.
type PositionedMarker struct {
	ID string
	// Point is the marker's position in view box coordinates.
	Point Point
	// Percent is Point as percentages of the view box, suitable for CSS
	// left/top placement. Values may lie outside [0, 100] if the path leaves
	// the view box.
	Percent Percent
}

// Positioner places markers along a fixed path in a fixed view box.
//
// The path is flattened once, when the Positioner is created, and the result
// is used for every lookup. A Positioner is immutable and safe for concurrent
// use.
type Positioner struct {
	path      Path
	viewBox   ViewBox
	tolerance float64
	flat      Polyline
}

// NewPositioner validates its arguments and flattens path with the given
// tolerance. See [Flatten] for the meaning of tolerance.
func NewPositioner(path Path, vb ViewBox, tolerance float64) (*Positioner, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	if err := vb.Validate(); err != nil {
		return nil, err
	}
	if !(tolerance > 0) || math.IsInf(tolerance, 1) {
		return nil, fmt.Errorf("tolerance must be positive and finite, got %g", tolerance)
	}
	path = slices.Clone(path)
	return &Positioner{
		path:      path,
		viewBox:   vb,
		tolerance: tolerance,
		flat:      Flatten(path, tolerance),
	}, nil
}

// Path returns a copy of the path the Positioner was created with.
func (ps *Positioner) Path() Path { return slices.Clone(ps.path) }

func (ps *Positioner) ViewBox() ViewBox        { return ps.viewBox }
func (ps *Positioner) Tolerance() float64      { return ps.tolerance }
func (ps *Positioner) Polyline() Polyline      { return ps.flat }
func (ps *Positioner) IsDegenerate() bool      { return ps.flat.IsDegenerate() }
func (ps *Positioner) Length() float64         { return ps.flat.Length() }
func (ps *Positioner) Start() Point            { return ps.path.Start() }
func (ps *Positioner) End() Point              { return ps.path.End() }
func (ps *Positioner) Bounds() Rect            { return ps.path.ControlBox() }
func (ps *Positioner) PointAt(p float64) Point { return ps.flat.PointAt(p) }

// PercentAt returns the point at the given progress as percentages of the
// view box.
func (ps *Positioner) PercentAt(progress float64) Percent {
	return ps.viewBox.ToPercent(ps.flat.PointAt(progress))
}

// Position resolves a single marker.
func (ps *Positioner) Position(m Marker) PositionedMarker {
	pt := ps.flat.PointAt(m.Progress)
	return PositionedMarker{
		ID:      m.ID,
		Point:   pt,
		Percent: ps.viewBox.ToPercent(pt),
	}
}

// Place resolves markers, returning results in the same order.
func (ps *Positioner) Place(markers []Marker) []PositionedMarker {
	out := make([]PositionedMarker, len(markers))
	for i, m := range markers {
		out[i] = ps.Position(m)
	}
	return out
}

// PlaceSeq is like [Positioner.Place] but maps a sequence of markers lazily.
func (ps *Positioner) PlaceSeq(markers iter.Seq[Marker]) iter.Seq[PositionedMarker] {
	return func(yield func(PositionedMarker) bool) {
		for m := range markers {
			if !yield(ps.Position(m)) {
				return
			}
		}
	}
}
