package scroll

import (
	"fmt"
	"math"

	"honnef.co/go/pathpos"
)

// Box is the vertical extent of an element in document coordinates.
type Box struct {
	Top    float64
	Height float64
}

func (b Box) Bottom() float64 { return b.Top + b.Height }

// State describes where a scroll offset lies relative to a trigger's range.
type State uint8

const (
	Before State = iota
	Active
	After
)

func (s State) String() string {
	switch s {
	case Before:
		return "before"
	case Active:
		return "active"
	case After:
		return "after"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Trigger maps scroll offsets to progress through an element.
type Trigger struct {
	Start Anchor
	End   Anchor
}

var (
	// DefaultTrigger is active while any part of the element is visible.
	DefaultTrigger = Trigger{
		Start: Anchor{Element: Top, Viewport: Bottom},
		End:   Anchor{Element: Bottom, Viewport: Top},
	}
	// ContainerTrigger runs from the element's top reaching the top of the
	// viewport to its bottom reaching the bottom of the viewport. It drives
	// the drawing of the timeline path.
	ContainerTrigger = Trigger{
		Start: Anchor{Element: Top, Viewport: Top},
		End:   Anchor{Element: Bottom, Viewport: Bottom},
	}
	// RevealTrigger starts when the element's top passes 85% of the
	// viewport's height. It drives marker reveals.
	RevealTrigger = Trigger{
		Start: Anchor{Element: Top, Viewport: Offset{Fraction: 0.85}},
		End:   Anchor{Element: Bottom, Viewport: Top},
	}
)

// ParseTrigger parses a trigger from its start and end anchors.
func ParseTrigger(start, end string) (Trigger, error) {
	s, err := ParseAnchor(start)
	if err != nil {
		return Trigger{}, err
	}
	e, err := ParseAnchor(end)
	if err != nil {
		return Trigger{}, err
	}
	return Trigger{Start: s, End: e}, nil
}

func (tr Trigger) String() string {
	return fmt.Sprintf("start=%q end=%q", tr.Start, tr.End)
}

// Range returns the scroll offsets at which the trigger starts and ends.
// end may be smaller than start for unusual anchors.
func (tr Trigger) Range(elem Box, viewportHeight float64) (start, end float64) {
	return tr.Start.ScrollY(elem, viewportHeight), tr.End.ScrollY(elem, viewportHeight)
}

// Progress returns how far scrollY lies through the trigger's range, in
// [0, 1]. Empty or inverted ranges behave like a step at the start offset.
func (tr Trigger) Progress(scrollY float64, elem Box, viewportHeight float64) float64 {
	start, end := tr.Range(elem, viewportHeight)
	if math.IsNaN(scrollY) {
		return 0
	}
	if end <= start {
		if scrollY < start {
			return 0
		}
		return 1
	}
	return pathpos.ClampProgress((scrollY - start) / (end - start))
}

// State reports whether scrollY lies before, within or after the trigger's
// range. The range is inclusive of both ends.
func (tr Trigger) State(scrollY float64, elem Box, viewportHeight float64) State {
	start, end := tr.Range(elem, viewportHeight)
	switch {
	case scrollY < start:
		return Before
	case scrollY > max(start, end):
		return After
	default:
		return Active
	}
}
