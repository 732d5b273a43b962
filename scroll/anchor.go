package scroll

import (
	"errors"
	"fmt"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

var ErrInvalidAnchor = errors.New("invalid scroll anchor")

// Offset is a position along a vertical extent, expressed as a fraction of
// the extent plus a fixed number of pixels.
type Offset struct {
	Fraction float64
	Pixels   float64
}

var (
	Top    = Offset{Fraction: 0}
	Center = Offset{Fraction: 0.5}
	Bottom = Offset{Fraction: 1}
)

// Resolve returns the offset's position in an extent of the given size.
func (o Offset) Resolve(size float64) float64 {
	return o.Fraction*size + o.Pixels
}

func (o Offset) String() string {
	var s string
	switch o.Fraction {
	case 0:
		s = "top"
	case 0.5:
		s = "center"
	case 1:
		s = "bottom"
	default:
		s = formatNumber(o.Fraction*100) + "%"
	}
	switch {
	case o.Pixels > 0:
		s += "+=" + formatNumber(o.Pixels) + "px"
	case o.Pixels < 0:
		s += "-=" + formatNumber(-o.Pixels) + "px"
	}
	return s
}

// Anchor pairs a position on an element with a position in the viewport.
// The anchor is reached when the two line up.
type Anchor struct {
	Element  Offset
	Viewport Offset
}

func (a Anchor) String() string {
	return a.Element.String() + " " + a.Viewport.String()
}

// ScrollY returns the scroll offset at which the anchor is reached.
func (a Anchor) ScrollY(elem Box, viewportHeight float64) float64 {
	return elem.Top + a.Element.Resolve(elem.Height) - a.Viewport.Resolve(viewportHeight)
}

// ParseAnchor parses anchors of the form "<element> <viewport>", such as
// "top 85%" or "bottom bottom".
//
// Each position is one of the keywords top, center and bottom, a percentage,
// or a pixel offset ("120px" or "120"). Keywords and percentages may be
// followed by a relative pixel adjustment, as in "top+=100px" or
// "center-=20".
func ParseAnchor(s string) (Anchor, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Anchor{}, fmt.Errorf("%w %q: want element and viewport positions", ErrInvalidAnchor, s)
	}
	elem, err := parseOffset(fields[0])
	if err != nil {
		return Anchor{}, fmt.Errorf("%w %q: %s", ErrInvalidAnchor, s, err)
	}
	vp, err := parseOffset(fields[1])
	if err != nil {
		return Anchor{}, fmt.Errorf("%w %q: %s", ErrInvalidAnchor, s, err)
	}
	return Anchor{Element: elem, Viewport: vp}, nil
}

// MustParseAnchor is like [ParseAnchor] but panics on error.
func MustParseAnchor(s string) Anchor {
	a, err := ParseAnchor(s)
	if err != nil {
		panic(err)
	}
	return a
}

func parseOffset(s string) (Offset, error) {
	base, rel, sign := s, "", 0.0
	if i := strings.Index(s, "+="); i >= 0 {
		base, rel, sign = s[:i], s[i+2:], 1
	} else if i := strings.Index(s, "-="); i >= 0 {
		base, rel, sign = s[:i], s[i+2:], -1
	}

	var o Offset
	switch base {
	case "top":
		o = Top
	case "center":
		o = Center
	case "bottom":
		o = Bottom
	default:
		if pct, ok := strings.CutSuffix(base, "%"); ok {
			v, err := parseNumber(pct)
			if err != nil {
				return Offset{}, err
			}
			o.Fraction = v / 100
		} else {
			if sign != 0 {
				return Offset{}, fmt.Errorf("relative adjustment of pixel offset %q", base)
			}
			v, err := parseNumber(strings.TrimSuffix(base, "px"))
			if err != nil {
				return Offset{}, err
			}
			o.Pixels = v
		}
	}
	if sign != 0 {
		v, err := parseNumber(strings.TrimSuffix(rel, "px"))
		if err != nil {
			return Offset{}, err
		}
		o.Pixels += sign * v
	}
	return o, nil
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("missing number")
	}
	v, n := pstrconv.ParseFloat([]byte(s))
	if n != len(s) {
		return 0, fmt.Errorf("malformed number %q", s)
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}
