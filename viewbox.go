package pathpos

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidViewBox is returned, wrapped, for view boxes that don't have a
// strictly positive, finite width and height.
var ErrInvalidViewBox = errors.New("invalid view box")

// ViewBox is the rectangle that establishes the coordinate space a path is
// defined in, as in SVG's viewBox attribute.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// NewViewBox returns the view box with the given origin and size, or an error
// wrapping [ErrInvalidViewBox] if the size isn't strictly positive.
func NewViewBox(minX, minY, width, height float64) (ViewBox, error) {
	vb := ViewBox{MinX: minX, MinY: minY, Width: width, Height: height}
	if err := vb.Validate(); err != nil {
		return ViewBox{}, err
	}
	return vb, nil
}

// ParseViewBox parses the value of an SVG viewBox attribute, four numbers
// separated by whitespace and/or commas, such as "0 0 1000 600".
func ParseViewBox(s string) (ViewBox, error) {
	var f [4]float64
	sc := newNumberScanner(s)
	for i := range f {
		v, ok := sc.number()
		if !ok {
			return ViewBox{}, fmt.Errorf("%w: %q: expected 4 numbers, got %d", ErrInvalidViewBox, s, i)
		}
		f[i] = v
	}
	if !sc.done() {
		return ViewBox{}, fmt.Errorf("%w: %q: unexpected trailing data at position %d", ErrInvalidViewBox, s, sc.pos+1)
	}
	return NewViewBox(f[0], f[1], f[2], f[3])
}

// Validate checks that vb has a finite origin and a strictly positive, finite
// size.
func (vb ViewBox) Validate() error {
	for _, v := range [...]float64{vb.MinX, vb.MinY, vb.Width, vb.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s has non-finite values", ErrInvalidViewBox, vb)
		}
	}
	if vb.Width <= 0 || vb.Height <= 0 {
		return fmt.Errorf("%w: %s must have positive width and height", ErrInvalidViewBox, vb)
	}
	return nil
}

// String formats vb like an SVG viewBox attribute.
func (vb ViewBox) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return f(vb.MinX) + " " + f(vb.MinY) + " " + f(vb.Width) + " " + f(vb.Height)
}

// Percent is a position expressed as percentages of a [ViewBox]'s width and
// height, measured from its top left corner. It is suitable for CSS
// "left" and "top" properties of elements overlaid on the view box.
type Percent struct {
	X float64
	Y float64
}

func (p Percent) String() string {
	return fmt.Sprintf("(%g%%, %g%%)", p.X, p.Y)
}

// CSS returns the percentages formatted as CSS lengths, rounded to the given
// number of decimal places, for the "left" and "top" properties.
func (p Percent) CSS(decimals int) (left, top string) {
	f := func(v float64) string {
		s := strconv.FormatFloat(v, 'f', decimals, 64)
		if z, err := strconv.ParseFloat(s, 64); err == nil && z == 0 {
			// Don't emit "-0%" for small negative values.
			s = strconv.FormatFloat(0, 'f', decimals, 64)
		}
		return s + "%"
	}
	return f(p.X), f(p.Y)
}

// ToPercent converts a point in view box coordinates to percentages of the
// view box's size.
//
// The result is not clamped. Points outside of the view box produce values
// outside of [0, 100], which place elements off-canvas.
//
// ToPercent panics if vb isn't valid. Use [NewViewBox] or [ParseViewBox] to
// construct view boxes from untrusted input.
func (vb ViewBox) ToPercent(pt Point) Percent {
	if err := vb.Validate(); err != nil {
		panic(err)
	}
	return Percent{
		X: (pt.X - vb.MinX) / vb.Width * 100,
		Y: (pt.Y - vb.MinY) / vb.Height * 100,
	}
}

// FromPercent is the inverse of [ViewBox.ToPercent].
func (vb ViewBox) FromPercent(p Percent) Point {
	return Point{
		X: vb.MinX + p.X/100*vb.Width,
		Y: vb.MinY + p.Y/100*vb.Height,
	}
}
