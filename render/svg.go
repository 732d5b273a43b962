package render

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/pathpos"
	"honnef.co/go/pathpos/scroll"
)

// SVGOptions specifies optional settings for [WriteSVG]. Sizes are in view
// box units. Zero values select defaults.
type SVGOptions struct {
	Stroke       string
	StrokeWidth  float64
	MarkerFill   string
	MarkerRadius float64
	LabelFill    string
	FontSize     float64
	// The maximum precision with which to format coordinates.
	MaxPrecision int
	Partial      Partial
}

func (opts SVGOptions) withDefaults() SVGOptions {
	if opts.Stroke == "" {
		opts.Stroke = "#2563eb"
	}
	if opts.StrokeWidth == 0 {
		opts.StrokeWidth = 4
	}
	if opts.MarkerFill == "" {
		opts.MarkerFill = "#1e3a8a"
	}
	if opts.MarkerRadius == 0 {
		opts.MarkerRadius = 10
	}
	if opts.LabelFill == "" {
		opts.LabelFill = "#111827"
	}
	if opts.FontSize == 0 {
		opts.FontSize = 28
	}
	if opts.MaxPrecision == 0 {
		opts.MaxPrecision = 3
	}
	return opts
}

// WriteSVG writes tl as a standalone SVG document.
//
// The document uses the path's view box, so markers appear exactly where
// percentage-based placement over an SVG with the same view box would put
// them. When opts.Partial is enabled, the path is drawn with a stroke dash
// that reveals only the drawn prefix.
func WriteSVG(w io.Writer, tl Timeline, opts SVGOptions) error {
	if err := tl.validate(); err != nil {
		return err
	}
	opts = opts.withDefaults()
	ps := tl.Positioner

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	num := func(v float64) string {
		s := strconv.FormatFloat(v, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}

	vb := ps.ViewBox()
	writef(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" preserveAspectRatio="xMidYMid meet">`+"\n",
		num(vb.MinX), num(vb.MinY), num(vb.Width), num(vb.Height))

	d := ps.Path().SVG(pathpos.SVGOptions{MaxPrecision: opts.MaxPrecision})
	writef(`  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"`,
		d, html.EscapeString(opts.Stroke), num(opts.StrokeWidth))
	if opts.Partial.Enabled {
		dash := scroll.DrawState(ps.Length(), opts.Partial.Progress)
		writef(` stroke-dasharray="%s" stroke-dashoffset="%s"`, num(dash.Array), num(dash.Offset))
	}
	writef("/>\n")

	for _, pm := range ps.Place(tl.Markers) {
		writef(`  <g class="marker" data-id="%s">`+"\n", html.EscapeString(pm.ID))
		writef(`    <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			num(pm.Point.X), num(pm.Point.Y), num(opts.MarkerRadius), html.EscapeString(opts.MarkerFill))
		if label := tl.label(pm.ID); label != "" {
			writef(`    <text x="%s" y="%s" font-size="%s" fill="%s" dominant-baseline="middle">%s</text>`+"\n",
				num(pm.Point.X+opts.MarkerRadius*1.5), num(pm.Point.Y), num(opts.FontSize),
				html.EscapeString(opts.LabelFill), html.EscapeString(label))
		}
		writef("  </g>\n")
	}
	writef("</svg>\n")
	return err
}
