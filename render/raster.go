package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"honnef.co/go/pathpos"
)

// RasterOptions configures [Rasterize] and [WritePNG]. Sizes are in output
// pixels. Zero values select defaults.
type RasterOptions struct {
	// Width and Height of the image. If only one of them is set, the other
	// follows from the view box's aspect ratio.
	Width, Height int
	Padding       int
	// Supersample renders the path and markers at this multiple of the
	// output size and scales the result down, for smoother edges.
	Supersample int

	Background color.Color
	Stroke     color.Color
	MarkerFill color.Color
	LabelColor color.Color

	StrokeWidth  float64
	MarkerRadius float64
	// Face is used for labels. If nil, Go Regular at FontSize points is
	// used.
	Face     font.Face
	FontSize float64

	Partial Partial
}

var (
	colorWhite = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorBlue  = color.RGBA{0x25, 0x63, 0xeb, 0xff}
	colorNavy  = color.RGBA{0x1e, 0x3a, 0x8a, 0xff}
	colorInk   = color.RGBA{0x11, 0x18, 0x27, 0xff}
)

func (opts RasterOptions) withDefaults(vb pathpos.ViewBox) RasterOptions {
	switch {
	case opts.Width <= 0 && opts.Height <= 0:
		opts.Width = 500
		fallthrough
	case opts.Height <= 0:
		opts.Height = max(1, int(math.Round(float64(opts.Width)*vb.Height/vb.Width)))
	case opts.Width <= 0:
		opts.Width = max(1, int(math.Round(float64(opts.Height)*vb.Width/vb.Height)))
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}
	if opts.Background == nil {
		opts.Background = colorWhite
	}
	if opts.Stroke == nil {
		opts.Stroke = colorBlue
	}
	if opts.MarkerFill == nil {
		opts.MarkerFill = colorNavy
	}
	if opts.LabelColor == nil {
		opts.LabelColor = colorInk
	}
	if opts.StrokeWidth == 0 {
		opts.StrokeWidth = 3
	}
	if opts.MarkerRadius == 0 {
		opts.MarkerRadius = 6
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}
	return opts
}

// WritePNG rasterizes tl and writes it to w as a PNG image.
func WritePNG(w io.Writer, tl Timeline, opts RasterOptions) error {
	img, err := Rasterize(tl, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Rasterize draws tl into a new image.
//
// The view box is scaled to fit the image, minus padding, keeping its
// aspect ratio and centering it. When opts.Partial is enabled, only the
// drawn prefix of the path is stroked.
func Rasterize(tl Timeline, opts RasterOptions) (*image.RGBA, error) {
	if err := tl.validate(); err != nil {
		return nil, err
	}
	ps := tl.Positioner
	vb := ps.ViewBox()
	opts = opts.withDefaults(vb)

	face := opts.Face
	if face == nil {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    opts.FontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("create font face: %w", err)
		}
		defer f.Close()
		face = f
	}

	s := opts.Supersample
	content := func(scale int) pathpos.Rect {
		pad := float64(opts.Padding * scale)
		return pathpos.Rect{
			X0: pad,
			Y0: pad,
			X1: float64(opts.Width*scale) - pad,
			Y1: float64(opts.Height*scale) - pad,
		}
	}
	big := image.NewRGBA(image.Rect(0, 0, opts.Width*s, opts.Height*s))
	draw.Draw(big, big.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	aff := vb.Fit(content(s))
	ras := vector.NewRasterizer(big.Bounds().Dx(), big.Bounds().Dy())
	ras.DrawOp = draw.Over

	var pts []pathpos.Point
	for _, pt := range ps.Polyline().Prefix(opts.Partial.progress()) {
		pts = append(pts, pt.Transform(aff))
	}
	strokePolyline(ras, pts, opts.StrokeWidth*float64(s)/2)
	ras.Draw(big, big.Bounds(), image.NewUniform(opts.Stroke), image.Point{})

	placed := ps.Place(tl.Markers)
	ras.Reset(big.Bounds().Dx(), big.Bounds().Dy())
	for _, pm := range placed {
		addCircle(ras, pm.Point.Transform(aff), opts.MarkerRadius*float64(s))
	}
	ras.Draw(big, big.Bounds(), image.NewUniform(opts.MarkerFill), image.Point{})

	img := big
	if s > 1 {
		img = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
		draw.CatmullRom.Scale(img, img.Bounds(), big, big.Bounds(), draw.Src, nil)
	}

	// Labels are drawn at the final resolution so that faces keep their
	// size regardless of supersampling.
	aff = vb.Fit(content(1))
	ascent := face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.LabelColor),
		Face: face,
	}
	for _, pm := range placed {
		label := tl.label(pm.ID)
		if label == "" {
			continue
		}
		pt := pm.Point.Transform(aff)
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(math.Round((pt.X + opts.MarkerRadius + 4) * 64)),
			Y: fixed.Int26_6(math.Round(pt.Y*64)) + ascent*35/100,
		}
		d.DrawString(label)
	}
	return img, nil
}

// strokePolyline adds a round-joined stroke of half width hw along pts.
func strokePolyline(ras *vector.Rasterizer, pts []pathpos.Point, hw float64) {
	if len(pts) < 2 || hw <= 0 {
		return
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Hypot()
		if l == 0 {
			continue
		}
		n := pathpos.Vec(-d.Y, d.X).Mul(hw / l)
		addPolygon(ras, []pathpos.Point{
			a.Translate(n),
			b.Translate(n),
			b.Translate(n.Negate()),
			a.Translate(n.Negate()),
		})
	}
	for _, pt := range pts {
		addCircle(ras, pt, hw)
	}
}

func addCircle(ras *vector.Rasterizer, c pathpos.Point, r float64) {
	if r <= 0 {
		return
	}
	n := max(12, int(math.Ceil(2*math.Pi*r/2)))
	pts := make([]pathpos.Point, n)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = pathpos.Pt(c.X+r*cos, c.Y+r*sin)
	}
	addPolygon(ras, pts)
}

// addPolygon adds the closed polygon pts to ras. The rasterizer accumulates
// signed coverage, so every polygon is emitted with the same orientation
// to keep overlapping shapes from cancelling out. pts may be reordered.
func addPolygon(ras *vector.Rasterizer, pts []pathpos.Point) {
	if len(pts) < 3 {
		return
	}
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	switch {
	case area == 0 || math.IsNaN(area):
		return
	case area > 0:
		slices.Reverse(pts)
	}
	ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}
	ras.ClosePath()
}
