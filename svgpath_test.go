package pathpos

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSVGPathCubics(t *testing.T) {
	got, err := ParseSVGPath(milestonesPathData)
	if err != nil {
		t.Fatal(err)
	}
	want := Path{
		{Pt(900, 500), Pt(800, 500), Pt(800, 400), Pt(700, 400)},
		{Pt(700, 400), Pt(600, 400), Pt(600, 300), Pt(500, 300)},
		{Pt(500, 300), Pt(400, 300), Pt(400, 50), Pt(300, 250)},
		{Pt(300, 250), Pt(200, 450), Pt(200, 100), Pt(100, 100)},
	}
	diff(t, want, got)
}

func TestParseSVGPathRelative(t *testing.T) {
	abs := MustParseSVGPath("M 10 20 C 20 20, 30 30, 40 40 C 50 50, 60 50, 70 40")
	rel := MustParseSVGPath("m10,20c10,0 20,10 30,20 10,10 20,10 30,0")
	diff(t, abs, rel)
}

func TestParseSVGPathCompactNumbers(t *testing.T) {
	// Numbers may run into each other when the sign or decimal point makes
	// the boundary unambiguous.
	got := MustParseSVGPath("M0-5C.5.5-1-1 2e1,3")
	want := Path{{Pt(0, -5), Pt(0.5, 0.5), Pt(-1, -1), Pt(20, 3)}}
	diff(t, want, got)
}

func TestParseSVGPathLines(t *testing.T) {
	got := MustParseSVGPath("M 0 0 L 10 0 H 30 V 10 l -5 5 h -5 v -5")
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(30, 0), Pt(30, 10), Pt(25, 15), Pt(20, 15), Pt(20, 10)}
	var want Path
	for i := 1; i < len(pts); i++ {
		want = append(want, LineCubic(pts[i-1], pts[i]))
	}
	diff(t, want, got)
}

func TestParseSVGPathImplicitLineTo(t *testing.T) {
	// Extra coordinate pairs after a move are line commands.
	got := MustParseSVGPath("M 0 0 10 0 10 10")
	want := Path{LineCubic(Pt(0, 0), Pt(10, 0)), LineCubic(Pt(10, 0), Pt(10, 10))}
	diff(t, want, got)

	got = MustParseSVGPath("m 5 5 10 0 0 10")
	want = Path{LineCubic(Pt(5, 5), Pt(15, 5)), LineCubic(Pt(15, 5), Pt(15, 15))}
	diff(t, want, got)
}

func TestParseSVGPathSmooth(t *testing.T) {
	got := MustParseSVGPath("M 0 0 C 0 10, 10 20, 20 20 S 40 10, 40 0")
	want := Path{
		{Pt(0, 0), Pt(0, 10), Pt(10, 20), Pt(20, 20)},
		{Pt(20, 20), Pt(30, 20), Pt(40, 10), Pt(40, 0)},
	}
	diff(t, want, got)

	// Without a preceding cubic, the first control point is the current point.
	got = MustParseSVGPath("M 0 0 S 10 10, 20 0")
	want = Path{{Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(20, 0)}}
	diff(t, want, got)
}

func TestParseSVGPathQuadratics(t *testing.T) {
	got := MustParseSVGPath("M 0 0 Q 10 20, 20 0 T 40 0")
	want := Path{
		QuadCubic(Pt(0, 0), Pt(10, 20), Pt(20, 0)),
		QuadCubic(Pt(20, 0), Pt(30, -20), Pt(40, 0)),
	}
	diff(t, want, got)
}

func TestParseSVGPathClose(t *testing.T) {
	got := MustParseSVGPath("M 0 0 L 10 0 L 10 10 Z")
	want := Path{
		LineCubic(Pt(0, 0), Pt(10, 0)),
		LineCubic(Pt(10, 0), Pt(10, 10)),
		LineCubic(Pt(10, 10), Pt(0, 0)),
	}
	diff(t, want, got)

	// Closing when already at the start doesn't add a segment.
	got = MustParseSVGPath("M 0 0 C 10 10, 20 10, 0 0 z")
	if len(got) != 1 {
		t.Errorf("got %d segments, want 1", len(got))
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	tests := []struct {
		d    string
		want string
	}{
		{"", "no segments"},
		{"M 10 10", "no segments"},
		{"10 10 L 20 20", "must start with a command"},
		{"M 0 0 C 1 2 3 4 5", "needs 6 numbers, got 5"},
		{"M 0 0 L 10 10 M 20 20 L 30 30", "second subpath"},
		{"M 0 0 A 5 5 0 0 1 10 10", "not supported"},
		{"M 0 0 X 10 10", "unknown command"},
		{"M 0 0 L 10 10 Z 5 5", "after close"},
		{"M 0 0 L 1e400 0", "non-finite"},
	}
	for _, tt := range tests {
		_, err := ParseSVGPath(tt.d)
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("ParseSVGPath(%q): got error %v, want ErrInvalidPath", tt.d, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("ParseSVGPath(%q): got error %q, want it to mention %q", tt.d, err, tt.want)
		}
	}
}

func TestPathSVGRoundTrip(t *testing.T) {
	var paths []Path
	for _, d := range []string{timelinePathData, milestonesPathData, "M 0.1 0.2 q 5 5 10 0 t 10 0"} {
		paths = append(paths, MustParseSVGPath(d))
	}
	// Degree elevation produces control points with long decimal forms.
	tenth, fifth, third := 0.1, 0.2, 3.0
	for _, v := range []float64{0.3, tenth + fifth, 1e-7 / third, 2 / third, 123456.789} {
		paths = append(paths,
			Path{LineCubic(Pt(0, 0), Pt(v, v))},
			Path{QuadCubic(Pt(v, 0), Pt(v/3, v*7), Pt(-v, v/11))},
		)
	}
	for _, p := range paths {
		s := p.SVG(SVGOptions{})
		got, err := ParseSVGPath(s)
		if err != nil {
			t.Fatalf("couldn't parse %q: %s", s, err)
		}
		diff(t, p, got)
	}
}

func TestPathSVG(t *testing.T) {
	p := MustParseSVGPath("M 10 10 h 20 v 20")
	if got, want := p.SVG(SVGOptions{MaxPrecision: 2}), "M10,10 C16.67,10 23.33,10 30,10 C30,16.67 30,23.33 30,30"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := MustParseSVGPath(milestonesPathData).SVG(SVGOptions{}),
		"M900,500 C800,500 800,400 700,400 C600,400 600,300 500,300 C400,300 400,50 300,250 C200,450 200,100 100,100"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
