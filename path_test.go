package pathpos

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestNewPath(t *testing.T) {
	a := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}
	b := CubicBez{Pt(3, 0), Pt(4, -1), Pt(5, -1), Pt(6, 0)}
	segs := []CubicBez{a, b}
	p, err := NewPath(segs...)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Path{a, b}, p)

	// The path doesn't alias its input.
	segs[0].P1 = Pt(100, 100)
	if p[0].P1 == segs[0].P1 {
		t.Error("NewPath retained the caller's slice")
	}
	diff(t, Pt(0, 0), p.Start())
	diff(t, Pt(6, 0), p.End())
}

func TestNewPathInvalid(t *testing.T) {
	tests := []struct {
		name string
		segs []CubicBez
	}{
		{"empty", nil},
		{"gap", []CubicBez{
			LineCubic(Pt(0, 0), Pt(1, 0)),
			LineCubic(Pt(1, 1), Pt(2, 0)),
		}},
		{"NaN", []CubicBez{{Pt(0, 0), Pt(math.NaN(), 0), Pt(1, 1), Pt(2, 2)}}},
		{"Inf", []CubicBez{{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(2, math.Inf(-1))}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPath(tt.segs...); !errors.Is(err, ErrInvalidPath) {
				t.Errorf("got error %v, want ErrInvalidPath", err)
			}
		})
	}
}

func TestMustNewPathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewPath didn't panic on empty input")
		}
	}()
	MustNewPath()
}

func TestPathControlPoints(t *testing.T) {
	p := MustParseSVGPath("M 0 0 C 1 1, 2 1, 3 0 C 4 -1, 5 -1, 6 0")
	want := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0), Pt(4, -1), Pt(5, -1), Pt(6, 0)}
	diff(t, want, slices.Collect(p.ControlPoints()))
	diff(t, Rect{0, -1, 6, 1}, p.ControlBox())
	diff(t, []CubicBez(p), slices.Collect(p.Segments()))
}
