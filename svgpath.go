package pathpos

import (
	"fmt"
	"strconv"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// numberScanner reads numbers and commands from SVG attribute values, where
// numbers may be separated by whitespace, commas, or nothing at all, as in
// "10-5" or "0.5.5".
type numberScanner struct {
	b   []byte
	pos int
}

func newNumberScanner(s string) *numberScanner {
	return &numberScanner{b: []byte(s)}
}

func (sc *numberScanner) skipSeparators() {
	for sc.pos < len(sc.b) {
		switch sc.b[sc.pos] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *numberScanner) done() bool {
	sc.skipSeparators()
	return sc.pos >= len(sc.b)
}

func (sc *numberScanner) number() (float64, bool) {
	sc.skipSeparators()
	if sc.pos >= len(sc.b) {
		return 0, false
	}
	// pstrconv finds where the number ends; strconv rounds it correctly.
	v, n := pstrconv.ParseFloat(sc.b[sc.pos:])
	if n == 0 {
		return 0, false
	}
	if exact, err := strconv.ParseFloat(string(sc.b[sc.pos:sc.pos+n]), 64); err == nil {
		v = exact
	}
	sc.pos += n
	return v, true
}

// command consumes and returns the next byte if it is an ASCII letter.
func (sc *numberScanner) command() (byte, bool) {
	sc.skipSeparators()
	if sc.pos >= len(sc.b) {
		return 0, false
	}
	c := sc.b[sc.pos]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		sc.pos++
		return c, true
	}
	return 0, false
}

// svgArgCount maps upper case SVG path commands to the number of arguments
// they take.
var svgArgCount = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'Z': 0,
}

// MustParseSVGPath is like [ParseSVGPath] but panics on invalid input. It is
// intended for path data known at compile time.
func MustParseSVGPath(d string) Path {
	p, err := ParseSVGPath(d)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVGPath parses SVG path data, such as the d attribute of a path
// element, into a [Path].
//
// The commands M, L, H, V, C, S, Q, T, and Z are supported, in both their
// absolute (upper case) and relative (lower case) forms, including implicit
// repetition of the previous command. Lines and quadratic Béziers are
// converted to equivalent cubic Béziers, and Z adds a line back to the start
// of the path if the current point isn't already there.
//
// The path data must describe exactly one subpath: a move command is only
// allowed before the first drawing command. Elliptical arcs (A) are not
// supported.
//
// Errors wrap [ErrInvalidPath].
func ParseSVGPath(d string) (Path, error) {
	sc := newNumberScanner(d)
	var (
		p        Path
		start    Point
		cur      Point
		cmd      byte
		prevCmd  byte
		cubicCtl Point // second control point of the previous C or S
		quadCtl  Point // control point of the previous Q or T
		args     [6]float64
	)
	fail := func(format string, v ...any) (Path, error) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, fmt.Sprintf(format, v...))
	}

	for !sc.done() {
		at := sc.pos + 1
		if c, ok := sc.command(); ok {
			cmd = c
		} else if cmd == 0 {
			return fail("path data must start with a command, found %q at position %d", sc.b[sc.pos], at)
		} else if cmd == 'Z' || cmd == 'z' {
			return fail("unexpected number after close command at position %d", at)
		}

		upper := cmd
		if upper >= 'a' && upper <= 'z' {
			upper -= 'a' - 'A'
		}
		rel := cmd != upper
		if upper == 'A' {
			return fail("elliptical arc command %q at position %d is not supported", cmd, at)
		}
		n, ok := svgArgCount[upper]
		if !ok {
			return fail("unknown command %q at position %d", cmd, at)
		}
		for i := range n {
			v, ok := sc.number()
			if !ok {
				return fail("command %q at position %d needs %d numbers, got %d", cmd, at, n, i)
			}
			args[i] = v
		}
		pt := func(i int) Point {
			q := Pt(args[i], args[i+1])
			if rel {
				q = q.Translate(Vec2(cur))
			}
			return q
		}

		switch upper {
		case 'M':
			if len(p) > 0 {
				return fail("move command at position %d starts a second subpath", at)
			}
			cur = pt(0)
			start = cur
			// Subsequent pairs are implicit line commands.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			next := pt(0)
			p = append(p, LineCubic(cur, next))
			cur = next
		case 'H':
			next := Pt(args[0], cur.Y)
			if rel {
				next.X += cur.X
			}
			p = append(p, LineCubic(cur, next))
			cur = next
		case 'V':
			next := Pt(cur.X, args[0])
			if rel {
				next.Y += cur.Y
			}
			p = append(p, LineCubic(cur, next))
			cur = next
		case 'C':
			c := CubicBez{cur, pt(0), pt(2), pt(4)}
			p = append(p, c)
			cubicCtl = c.P2
			cur = c.P3
		case 'S':
			p1 := cur
			if prevCmd == 'C' || prevCmd == 'S' {
				p1 = cur.Translate(cur.Sub(cubicCtl))
			}
			c := CubicBez{cur, p1, pt(0), pt(2)}
			p = append(p, c)
			cubicCtl = c.P2
			cur = c.P3
		case 'Q':
			ctl, next := pt(0), pt(2)
			p = append(p, QuadCubic(cur, ctl, next))
			quadCtl = ctl
			cur = next
		case 'T':
			ctl := cur
			if prevCmd == 'Q' || prevCmd == 'T' {
				ctl = cur.Translate(cur.Sub(quadCtl))
			}
			next := pt(0)
			p = append(p, QuadCubic(cur, ctl, next))
			quadCtl = ctl
			cur = next
		case 'Z':
			if cur != start {
				p = append(p, LineCubic(cur, start))
			}
			cur = start
		}
		prevCmd = upper
	}

	if len(p) == 0 {
		return fail("path data %q contains no segments", d)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
