// Package render draws timelines: a path with markers placed along it.
//
// [WriteSVG] produces a standalone SVG document in the path's own view box.
// [WritePNG] rasterizes a preview image.
package render

import (
	"errors"

	"honnef.co/go/pathpos"
)

// Timeline is a path with markers to draw on it.
type Timeline struct {
	Positioner *pathpos.Positioner
	Markers    []pathpos.Marker
	// Labels maps marker IDs to the text drawn next to them. Markers
	// without a label are labelled with their ID.
	Labels map[string]string
}

func (tl Timeline) label(id string) string {
	if s, ok := tl.Labels[id]; ok {
		return s
	}
	return id
}

func (tl Timeline) validate() error {
	if tl.Positioner == nil {
		return errors.New("timeline has no path")
	}
	return nil
}

// Partial limits drawing of the path to a prefix of it, the way a
// scroll-driven stroke animation reveals the path.
type Partial struct {
	// Enabled turns partial drawing on. When it is false the whole path
	// is drawn.
	Enabled bool
	// Progress is the fraction of the path's length that has been drawn.
	Progress float64
}

func (p Partial) progress() float64 {
	if !p.Enabled {
		return 1
	}
	return pathpos.ClampProgress(p.Progress)
}
