// Package config loads timeline documents and tool settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"honnef.co/go/pathpos"
	"honnef.co/go/pathpos/scroll"
)

// Document describes a timeline: a path in a view box and the markers
// placed along it.
type Document struct {
	Title     string         `yaml:"title,omitempty"`
	ViewBox   string         `yaml:"viewBox"`
	Path      string         `yaml:"path"`
	Tolerance float64        `yaml:"tolerance,omitempty"` // 0 uses the tool's default
	Markers   []MarkerEntry  `yaml:"markers"`
	Scroll    ScrollSettings `yaml:"scroll,omitempty"`
}

// MarkerEntry is a marker as written in a document.
type MarkerEntry struct {
	ID       string  `yaml:"id"`
	Progress float64 `yaml:"progress"`
	Label    string  `yaml:"label,omitempty"`
}

// ScrollSettings configures scroll-driven drawing and marker reveals. Empty
// fields use the defaults below.
type ScrollSettings struct {
	DrawStart     string  `yaml:"drawStart,omitempty"`
	DrawEnd       string  `yaml:"drawEnd,omitempty"`
	RevealStart   string  `yaml:"revealStart,omitempty"`
	RevealEnd     string  `yaml:"revealEnd,omitempty"`
	ToggleActions string  `yaml:"toggleActions,omitempty"`
	Scrub         float64 `yaml:"scrub,omitempty"` // seconds
}

const (
	DefaultDrawStart     = "top top"
	DefaultDrawEnd       = "bottom bottom"
	DefaultRevealStart   = "top 85%"
	DefaultRevealEnd     = "bottom top"
	DefaultToggleActions = "play none none reverse"
	DefaultScrub         = 1.5
)

// ParseDocument decodes and validates a YAML document. Unknown fields are
// rejected.
func ParseDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadDocument reads and parses the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document to path as YAML.
func (d *Document) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Validate checks that the document describes a usable timeline.
func (d *Document) Validate() error {
	if _, err := d.ParsedViewBox(); err != nil {
		return fmt.Errorf("viewBox: %w", err)
	}
	if _, err := d.ParsedPath(); err != nil {
		return fmt.Errorf("path: %w", err)
	}
	if d.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", d.Tolerance)
	}
	seen := make(map[string]bool, len(d.Markers))
	for i, m := range d.Markers {
		if m.ID == "" {
			return fmt.Errorf("marker %d has no id", i)
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate marker id %q", m.ID)
		}
		seen[m.ID] = true
	}
	if _, _, _, err := d.Scroll.Triggers(); err != nil {
		return fmt.Errorf("scroll: %w", err)
	}
	return nil
}

func (d *Document) ParsedViewBox() (pathpos.ViewBox, error) {
	return pathpos.ParseViewBox(d.ViewBox)
}

func (d *Document) ParsedPath() (pathpos.Path, error) {
	return pathpos.ParseSVGPath(d.Path)
}

// EffectiveTolerance returns the document's tolerance, or def if it doesn't
// set one.
func (d *Document) EffectiveTolerance(def float64) float64 {
	if d.Tolerance > 0 {
		return d.Tolerance
	}
	return def
}

// MarkerList returns the document's markers in order.
func (d *Document) MarkerList() []pathpos.Marker {
	out := make([]pathpos.Marker, len(d.Markers))
	for i, m := range d.Markers {
		out[i] = pathpos.Marker{ID: m.ID, Progress: m.Progress}
	}
	return out
}

// Labels maps marker IDs to labels, for markers that have one.
func (d *Document) Labels() map[string]string {
	labels := make(map[string]string)
	for _, m := range d.Markers {
		if m.Label != "" {
			labels[m.ID] = m.Label
		}
	}
	return labels
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Triggers returns the trigger that draws the path, the trigger that
// reveals markers and the actions markers take on reveal.
func (s ScrollSettings) Triggers() (draw, reveal scroll.Trigger, actions scroll.ToggleActions, err error) {
	draw, err = scroll.ParseTrigger(orDefault(s.DrawStart, DefaultDrawStart), orDefault(s.DrawEnd, DefaultDrawEnd))
	if err != nil {
		return
	}
	reveal, err = scroll.ParseTrigger(orDefault(s.RevealStart, DefaultRevealStart), orDefault(s.RevealEnd, DefaultRevealEnd))
	if err != nil {
		return
	}
	actions, err = scroll.ParseToggleActions(orDefault(s.ToggleActions, DefaultToggleActions))
	return
}

// ScrubSeconds returns the scrub lag, or DefaultScrub if none is set.
// Negative values disable smoothing.
func (s ScrollSettings) ScrubSeconds() float64 {
	switch {
	case s.Scrub == 0:
		return DefaultScrub
	case s.Scrub < 0:
		return 0
	default:
		return s.Scrub
	}
}
