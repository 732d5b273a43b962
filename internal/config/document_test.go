package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/pathpos"
	"honnef.co/go/pathpos/scroll"
)

const timelineYAML = `
title: Career
viewBox: "0 0 1000 2000"
path: >-
  M 250 100 C 500 300, 300 450, 700 600
  C 1100 750, 800 900, 400 1100
  C 0 1300, 200 1500, 700 1700
  C 1200 1900, 400 1950, 350 1950
markers:
  - id: "1985"
    progress: 0.03
    label: MLA
  - id: "1989"
    progress: 0.20
  - id: "2024"
    progress: 0.98
    label: Today
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(timelineYAML))
	require.NoError(t, err)

	assert.Equal(t, "Career", doc.Title)
	vb, err := doc.ParsedViewBox()
	require.NoError(t, err)
	assert.Equal(t, pathpos.ViewBox{MinX: 0, MinY: 0, Width: 1000, Height: 2000}, vb)

	p, err := doc.ParsedPath()
	require.NoError(t, err)
	assert.Len(t, p, 4)
	assert.Equal(t, pathpos.Pt(250, 100), p.Start())

	assert.Equal(t, []pathpos.Marker{
		{ID: "1985", Progress: 0.03},
		{ID: "1989", Progress: 0.20},
		{ID: "2024", Progress: 0.98},
	}, doc.MarkerList())
	assert.Equal(t, map[string]string{"1985": "MLA", "2024": "Today"}, doc.Labels())
	assert.Equal(t, 0.25, doc.EffectiveTolerance(0.25))
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"unknown field", "viewBox: 0 0 1 1\npath: M 0 0 L 1 1\ncolour: red\n"},
		{"bad view box", "viewBox: 0 0 0 1\npath: M 0 0 L 1 1\n"},
		{"missing path", "viewBox: 0 0 1 1\n"},
		{"bad path", "viewBox: 0 0 1 1\npath: M 0 0 A 1 1 0 0 0 1 1\n"},
		{"negative tolerance", "viewBox: 0 0 1 1\npath: M 0 0 L 1 1\ntolerance: -1\n"},
		{"missing id", "viewBox: 0 0 1 1\npath: M 0 0 L 1 1\nmarkers:\n  - progress: 0.5\n"},
		{"duplicate id", "viewBox: 0 0 1 1\npath: M 0 0 L 1 1\nmarkers:\n  - {id: a, progress: 0.1}\n  - {id: a, progress: 0.2}\n"},
		{"bad anchor", "viewBox: 0 0 1 1\npath: M 0 0 L 1 1\nscroll:\n  revealStart: top\n"},
		{"bad actions", "viewBox: 0 0 1 1\npath: M 0 0 L 1 1\nscroll:\n  toggleActions: play\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestDocumentSaveLoad(t *testing.T) {
	doc, err := ParseDocument([]byte(timelineYAML))
	require.NoError(t, err)
	doc.Tolerance = 0.5
	doc.Scroll.RevealStart = "top 90%"

	path := filepath.Join(t.TempDir(), "docs", "timeline.yaml")
	require.NoError(t, doc.Save(path))

	loaded, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
	assert.Equal(t, 0.5, loaded.EffectiveTolerance(0.25))
}

func TestLoadDocumentErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadDocument(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("viewBox: [\n"), 0644))
	_, err = LoadDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestScrollSettingsDefaults(t *testing.T) {
	draw, reveal, actions, err := ScrollSettings{}.Triggers()
	require.NoError(t, err)
	assert.Equal(t, scroll.ContainerTrigger, draw)
	assert.Equal(t, scroll.RevealTrigger, reveal)
	assert.Equal(t, scroll.RevealActions, actions)
	assert.Equal(t, DefaultScrub, ScrollSettings{}.ScrubSeconds())
	assert.Equal(t, 0.0, ScrollSettings{Scrub: -1}.ScrubSeconds())
	assert.Equal(t, 0.5, ScrollSettings{Scrub: 0.5}.ScrubSeconds())
}

func TestScrollSettingsCustom(t *testing.T) {
	spec := ScrollSettings{
		DrawStart:     "top center",
		ToggleActions: "play reverse play reverse",
	}
	draw, _, actions, err := spec.Triggers()
	require.NoError(t, err)
	assert.Equal(t, scroll.Anchor{Element: scroll.Top, Viewport: scroll.Center}, draw.Start)
	assert.Equal(t, scroll.Anchor{Element: scroll.Bottom, Viewport: scroll.Bottom}, draw.End)
	assert.Equal(t, scroll.ToggleActions{scroll.Play, scroll.Reverse, scroll.Play, scroll.Reverse}, actions)
}
