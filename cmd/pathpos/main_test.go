package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"honnef.co/go/pathpos/internal/layout"
)

const milestonesDoc = `title: Company milestones
viewBox: "0 0 1000 600"
path: >-
  M 900 500 C 800 500, 800 400, 700 400 C 600 400, 600 300, 500 300
  C 400 300, 400 50, 300 250 C 200 450, 200 100, 100 100
markers:
  - {id: founded, progress: 0, label: Founded}
  - {id: today, progress: 1, label: Today}
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func setup(t *testing.T) *cobra.Command {
	t.Helper()
	logger = zap.NewNop()
	tolerance = 0.25
	workers = 2
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	return cmd
}

func output(cmd *cobra.Command) string {
	return cmd.OutOrStdout().(*bytes.Buffer).String()
}

func TestPlaceJSON(t *testing.T) {
	cmd := setup(t)
	path := writeDoc(t, "milestones.yaml", milestonesDoc)

	require.NoError(t, runPlace(cmd, []string{path, path}))

	var docs []placedDocument
	require.NoError(t, json.Unmarshal([]byte(output(cmd)), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, path, docs[0].Document)
	assert.Equal(t, "Company milestones", docs[0].Title)
	require.Len(t, docs[0].Markers, 2)
	founded := docs[0].Markers[0]
	assert.Equal(t, "founded", founded.ID)
	assert.Equal(t, 900.0, founded.X)
	assert.Equal(t, 500.0, founded.Y)
	assert.InDelta(t, 90, founded.XPercent, 1e-9)
	assert.InDelta(t, 250.0/3, founded.YPercent, 1e-9)
	assert.Equal(t, "today", docs[0].Markers[1].ID)
	assert.InDelta(t, 10, docs[0].Markers[1].XPercent, 1e-9)
	assert.InDelta(t, 100.0/6, docs[0].Markers[1].YPercent, 1e-9)
}

func TestPlaceCSS(t *testing.T) {
	cmd := setup(t)
	placeFormat = "css"
	defer func() { placeFormat = "json" }()
	path := writeDoc(t, "milestones.yaml", milestonesDoc)

	require.NoError(t, runPlace(cmd, []string{path}))
	want := "/* " + path + " */\n" +
		`[data-marker="founded"] { left: 90.00%; top: 83.33%; }` + "\n" +
		`[data-marker="today"] { left: 10.00%; top: 16.67%; }` + "\n"
	assert.Equal(t, want, output(cmd))
}

func TestPlaceErrors(t *testing.T) {
	cmd := setup(t)
	dir := t.TempDir()
	assert.Error(t, runPlace(cmd, []string{filepath.Join(dir, "missing.yaml")}))

	bad := writeDoc(t, "bad.yaml", "viewBox: 0 0 10 10\npath: M 0 0 A 1 1 0 0 0 5 5\n")
	err := runPlace(cmd, []string{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")

	placeFormat = "xml"
	defer func() { placeFormat = "json" }()
	assert.Error(t, runPlace(cmd, []string{writeDoc(t, "ok.yaml", milestonesDoc)}))
}

func TestRenderSVG(t *testing.T) {
	cmd := setup(t)
	path := writeDoc(t, "milestones.yaml", milestonesDoc)

	require.NoError(t, runRender(cmd, []string{path}))
	out := output(cmd)
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1000 600"`), out)
	assert.Contains(t, out, `>Founded</text>`)
	assert.NotContains(t, out, "stroke-dasharray")
}

func TestRenderPNG(t *testing.T) {
	cmd := setup(t)
	renderFormat = "png"
	renderOutput = filepath.Join(t.TempDir(), "out.png")
	defer func() {
		renderFormat = "svg"
		renderOutput = ""
	}()
	path := writeDoc(t, "milestones.yaml", milestonesDoc)

	require.NoError(t, runRender(cmd, []string{path}))
	data, err := os.ReadFile(renderOutput)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
	assert.Empty(t, output(cmd))
}

func TestRenderErrors(t *testing.T) {
	cmd := setup(t)
	path := writeDoc(t, "milestones.yaml", milestonesDoc)

	renderWatch = true
	assert.Error(t, runRender(cmd, []string{path}))
	renderWatch = false

	renderFormat = "gif"
	assert.Error(t, runRender(cmd, []string{path}))
	renderFormat = "svg"
}

func TestScroll(t *testing.T) {
	cmd := setup(t)
	scrollOffsets = []float64{0, 700, 2000}
	scrollViewport = 800
	scrollTop = 0
	scrollHeight = 1200
	defer func() { scrollOffsets = []float64{0} }()
	path := writeDoc(t, "milestones.yaml", milestonesDoc)

	require.NoError(t, runScroll(cmd, []string{path}))
	var frames []layout.Frame
	require.NoError(t, json.Unmarshal([]byte(output(cmd)), &frames))
	require.Len(t, frames, 3)
	assert.Equal(t, 0.0, frames[0].Progress)
	assert.Equal(t, 1.0, frames[2].Progress)
	assert.Equal(t, 0.0, frames[2].Dash.Offset)

	// "today" sits 1/6 of the way down the container; "founded" 5/6.
	assert.True(t, frames[0].Markers[1].Visible)
	assert.False(t, frames[0].Markers[0].Visible)
	assert.True(t, frames[1].Markers[0].Visible)
}

func TestRootCommand(t *testing.T) {
	t.Setenv("PATHPOS_TOLERANCE", "0.5")
	t.Setenv("PATHPOS_WORKERS", "")
	t.Setenv("PATHPOS_LOG_LEVEL", "error")
	path := writeDoc(t, "milestones.yaml", milestonesDoc)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"place", path})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, 0.5, tolerance)
	assert.Equal(t, 4, workers)
	assert.Contains(t, buf.String(), `"id": "founded"`)
}

func TestRootCommandBadSettings(t *testing.T) {
	t.Setenv("PATHPOS_WORKERS", "many")
	rootCmd.SetArgs([]string{"place", "doc.yaml"})
	defer rootCmd.SetArgs(nil)
	assert.Error(t, rootCmd.Execute())
}

func TestRootCommandBadFlags(t *testing.T) {
	t.Setenv("PATHPOS_TOLERANCE", "")
	t.Setenv("PATHPOS_WORKERS", "")
	t.Setenv("PATHPOS_LOG_LEVEL", "")
	path := writeDoc(t, "milestones.yaml", milestonesDoc)

	for _, args := range [][]string{
		{"--tolerance=0"},
		{"--tolerance=-1"},
		{"--workers=0"},
	} {
		t.Run(args[0], func(t *testing.T) {
			defer resetFlags(t, "tolerance", "workers")
			rootCmd.SetArgs(append([]string{"place", path}, args...))
			defer rootCmd.SetArgs(nil)
			err := rootCmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must be")
		})
	}
}

// resetFlags restores persistent flags to their defaults, since rootCmd is
// shared between tests.
func resetFlags(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		f := rootCmd.PersistentFlags().Lookup(name)
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
}
