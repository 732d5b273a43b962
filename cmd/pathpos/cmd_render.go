package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/pathpos/internal/config"
	"honnef.co/go/pathpos/internal/layout"
	"honnef.co/go/pathpos/render"
)

var (
	renderFormat   string
	renderOutput   string
	renderWidth    int
	renderPadding  int
	renderProgress float64
	renderWatch    bool
)

var renderCmd = &cobra.Command{
	Use:   "render <document.yaml>",
	Short: "Render a timeline as SVG or PNG",
	Long: `Renders a timeline document: its path, with a dot and label for every marker.

With --progress, only that fraction of the path is drawn, as it would appear
partway through the scroll animation. With --watch, the output is rewritten
whenever the document changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "svg", "Output format: svg or png")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 500, "Width of PNG output in pixels")
	renderCmd.Flags().IntVar(&renderPadding, "padding", 16, "Padding of PNG output in pixels")
	renderCmd.Flags().Float64Var(&renderProgress, "progress", 1, "Fraction of the path to draw")
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "Re-render when the document changes (requires --output)")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderFormat != "svg" && renderFormat != "png" {
		return fmt.Errorf("unknown format %q", renderFormat)
	}
	if renderWatch && renderOutput == "" {
		return fmt.Errorf("--watch requires --output")
	}
	path := args[0]
	e := newEngine()
	partial := render.Partial{
		Enabled:  cmd.Flags().Changed("progress"),
		Progress: renderProgress,
	}

	renderOnce := func() error {
		doc, err := config.LoadDocument(path)
		if err != nil {
			return err
		}
		tl, err := e.Timeline(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		var buf bytes.Buffer
		switch renderFormat {
		case "svg":
			err = render.WriteSVG(&buf, tl, render.SVGOptions{Partial: partial})
		case "png":
			err = render.WritePNG(&buf, tl, render.RasterOptions{
				Width:       renderWidth,
				Padding:     renderPadding,
				Supersample: 2,
				Partial:     partial,
			})
		}
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", path, err)
		}
		if renderOutput == "" {
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(renderOutput, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Rendered timeline",
			zap.String("document", path),
			zap.String("output", renderOutput),
			zap.String("format", renderFormat))
		return nil
	}

	if err := renderOnce(); err != nil {
		return err
	}
	if !renderWatch {
		return nil
	}

	ctx, cancel := commandContext(false)
	defer cancel()
	logger.Info("Watching for changes", zap.String("document", path))
	return layout.Watch(ctx, logger, []string{path}, 200*time.Millisecond, func(string) {
		// Keep watching after failed renders; the next save may fix them.
		if err := renderOnce(); err != nil {
			logger.Error("Render failed", zap.Error(err))
		}
	})
}
