package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"honnef.co/go/pathpos/internal/config"
	"honnef.co/go/pathpos/internal/layout"
	"honnef.co/go/pathpos/scroll"
)

var (
	scrollOffsets  []float64
	scrollViewport float64
	scrollTop      float64
	scrollHeight   float64
	scrollInterval time.Duration
)

var scrollCmd = &cobra.Command{
	Use:   "scroll <document.yaml>",
	Short: "Simulate scrolling through a timeline",
	Long: `Reports how far the timeline's path is drawn and which markers are shown
at each of the given scroll offsets, visited in order.

The timeline's SVG is assumed to fill a container at --top with the given
--height, on a page viewed through a viewport --viewport pixels tall.

Example:
  pathpos scroll career.yaml --scroll 0,400,800,1200 --viewport 800 --height 3000`,
	Args: cobra.ExactArgs(1),
	RunE: runScroll,
}

func init() {
	scrollCmd.Flags().Float64SliceVar(&scrollOffsets, "scroll", []float64{0}, "Scroll offsets to visit, in pixels")
	scrollCmd.Flags().Float64Var(&scrollViewport, "viewport", 800, "Viewport height in pixels")
	scrollCmd.Flags().Float64Var(&scrollTop, "top", 0, "Offset of the timeline container from the top of the page")
	scrollCmd.Flags().Float64Var(&scrollHeight, "height", 2000, "Height of the timeline container")
	scrollCmd.Flags().DurationVar(&scrollInterval, "frame-interval", 0, "Time between offsets, for smoothing the drawing (0 disables smoothing)")
}

func runScroll(cmd *cobra.Command, args []string) error {
	doc, err := config.LoadDocument(args[0])
	if err != nil {
		return err
	}
	frames, err := newEngine().Frames(doc, layout.Viewport{
		Height:        scrollViewport,
		Container:     scroll.Box{Top: scrollTop, Height: scrollHeight},
		FrameInterval: scrollInterval,
	}, scrollOffsets)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(frames)
}
