package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/pathpos/internal/layout"
)

var (
	placeFormat   string
	placeDecimals int
)

var placeCmd = &cobra.Command{
	Use:   "place <document.yaml>...",
	Short: "Resolve markers to view box percentages",
	Long: `Resolves the markers of one or more timeline documents to points on their
paths and to percentages of their view boxes.

Formats:
  json  one object per document, with markers in document order
  css   one rule per marker, positioning elements with left/top`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlace,
}

func init() {
	placeCmd.Flags().StringVarP(&placeFormat, "format", "f", "json", "Output format: json or css")
	placeCmd.Flags().IntVar(&placeDecimals, "decimals", 2, "Decimals of CSS percentages")
}

type placedMarker struct {
	ID       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	XPercent float64 `json:"xPercent"`
	YPercent float64 `json:"yPercent"`
}

type placedDocument struct {
	Document string         `json:"document"`
	Title    string         `json:"title,omitempty"`
	Length   float64        `json:"length"`
	Markers  []placedMarker `json:"markers"`
}

func runPlace(cmd *cobra.Command, args []string) error {
	if placeFormat != "json" && placeFormat != "css" {
		return fmt.Errorf("unknown format %q", placeFormat)
	}
	ctx, cancel := commandContext(true)
	defer cancel()

	e := newEngine()
	jobs, err := e.LoadAll(ctx, args)
	if err != nil {
		return err
	}
	results, err := e.LayoutAll(ctx, jobs)
	if err != nil {
		return err
	}
	hits, misses := e.CacheStats()
	logger.Debug("Placed markers", zap.Int("documents", len(results)), zap.Int("cache_hits", hits), zap.Int("cache_misses", misses))

	out := cmd.OutOrStdout()
	if placeFormat == "css" {
		return writeCSS(out, results, placeDecimals)
	}
	docs := make([]placedDocument, len(results))
	for i, res := range results {
		docs[i] = placedDocument{
			Document: res.Name,
			Title:    res.Title,
			Length:   res.Length,
			Markers:  make([]placedMarker, len(res.Markers)),
		}
		for j, pm := range res.Markers {
			docs[i].Markers[j] = placedMarker{
				ID:       pm.ID,
				X:        pm.Point.X,
				Y:        pm.Point.Y,
				XPercent: pm.Percent.X,
				YPercent: pm.Percent.Y,
			}
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

func writeCSS(w io.Writer, results []layout.Result, decimals int) error {
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "/* %s */\n", res.Name); err != nil {
			return err
		}
		for _, pm := range res.Markers {
			left, top := pm.Percent.CSS(decimals)
			if _, err := fmt.Fprintf(w, "[data-marker=%q] { left: %s; top: %s; }\n", pm.ID, left, top); err != nil {
				return err
			}
		}
	}
	return nil
}
