// Command pathpos places markers along the paths of timeline documents and
// renders them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/pathpos/internal/config"
	"honnef.co/go/pathpos/internal/layout"
)

var (
	// Global flags
	verbose   bool
	tolerance float64
	workers   int
	timeout   time.Duration

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pathpos",
	Short: "Place markers along SVG paths",
	Long: `pathpos positions markers along the curve of a timeline.

A timeline document names an SVG view box, a path made of lines and Bézier
curves, and markers at fractions of the path's length. pathpos resolves each
marker to a point on the path and to percentages of the view box, ready for
CSS left/top placement over the SVG.

Settings are read from PATHPOS_TOLERANCE, PATHPOS_WORKERS and
PATHPOS_LOG_LEVEL; flags take precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("tolerance") {
			settings.Tolerance = tolerance
		}
		if cmd.Flags().Changed("workers") {
			settings.Workers = workers
		}
		if err := settings.Validate(); err != nil {
			return err
		}
		tolerance = settings.Tolerance
		workers = settings.Workers

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(settings.Level())
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", 0.25, "Maximum distance between a path and its flattened polyline (or set PATHPOS_TOLERANCE)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 4, "Number of documents processed concurrently (or set PATHPOS_WORKERS)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")

	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(scrollCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEngine() *layout.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return layout.New(logger, layout.Options{Workers: workers, Tolerance: tolerance})
}

// commandContext returns a context that is cancelled on SIGINT or SIGTERM,
// or once the timeout passes if withTimeout is set.
func commandContext(withTimeout bool) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	if !withTimeout || timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}
