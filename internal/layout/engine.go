// Package layout positions the markers of timeline documents.
package layout

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/pathpos"
	"honnef.co/go/pathpos/internal/config"
	"honnef.co/go/pathpos/render"
)

// Options configures an Engine.
type Options struct {
	// Workers bounds the number of documents laid out concurrently.
	Workers int
	// Tolerance is used for documents that don't set their own.
	Tolerance float64
}

// Engine lays out timeline documents. Positioners are cached, so documents
// sharing a path and view box flatten it only once. An Engine is safe for
// concurrent use.
type Engine struct {
	log  *zap.Logger
	opts Options

	mu     sync.Mutex
	cache  map[cacheKey]*pathpos.Positioner
	hits   int
	misses int
}

type cacheKey struct {
	path      string
	viewBox   string
	tolerance float64
}

func New(log *zap.Logger, opts Options) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if !(opts.Tolerance > 0) {
		opts.Tolerance = pathpos.DefaultTolerance
	}
	return &Engine{
		log:   log,
		opts:  opts,
		cache: make(map[cacheKey]*pathpos.Positioner),
	}
}

// CacheStats returns the number of cache hits and misses so far.
func (e *Engine) CacheStats() (hits, misses int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hits, e.misses
}

// Positioner returns the positioner for doc's path and view box.
func (e *Engine) Positioner(doc *config.Document) (*pathpos.Positioner, error) {
	key := cacheKey{
		path:      doc.Path,
		viewBox:   doc.ViewBox,
		tolerance: doc.EffectiveTolerance(e.opts.Tolerance),
	}

	e.mu.Lock()
	ps, ok := e.cache[key]
	if ok {
		e.hits++
	} else {
		e.misses++
	}
	e.mu.Unlock()
	if ok {
		return ps, nil
	}

	vb, err := doc.ParsedViewBox()
	if err != nil {
		return nil, fmt.Errorf("viewBox: %w", err)
	}
	p, err := doc.ParsedPath()
	if err != nil {
		return nil, fmt.Errorf("path: %w", err)
	}
	ps, err = pathpos.NewPositioner(p, vb, key.tolerance)
	if err != nil {
		return nil, err
	}
	e.log.Debug("Flattened path",
		zap.Int("segments", len(p)),
		zap.Int("samples", ps.Polyline().Len()),
		zap.Float64("length", ps.Length()),
		zap.Float64("tolerance", key.tolerance))

	e.mu.Lock()
	defer e.mu.Unlock()
	// Another goroutine may have raced us; keep the first result.
	if cached, ok := e.cache[key]; ok {
		return cached, nil
	}
	e.cache[key] = ps
	return ps, nil
}

// Job is a document to lay out. Name identifies it in results and errors.
type Job struct {
	Name string
	Doc  *config.Document
}

// Result is the layout of one document.
type Result struct {
	Name    string                     `json:"name"`
	Title   string                     `json:"title,omitempty"`
	Length  float64                    `json:"length"`
	Markers []pathpos.PositionedMarker `json:"markers"`
}

// Layout positions the markers of a single document.
func (e *Engine) Layout(job Job) (Result, error) {
	ps, err := e.Positioner(job.Doc)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", job.Name, err)
	}
	if ps.IsDegenerate() {
		e.log.Warn("Path has zero length", zap.String("document", job.Name))
	}
	return Result{
		Name:    job.Name,
		Title:   job.Doc.Title,
		Length:  ps.Length(),
		Markers: ps.Place(job.Doc.MarkerList()),
	}, nil
}

// LayoutAll lays out jobs concurrently, with at most Options.Workers in
// flight. Results are in the order of jobs. The first error cancels the
// remaining work.
func (e *Engine) LayoutAll(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.opts.Workers)
	for i, job := range jobs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := e.Layout(job)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	e.log.Info("Laid out documents", zap.Int("documents", len(jobs)))
	return results, nil
}

// LoadAll loads the documents at paths concurrently.
func (e *Engine) LoadAll(ctx context.Context, paths []string) ([]Job, error) {
	jobs := make([]Job, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.opts.Workers)
	for i, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			doc, err := config.LoadDocument(path)
			if err != nil {
				return err
			}
			jobs[i] = Job{Name: path, Doc: doc}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Timeline builds the renderable timeline for doc.
func (e *Engine) Timeline(doc *config.Document) (render.Timeline, error) {
	ps, err := e.Positioner(doc)
	if err != nil {
		return render.Timeline{}, err
	}
	return render.Timeline{
		Positioner: ps,
		Markers:    doc.MarkerList(),
		Labels:     doc.Labels(),
	}, nil
}
