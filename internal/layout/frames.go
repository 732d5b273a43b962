package layout

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"honnef.co/go/pathpos/internal/config"
	"honnef.co/go/pathpos/scroll"
)

// Viewport describes the page a timeline is shown on.
type Viewport struct {
	// Height of the browser viewport.
	Height float64
	// Container is the element the timeline's SVG fills. Marker positions
	// are resolved relative to it.
	Container scroll.Box
	// FrameInterval is the time between successive scroll offsets, used to
	// smooth the drawing of the path. Zero disables smoothing.
	FrameInterval time.Duration
}

// MarkerFrame is the state of a marker at one scroll offset.
type MarkerFrame struct {
	ID      string   `json:"id"`
	State   string   `json:"state"`
	Visible bool     `json:"visible"`
	Events  []string `json:"events,omitempty"`
}

// Frame is the state of a timeline at one scroll offset.
type Frame struct {
	ScrollY float64 `json:"scrollY"`
	// Progress is the fraction of the path that should be drawn. Smoothed
	// trails it according to the document's scrub setting.
	Progress float64       `json:"progress"`
	Smoothed float64       `json:"smoothed"`
	Dash     scroll.Dash   `json:"dash"`
	Markers  []MarkerFrame `json:"markers"`
}

// Frames simulates scrolling a page through the offsets in scrollYs, in
// order, and returns the timeline's state after each. Markers start out
// hidden, as if the page had been loaded at the first offset.
func (e *Engine) Frames(doc *config.Document, vp Viewport, scrollYs []float64) ([]Frame, error) {
	if !(vp.Height > 0) {
		return nil, fmt.Errorf("viewport height must be positive, got %g", vp.Height)
	}
	if !(vp.Container.Height > 0) {
		return nil, fmt.Errorf("container height must be positive, got %g", vp.Container.Height)
	}
	ps, err := e.Positioner(doc)
	if err != nil {
		return nil, err
	}
	drawTrigger, revealTrigger, actions, err := doc.Scroll.Triggers()
	if err != nil {
		return nil, err
	}

	placed := ps.Place(doc.MarkerList())
	toggles := make([]*scroll.Toggle, len(placed))
	boxes := make([]scroll.Box, len(placed))
	visible := make([]bool, len(placed))
	for i, pm := range placed {
		toggles[i] = scroll.NewToggle(revealTrigger, actions)
		boxes[i] = scroll.Box{Top: vp.Container.Top + pm.Percent.Y/100*vp.Container.Height}
	}

	var scrub scroll.Scrub
	if vp.FrameInterval > 0 {
		scrub.Lag = time.Duration(doc.Scroll.ScrubSeconds() * float64(time.Second))
	}
	frames := make([]Frame, 0, len(scrollYs))
	for _, y := range scrollYs {
		progress := drawTrigger.Progress(y, vp.Container, vp.Height)
		f := Frame{
			ScrollY:  y,
			Progress: progress,
			Smoothed: scrub.Update(progress, vp.FrameInterval),
		}
		f.Dash = scroll.DrawState(ps.Length(), f.Smoothed)
		for i, pm := range placed {
			trs := toggles[i].Update(y, boxes[i], vp.Height)
			visible[i] = scroll.Visible(visible[i], trs)
			mf := MarkerFrame{
				ID:      pm.ID,
				State:   toggles[i].State().String(),
				Visible: visible[i],
			}
			for _, tr := range trs {
				mf.Events = append(mf.Events, fmt.Sprintf("%s:%s", tr.Event, tr.Action))
			}
			f.Markers = append(f.Markers, mf)
		}
		frames = append(frames, f)
	}
	e.log.Debug("Simulated scrolling",
		zap.Int("frames", len(frames)),
		zap.Int("markers", len(placed)))
	return frames, nil
}
