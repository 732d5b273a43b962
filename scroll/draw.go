package scroll

import (
	"math"
	"time"

	"honnef.co/go/pathpos"
)

// Dash holds stroke-dasharray and stroke-dashoffset values.
type Dash struct {
	Array  float64 `json:"array"`
	Offset float64 `json:"offset"`
}

// DrawState returns the dash values that show the first progress fraction
// of a stroke that is length long. A single dash as long as the path is
// shifted out of view by the part that hasn't been drawn yet.
func DrawState(length, progress float64) Dash {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Dash{}
	}
	return Dash{
		Array:  length,
		Offset: length * (1 - pathpos.ClampProgress(progress)),
	}
}

// Scrub smooths progress so that it trails its target, the way scrubbed
// scroll animations lag behind the scroll position. The zero value follows
// its target immediately.
type Scrub struct {
	// Lag is roughly the time it takes to catch up with the target.
	Lag time.Duration

	value float64
	init  bool
}

// Value returns the current smoothed progress.
func (s *Scrub) Value() float64 { return s.value }

// Reset jumps to progress without smoothing.
func (s *Scrub) Reset(progress float64) {
	s.value = pathpos.ClampProgress(progress)
	s.init = true
}

// Update advances the smoothed progress towards target by dt and returns the
// new value. The value converges exponentially, covering 98% of the distance
// within Lag.
func (s *Scrub) Update(target float64, dt time.Duration) float64 {
	target = pathpos.ClampProgress(target)
	if !s.init || s.Lag <= 0 {
		s.Reset(target)
		return s.value
	}
	if dt <= 0 {
		return s.value
	}
	// e^-4 ≈ 0.018
	k := 1 - math.Exp(-4*dt.Seconds()/s.Lag.Seconds())
	s.value += (target - s.value) * k
	return s.value
}
