// Package scroll maps scroll offsets to animation progress.
//
// It models the scroll-linked behaviour of a timeline page: a path that is
// drawn as the reader scrolls through its container ([Trigger], [DrawState],
// [Scrub]) and markers that are revealed when they scroll into view and
// hidden again when scrolled back out ([Toggle], [ToggleActions]).
//
// All positions are in CSS pixels, with y growing downwards from the top of
// the document.
package scroll
