package scroll

import (
	"fmt"
	"strings"
)

// Event is a change of a [Toggle]'s state.
type Event uint8

const (
	// Enter fires when scrolling forward past the start.
	Enter Event = iota
	// Leave fires when scrolling forward past the end.
	Leave
	// EnterBack fires when scrolling backward past the end.
	EnterBack
	// LeaveBack fires when scrolling backward past the start.
	LeaveBack
)

func (ev Event) String() string {
	switch ev {
	case Enter:
		return "enter"
	case Leave:
		return "leave"
	case EnterBack:
		return "enterBack"
	case LeaveBack:
		return "leaveBack"
	default:
		return fmt.Sprintf("Event(%d)", uint8(ev))
	}
}

// Action is what an animation does in response to an [Event].
type Action uint8

const (
	None Action = iota
	Play
	Pause
	Resume
	Reverse
	Restart
	Reset
	Complete
)

var actionNames = [...]string{
	None:     "none",
	Play:     "play",
	Pause:    "pause",
	Resume:   "resume",
	Reverse:  "reverse",
	Restart:  "restart",
	Reset:    "reset",
	Complete: "complete",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ToggleActions holds the actions for the four events, in the order Enter,
// Leave, EnterBack, LeaveBack.
type ToggleActions [4]Action

// DefaultToggleActions plays the animation once and never undoes it.
var DefaultToggleActions = ToggleActions{Play, None, None, None}

// RevealActions plays the animation on entry and reverses it when the
// element is scrolled back above the start.
var RevealActions = ToggleActions{Play, None, None, Reverse}

// ParseToggleActions parses four space-separated action names, such as
// "play none none reverse".
func ParseToggleActions(s string) (ToggleActions, error) {
	var ta ToggleActions
	fields := strings.Fields(s)
	if len(fields) != len(ta) {
		return ta, fmt.Errorf("invalid toggle actions %q: want %d actions, got %d", s, len(ta), len(fields))
	}
fieldLoop:
	for i, f := range fields {
		for a, name := range actionNames {
			if f == name {
				ta[i] = Action(a)
				continue fieldLoop
			}
		}
		return ta, fmt.Errorf("invalid toggle actions %q: unknown action %q", s, f)
	}
	return ta, nil
}

func (ta ToggleActions) String() string {
	return fmt.Sprintf("%s %s %s %s", ta[0], ta[1], ta[2], ta[3])
}

// For returns the action for ev.
func (ta ToggleActions) For(ev Event) Action {
	return ta[ev]
}

// Transition is an event and the action it causes.
type Transition struct {
	Event  Event
	Action Action
}

// Toggle tracks a trigger's state across successive scroll offsets and
// reports the events the changes cause.
//
// A new Toggle starts out [Before] its range. Toggle isn't safe for
// concurrent use.
type Toggle struct {
	Trigger Trigger
	Actions ToggleActions

	state State
}

func NewToggle(tr Trigger, actions ToggleActions) *Toggle {
	return &Toggle{Trigger: tr, Actions: actions}
}

// State returns the state as of the last call to Update.
func (tg *Toggle) State() State { return tg.state }

// Update moves to the state for scrollY and returns the transitions that
// happened in order. Jumping over the whole range produces two transitions.
func (tg *Toggle) Update(scrollY float64, elem Box, viewportHeight float64) []Transition {
	next := tg.Trigger.State(scrollY, elem, viewportHeight)
	var evs []Event
	switch {
	case tg.state == next:
	case tg.state == Before && next == Active:
		evs = []Event{Enter}
	case tg.state == Before && next == After:
		evs = []Event{Enter, Leave}
	case tg.state == Active && next == After:
		evs = []Event{Leave}
	case tg.state == Active && next == Before:
		evs = []Event{LeaveBack}
	case tg.state == After && next == Active:
		evs = []Event{EnterBack}
	case tg.state == After && next == Before:
		evs = []Event{EnterBack, LeaveBack}
	}
	tg.state = next

	if len(evs) == 0 {
		return nil
	}
	out := make([]Transition, len(evs))
	for i, ev := range evs {
		out[i] = Transition{Event: ev, Action: tg.Actions.For(ev)}
	}
	return out
}

// Visible reports whether an element revealed by actions would be showing
// after the transitions. visible is the state before them.
func Visible(visible bool, transitions []Transition) bool {
	for _, tr := range transitions {
		switch tr.Action {
		case Play, Resume, Restart, Complete:
			visible = true
		case Reverse, Reset:
			visible = false
		}
	}
	return visible
}
