package events

import "fmt"

type Kind int

const (
	TouchStart Kind = iota
	TouchMove
	TouchEnd
	MouseDown
	MouseMove
	MouseUp
)

func (k Kind) String() string {
	switch k {
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case MouseDown:
		return "mousedown"
	case MouseMove:
		return "mousemove"
	case MouseUp:
		return "mouseup"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Touch struct {
	PageX, PageY float64
}

// Event is a pointer or touch input event delivered by a Surface.
type Event struct {
	Kind         Kind
	PageX, PageY float64
	Touches      []Touch

	stopped   bool
	prevented bool
}

// StopPropagation keeps the event from bubbling to ancestor targets.
// Listeners on the current target still run.
func (e *Event) StopPropagation() { e.stopped = true }

func (e *Event) PreventDefault() { e.prevented = true }

func (e *Event) PropagationStopped() bool { return e.stopped }

func (e *Event) DefaultPrevented() bool { return e.prevented }

// Page returns the page coordinates of the first touch point when there is one,
// and of the event itself otherwise.
func (e *Event) Page() (x, y float64) {
	if len(e.Touches) > 0 {
		return e.Touches[0].PageX, e.Touches[0].PageY
	}
	return e.PageX, e.PageY
}

func (e *Event) String() string {
	x, y := e.Page()
	return fmt.Sprintf("Event{Kind: %s, Page: (%g, %g), Touches: %d}", e.Kind, x, y, len(e.Touches))
}
