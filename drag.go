// Package drag turns an element into something the user can drag with a
// mouse or a touch.
//
// A Controller emits:
//
//   - "dragstart" when a drag starts
//   - "drag" on every move while dragging
//   - "dragend" when the drag finishes
//
// Listeners receive the input event that caused the notification.
package drag

import (
	"drag/device"
	"drag/events"
	"drag/notify"
	"drag/position"
	"fmt"
	"log"
)

const (
	EventDragStart = "dragstart"
	EventDrag      = "drag"
	EventDragEnd   = "dragend"
)

type RenderMode = position.Mode

const (
	Offset      = position.Offset
	Transform3D = position.Transform3D
)

// PositionSink reads and writes an element's position in a render mode.
type PositionSink interface {
	Read(el device.Element, mode RenderMode) device.Point
	Write(el device.Element, p device.Point, mode RenderMode)
}

type Controller struct {
	notify.Emitter

	el   device.Element
	doc  events.Surface
	sink PositionSink

	mode  RenderMode
	axis  Axis
	rng   Range
	class string

	events    *events.Binder
	docEvents *events.Binder
	bound     bool

	origin  device.Point
	anchor  device.Point
	current device.Point
	active  bool
}

// New makes el draggable. Move and release are followed on doc, so a drag
// continues when the pointer leaves the element. A nil sink uses position.New(nil).
func New(el device.Element, doc events.Surface, opts Options, sink PositionSink) (*Controller, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: drag requires an element", ErrInvalidArgument)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: drag requires a document surface", ErrInvalidArgument)
	}
	if opts.Axis != AxisNone && opts.Axis != AxisX && opts.Axis != AxisY {
		return nil, fmt.Errorf("%w: axis %d", ErrInvalidArgument, int(opts.Axis))
	}
	if err := opts.Range.validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = position.New(nil)
	}

	c := &Controller{
		el:    el,
		doc:   doc,
		sink:  sink,
		mode:  opts.mode(),
		axis:  opts.Axis,
		rng:   opts.Range,
		class: opts.ActiveClass,
	}
	table := events.HandlerTable{
		events.TouchStart: c.onStart,
		events.TouchMove:  c.onMove,
		events.TouchEnd:   c.onEnd,
	}
	if err := table.Check(events.TouchStart, events.TouchMove, events.TouchEnd); err != nil {
		return nil, err
	}
	c.events = events.NewBinder(el, table)
	c.docEvents = events.NewBinder(doc, table)
	return c, nil
}

// Activate subscribes pointer-down on the element. It is a no-op when
// the controller is already active.
func (c *Controller) Activate() {
	if c.bound {
		return
	}
	c.bind(c.events, events.TouchStart, events.TouchStart)
	c.bind(c.events, events.MouseDown, events.TouchStart)
	c.bound = true
}

// Deactivate removes the element subscription and, mid drag, the
// document subscriptions too. No "dragend" is emitted in that case.
func (c *Controller) Deactivate() {
	c.events.Unbind()
	c.bound = false
	if c.active {
		c.docEvents.Unbind()
		c.active = false
		c.removeClass()
	}
}

func (c *Controller) bind(b *events.Binder, kind, as events.Kind) {
	if err := b.BindAs(kind, as); err != nil {
		log.Panicf("### drag: %v", err)
	}
}

func (c *Controller) onStart(e *events.Event) {
	e.StopPropagation()
	if c.active {
		return
	}
	x, y := e.Page()
	c.anchor = device.Point{X: x, Y: y}
	c.origin = c.sink.Read(c.el, c.mode)
	c.current = c.origin

	c.bind(c.docEvents, events.TouchMove, events.TouchMove)
	c.bind(c.docEvents, events.MouseMove, events.TouchMove)
	c.bind(c.docEvents, events.TouchEnd, events.TouchEnd)
	c.bind(c.docEvents, events.MouseUp, events.TouchEnd)
	c.active = true
	if c.class != "" {
		c.el.AddClass(c.class)
	}
	c.Emit(EventDragStart, e)
}

func (c *Controller) onMove(e *events.Event) {
	e.PreventDefault()
	e.StopPropagation()
	if !c.active {
		return
	}
	x, y := e.Page()
	delta := device.Point{X: x, Y: y}.Sub(c.anchor)
	c.current = Constrain(c.origin.Add(delta), c.axis, c.rng)
	c.sink.Write(c.el, c.current, c.mode)
	c.Emit(EventDrag, e)
}

func (c *Controller) onEnd(e *events.Event) {
	if !c.active {
		return
	}
	c.docEvents.Unbind()
	c.active = false
	c.removeClass()
	c.Emit(EventDragEnd, e)
}

func (c *Controller) removeClass() {
	if c.class != "" {
		c.el.RemoveClass(c.class)
	}
}

// Position is the last committed position. It stays valid after the drag ends.
func (c *Controller) Position() device.Point { return c.current }

func (c *Controller) Origin() device.Point { return c.origin }

func (c *Controller) Anchor() device.Point { return c.anchor }

func (c *Controller) Active() bool { return c.active }

func (c *Controller) Bound() bool { return c.bound }

func (c *Controller) Element() device.Element { return c.el }

func (c *Controller) Mode() RenderMode { return c.mode }

func (c *Controller) Axis() Axis { return c.axis }

func (c *Controller) Range() Range { return c.rng }
