package events

import (
	"errors"
	"testing"
)

func TestPageUsesFirstTouch(t *testing.T) {
	e := &Event{Kind: TouchStart, PageX: 1, PageY: 2, Touches: []Touch{{10, 20}, {30, 40}}}
	x, y := e.Page()
	if x != 10 || y != 20 {
		t.Error("Expected (10, 20) got", x, y)
	}
	e = &Event{Kind: MouseDown, PageX: 1, PageY: 2}
	x, y = e.Page()
	if x != 1 || y != 2 {
		t.Error("Expected (1, 2) got", x, y)
	}
}

func TestDispatchBubbles(t *testing.T) {
	doc := NewTarget(nil)
	el := NewTarget(doc)
	calls := []string{}
	doc.Listen(MouseDown, func(*Event) { calls = append(calls, "doc") })
	el.Listen(MouseDown, func(*Event) { calls = append(calls, "el") })

	el.Dispatch(&Event{Kind: MouseDown})
	if len(calls) != 2 || calls[0] != "el" || calls[1] != "doc" {
		t.Error("Expected [el doc] got", calls)
	}
}

func TestStopPropagation(t *testing.T) {
	doc := NewTarget(nil)
	el := NewTarget(doc)
	docCalls, elCalls := 0, 0
	doc.Listen(MouseDown, func(*Event) { docCalls++ })
	el.Listen(MouseDown, func(e *Event) { e.StopPropagation(); elCalls++ })
	el.Listen(MouseDown, func(*Event) { elCalls++ })

	el.Dispatch(&Event{Kind: MouseDown})
	if elCalls != 2 {
		t.Error("Expected 2 element calls got", elCalls)
	}
	if docCalls != 0 {
		t.Error("Expected no document calls got", docCalls)
	}
}

func TestCancelDuringDispatch(t *testing.T) {
	doc := NewTarget(nil)
	calls := 0
	var cancel func()
	cancel = doc.Listen(MouseUp, func(*Event) { calls++; cancel() })
	doc.Listen(MouseUp, func(*Event) { calls++ })

	doc.Dispatch(&Event{Kind: MouseUp})
	doc.Dispatch(&Event{Kind: MouseUp})
	if calls != 3 {
		t.Error("Expected 3 calls got", calls)
	}
	cancel()
	if doc.Listeners(MouseUp) != 1 {
		t.Error("Expected 1 listener got", doc.Listeners(MouseUp))
	}
}

func TestBinder(t *testing.T) {
	doc := NewTarget(nil)
	starts := 0
	b := NewBinder(doc, HandlerTable{TouchStart: func(*Event) { starts++ }})

	if err := b.Bind(TouchStart); err != nil {
		t.Fatal(err)
	}
	if err := b.BindAs(MouseDown, TouchStart); err != nil {
		t.Fatal(err)
	}
	if err := b.Bind(TouchMove); !errors.Is(err, ErrNoHandler) {
		t.Error("Expected ErrNoHandler got", err)
	}
	if b.Bound() != 2 {
		t.Error("Expected 2 bound got", b.Bound())
	}

	doc.Dispatch(&Event{Kind: TouchStart})
	doc.Dispatch(&Event{Kind: MouseDown})
	if starts != 2 {
		t.Error("Expected 2 starts got", starts)
	}

	b.Unbind()
	b.Unbind()
	doc.Dispatch(&Event{Kind: MouseDown})
	if starts != 2 || b.Bound() != 0 {
		t.Error("Expected unbound binder got", starts, b.Bound())
	}
}

func TestHandlerTableCheck(t *testing.T) {
	table := HandlerTable{TouchStart: func(*Event) {}}
	if err := table.Check(TouchStart); err != nil {
		t.Error("Expected nil got", err)
	}
	if err := table.Check(TouchStart, TouchEnd); !errors.Is(err, ErrNoHandler) {
		t.Error("Expected ErrNoHandler got", err)
	}
}
