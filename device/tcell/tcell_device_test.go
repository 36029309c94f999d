package tcell

import (
	"drag"
	"drag/device"
	"drag/position"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestDocument(t *testing.T) (*Document, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	doc, err := New(screen)
	if err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(func() { screen.Fini() })
	return doc, screen
}

func cell(screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x]
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestDragBox(t *testing.T) {
	for _, smooth := range []bool{false, true} {
		doc, screen := newTestDocument(t)
		box := doc.Add("Box", device.Point{X: 2, Y: 2}, device.Size{Width: 10, Height: 3})
		c, err := drag.New(box, doc.Target(), drag.Options{Smooth: smooth, ActiveClass: DraggingClass}, position.New(nil))
		if err != nil {
			t.Fatal(err)
		}
		c.Activate()

		doc.HandleEvent(mouse(3, 3, tcell.Button1))
		if !c.Active() {
			t.Fatal("Expected drag to start on the box")
		}
		doc.HandleEvent(mouse(13, 8, tcell.Button1))
		doc.Render()
		if r := cell(screen, 15, 8).Runes; len(r) == 0 || r[0] != 'B' {
			t.Error("Expected label at (15, 8) got", r)
		}
		_, _, attrs := cell(screen, 15, 8).Style.Decompose()
		if attrs&tcell.AttrReverse == 0 {
			t.Error("Expected dragging box drawn reversed")
		}

		doc.HandleEvent(mouse(13, 8, tcell.ButtonNone))
		if c.Active() {
			t.Error("Expected drag to end on release")
		}
		x, y, _, _ := box.Bounds()
		if x != 12 || y != 7 {
			t.Error("Expected box at (12, 7) got", x, y)
		}
		if smooth && box.Offset() != (device.Point{X: 2, Y: 2}) {
			t.Error("Expected smooth drag to keep the offset got", box.Offset())
		}
	}
}

func TestDragOutsideBoxDoesNothing(t *testing.T) {
	doc, _ := newTestDocument(t)
	box := doc.Add("Box", device.Point{X: 2, Y: 2}, device.Size{Width: 4, Height: 2})
	c, err := drag.New(box, doc.Target(), drag.Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.Activate()

	doc.HandleEvent(mouse(40, 20, tcell.Button1))
	doc.HandleEvent(mouse(50, 20, tcell.Button1))
	doc.HandleEvent(mouse(50, 20, tcell.ButtonNone))
	if c.Active() || box.Offset() != (device.Point{X: 2, Y: 2}) {
		t.Error("Expected box untouched got", box.Offset())
	}
}

func TestBoxAtPicksTopmost(t *testing.T) {
	doc, _ := newTestDocument(t)
	bottom := doc.Add("bottom", device.Point{X: 0, Y: 0}, device.Size{Width: 10, Height: 10})
	top := doc.Add("top", device.Point{X: 5, Y: 5}, device.Size{Width: 10, Height: 10})

	if doc.BoxAt(6, 6) != top || doc.BoxAt(1, 1) != bottom || doc.BoxAt(30, 30) != nil {
		t.Error("Expected topmost hit test")
	}

	doc.HandleEvent(mouse(1, 1, tcell.Button1))
	if boxes := doc.Boxes(); boxes[len(boxes)-1] != bottom {
		t.Error("Expected pressed box raised to the top")
	}
}

func TestWheelIgnored(t *testing.T) {
	doc, _ := newTestDocument(t)
	box := doc.Add("Box", device.Point{}, device.Size{Width: 4, Height: 2})
	c, err := drag.New(box, doc.Target(), drag.Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.Activate()
	doc.HandleEvent(mouse(1, 1, tcell.WheelUp))
	if c.Active() {
		t.Error("Expected wheel not to start a drag")
	}
}

func TestQuitKeys(t *testing.T) {
	doc, _ := newTestDocument(t)
	if !doc.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Esc to quit")
	}
	if !doc.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Expected Ctrl+C to quit")
	}
	if doc.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("Expected other keys not to quit")
	}
}

func TestTruncatedLabel(t *testing.T) {
	doc, screen := newTestDocument(t)
	doc.Add("a rather long label", device.Point{X: 0, Y: 0}, device.Size{Width: 8, Height: 1})
	doc.SetStatus("status")
	doc.Render()
	if r := cell(screen, 6, 0).Runes; len(r) == 0 || r[0] != '…' {
		t.Error("Expected ellipsis at (6, 0) got", r)
	}
	if r := cell(screen, 0, 24).Runes; len(r) == 0 || r[0] != 's' {
		t.Error("Expected status line got", r)
	}
}
