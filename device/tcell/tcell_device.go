package tcell

import (
	"context"
	"drag/device"
	"drag/events"
	"drag/lifecycle"

	"github.com/gdamore/tcell/v2"
)

// Document is a terminal screen holding draggable boxes. Its event Target
// is the document-level surface; every box target bubbles into it.
type Document struct {
	screen  tcell.Screen
	root    *events.Target
	boxes   []*Box
	buttons tcell.ButtonMask
	status  string
	lc      *lifecycle.Lifecycle
}

var (
	defStyle      = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	styleBox      = tcell.StyleDefault.Foreground(tcell.PaletteColor(231)).Background(tcell.PaletteColor(18))
	styleDragging = styleBox.Bold(true).Reverse(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.PaletteColor(231)).Background(tcell.PaletteColor(8)).Italic(true)
)

const wheel = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

func Open() (*Document, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(screen)
}

func New(screen tcell.Screen) (*Document, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(defStyle)
	screen.EnableMouse(tcell.MouseDragEvents)

	return &Document{
		screen: screen,
		root:   events.NewTarget(nil),
		lc:     lifecycle.New(),
	}, nil
}

func (d *Document) Target() *events.Target {
	return d.root
}

func (d *Document) Add(label string, offset device.Point, size device.Size) *Box {
	box := &Box{Node: device.NewNode(d.root), label: label, size: size}
	box.SetOffset(offset)
	d.boxes = append(d.boxes, box)
	return box
}

func (d *Document) Boxes() []*Box {
	return d.boxes
}

// BoxAt returns the topmost box under the cell, or nil.
func (d *Document) BoxAt(x, y int) *Box {
	for i := len(d.boxes) - 1; i >= 0; i-- {
		if d.boxes[i].Contains(x, y) {
			return d.boxes[i]
		}
	}
	return nil
}

func (d *Document) raise(box *Box) {
	for i, b := range d.boxes {
		if b == box {
			d.boxes = append(append(d.boxes[:i:i], d.boxes[i+1:]...), box)
			return
		}
	}
}

func (d *Document) SetStatus(status string) {
	d.status = status
}

// HandleEvent applies one terminal event and reports whether the user asked to quit.
func (d *Document) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		d.screen.Sync()

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
			return true
		}

	case *tcell.EventMouse:
		d.handleMouseEvent(ev)
	}
	return false
}

func (d *Document) handleMouseEvent(ev *tcell.EventMouse) {
	if ev.Buttons()&wheel != 0 {
		return
	}
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := d.buttons&tcell.Button1 != 0
	d.buttons = ev.Buttons()

	x, y := ev.Position()
	event := &events.Event{PageX: float64(x), PageY: float64(y)}
	switch {
	case pressed && !wasPressed:
		event.Kind = events.MouseDown
	case pressed:
		event.Kind = events.MouseMove
	case wasPressed:
		event.Kind = events.MouseUp
	default:
		return
	}

	target := d.root
	if box := d.BoxAt(x, y); box != nil {
		target = box.Target
		if event.Kind == events.MouseDown {
			d.raise(box)
		}
	}
	target.Dispatch(event)
}

func (d *Document) Render() {
	d.screen.Clear()
	for _, box := range d.boxes {
		box.render(d.screen)
	}
	if d.status != "" {
		_, h := d.screen.Size()
		text(d.screen, 0, h-1, d.status, styleStatus)
	}
	d.screen.Show()
}

// Run renders and applies terminal events until the user quits.
func (d *Document) Run() {
	input := make(chan tcell.Event)
	d.lc.Go(func(ctx context.Context) {
		defer close(input)
		for {
			event := d.screen.PollEvent()
			if event == nil {
				return
			}
			select {
			case input <- event:
			case <-ctx.Done():
				return
			}
		}
	})

	d.Render()
	for event := range input {
		if d.HandleEvent(event) {
			return
		}
		d.Render()
	}
}

func (d *Document) Close() {
	d.screen.Fini()
	d.lc.Stop()
}
