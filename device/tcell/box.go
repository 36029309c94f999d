package tcell

import (
	"drag/device"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
)

// DraggingClass is the class a box renders highlighted for.
const DraggingClass = "dragging"

type Box struct {
	*device.Node
	label string
	size  device.Size
}

func (b *Box) Label() string {
	return b.label
}

func (b *Box) Size() device.Size {
	return b.size
}

// Bounds is the cell rectangle the box is drawn in.
func (b *Box) Bounds() (x, y, width, height int) {
	p := b.Position()
	return int(math.Round(p.X)), int(math.Round(p.Y)), b.size.Width, b.size.Height
}

func (b *Box) Contains(x, y int) bool {
	bx, by, w, h := b.Bounds()
	return bx <= x && bx+w > x && by <= y && by+h > y
}

func (b *Box) render(screen tcell.Screen) {
	x, y, w, h := b.Bounds()
	style := styleBox
	if b.HasClass(DraggingClass) {
		style = styleDragging
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}

	label := b.label
	width := ansi.PrintableRuneWidth(label)
	if width > w-2 {
		label = runewidth.Truncate(label, w-2, "…")
		width = runewidth.StringWidth(label)
	}
	text(screen, x+(w-width)/2, y+h/2, label, style)
}

func text(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
