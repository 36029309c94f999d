package device

import (
	"drag/events"
	"fmt"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

type Size struct {
	Width  int
	Height int
}

// Element is a visual element that can be positioned and receives input.
type Element interface {
	events.Surface

	// Offset is the element's rendered left/top position.
	Offset() Point
	SetOffset(Point)

	// ComputedStyle returns the value the platform renders for property.
	ComputedStyle(property string) string
	SetStyle(property, value string)

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
}
