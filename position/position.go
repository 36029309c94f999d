package position

import (
	"drag/device"
	"drag/transform"
	"fmt"
	"log"
)

// Mode is the strategy used to place an element.
type Mode int

const (
	// Offset positions the element through its left/top.
	Offset Mode = iota
	// Transform3D positions the element with translate3d. The z component is
	// pinned to a tiny nonzero value so the element is composited in 3D.
	Transform3D
)

const zPin = "0.0001px"

func (m Mode) String() string {
	switch m {
	case Offset:
		return "Offset"
	case Transform3D:
		return "Transform3D"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Sink reads and writes element positions. Transform read-back goes
// through the platform Format.
type Sink struct {
	Format transform.Format
	Log    *log.Logger
}

func New(format transform.Format) *Sink {
	if format == nil {
		format = transform.WebKit
	}
	return &Sink{Format: format}
}

// Read returns the element's offset, or its rendered translation in
// Transform3D mode. An unrecognized transform reads as (0, 0).
func (s *Sink) Read(el device.Element, mode Mode) device.Point {
	if mode != Transform3D {
		return el.Offset()
	}
	value := el.ComputedStyle(s.Format.Property())
	if transform.IsNone(value) {
		return device.Point{}
	}
	m, err := s.Format.Parse(value)
	if err != nil {
		s.logf("### %s read-back: %v", s.Format.Name(), err)
		return device.Point{}
	}
	x, y := m.Translation()
	return device.Point{X: x, Y: y}
}

func (s *Sink) Write(el device.Element, p device.Point, mode Mode) {
	if mode != Transform3D {
		el.SetOffset(p)
		return
	}
	value := Translate(p)
	for _, property := range transform.Properties {
		el.SetStyle(property, value)
	}
}

// Translate is the transform value that places an element at p.
func Translate(p device.Point) string {
	return "translate3d(" + transform.FormatNumber(p.X) + "px, " + transform.FormatNumber(p.Y) + "px, " + zPin + ")"
}

func (s *Sink) logf(format string, args ...any) {
	if s.Log != nil {
		s.Log.Printf(format, args...)
	}
}
