package drag

import (
	"fmt"
	"math"
)

type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return ""
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func ParseAxis(s string) (Axis, error) {
	switch s {
	case "":
		return AxisNone, nil
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	}
	return AxisNone, fmt.Errorf("%w: axis %q", ErrInvalidArgument, s)
}

// Interval is a closed range [Min, Max].
type Interval struct {
	Min, Max float64
}

func (i Interval) Clamp(v float64) float64 {
	if v < i.Min {
		return i.Min
	}
	if v > i.Max {
		return i.Max
	}
	return v
}

func (i Interval) validate() error {
	if math.IsNaN(i.Min) || math.IsNaN(i.Max) || i.Min > i.Max {
		return fmt.Errorf("%w: interval [%g, %g]", ErrInvalidArgument, i.Min, i.Max)
	}
	return nil
}

// Range bounds each axis independently; a nil interval leaves that axis free.
type Range struct {
	X, Y *Interval
}

func (r Range) validate() error {
	for _, i := range []*Interval{r.X, r.Y} {
		if i == nil {
			continue
		}
		if err := i.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Options configure a Controller. The zero value drags in Offset mode
// without constraints.
type Options struct {
	// Smooth positions the element with translate3d instead of left/top.
	Smooth bool
	Axis   Axis
	Range  Range
	// ActiveClass, when set, is added to the element for the duration of a drag.
	ActiveClass string
}

func (o Options) mode() RenderMode {
	if o.Smooth {
		return Transform3D
	}
	return Offset
}
