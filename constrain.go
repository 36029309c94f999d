package drag

import "drag/device"

// Constrain clamps p into rng on each bounded axis, then zeroes the
// coordinate the axis lock excludes. The lock wins over the range.
func Constrain(p device.Point, axis Axis, rng Range) device.Point {
	if rng.X != nil {
		p.X = rng.X.Clamp(p.X)
	}
	if rng.Y != nil {
		p.Y = rng.Y.Clamp(p.Y)
	}
	switch axis {
	case AxisX:
		p.Y = 0
	case AxisY:
		p.X = 0
	}
	return p
}
