package transform

import (
	"strconv"
	"strings"
)

// Matrix is a 4x4 CSS transform matrix in matrix3d() argument order:
// m11 m12 m13 m14 m21 ... m44. The translation lives in m41 and m42.
type Matrix [16]float64

func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate3d(x, y, z float64) Matrix {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// FromValues builds a matrix from the 6 arguments of matrix() or the 16 of matrix3d().
func FromValues(values []float64) (Matrix, error) {
	switch len(values) {
	case 6:
		m := Identity()
		m[0], m[1] = values[0], values[1]
		m[4], m[5] = values[2], values[3]
		m[12], m[13] = values[4], values[5]
		return m, nil
	case 16:
		var m Matrix
		copy(m[:], values)
		return m, nil
	}
	return Identity(), unsupported("%d matrix values", len(values))
}

// Multiply returns m × n, i.e. n applied first.
func (m Matrix) Multiply(n Matrix) Matrix {
	var r Matrix
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

func (m Matrix) M41() float64 { return m[12] }
func (m Matrix) M42() float64 { return m[13] }

func (m Matrix) Translation() (x, y float64) {
	return m[12], m[13]
}

func (m Matrix) Is2D() bool {
	return m[2] == 0 && m[3] == 0 && m[6] == 0 && m[7] == 0 &&
		m[8] == 0 && m[9] == 0 && m[10] == 1 && m[11] == 0 &&
		m[14] == 0 && m[15] == 1
}

// String formats the matrix the way a computed style reports it.
func (m Matrix) String() string {
	if m.Is2D() {
		return "matrix(" + join(m[0], m[1], m[4], m[5], m[12], m[13]) + ")"
	}
	return "matrix3d(" + join(m[:]...) + ")"
}

func join(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}

func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
