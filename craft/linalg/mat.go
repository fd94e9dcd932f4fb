package linalg

import (
	"fmt"
	"strings"
)

// Mat is a row-major matrix. Rows must all have the same length.
type Mat [][]float64

// Rows builds a matrix from copies of the given rows.
func Rows(rows ...[]float64) Mat {
	m := make(Mat, len(rows))
	for i, r := range rows {
		m[i] = append([]float64(nil), r...)
	}
	return m
}

// Identity returns the m by n identity matrix.
func Identity(m, n int) Mat {
	out := make(Mat, m)
	for i := range out {
		out[i] = make([]float64, n)
		if i < n {
			out[i][i] = 1
		}
	}
	return out
}

func (m Mat) Copy() Mat { return Rows(m...) }

func (m Mat) Equal(b Mat) bool {
	if len(m) != len(b) {
		return false
	}
	for i := range m {
		if !Vec(m[i]).Equal(Vec(b[i])) {
			return false
		}
	}
	return true
}

func (m Mat) Add(b Mat) Mat { return m.zip(b, func(x, y float64) float64 { return x + y }) }
func (m Mat) Sub(b Mat) Mat { return m.zip(b, func(x, y float64) float64 { return x - y }) }

func (m Mat) zip(b Mat, f func(x, y float64) float64) Mat {
	if len(m) != len(b) {
		panic(fmt.Sprintf("linalg: row count mismatch %d != %d", len(m), len(b)))
	}
	out := make(Mat, len(m))
	for i := range m {
		sameLen(m[i], b[i])
		out[i] = make([]float64, len(m[i]))
		for j := range m[i] {
			out[i][j] = f(m[i][j], b[i][j])
		}
	}
	return out
}

func (m Mat) Transposed() Mat {
	if len(m) == 0 {
		return Mat{}
	}
	out := make(Mat, len(m[0]))
	for j := range out {
		out[j] = make([]float64, len(m))
		for i := range m {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// Times multiplies every entry by s.
func (m Mat) Times(s float64) Mat {
	out := make(Mat, len(m))
	for i := range m {
		out[i] = Vec(m[i]).Times(s)
	}
	return out
}

// MulVec returns m·v.
func (m Mat) MulVec(v Vec) Vec {
	out := make(Vec, len(m))
	for r := range m {
		out[r] = v.Dot(Vec(m[r]))
	}
	return out
}

// Mul returns m·b.
func (m Mat) Mul(b Mat) Mat {
	if len(m) > 0 && len(m[0]) != len(b) {
		panic(fmt.Sprintf("linalg: cannot multiply %dx%d by %d rows", len(m), len(m[0]), len(b)))
	}
	cols := 0
	if len(b) > 0 {
		cols = len(b[0])
	}
	out := make(Mat, len(m))
	for r := range m {
		out[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			var sum float64
			for k := range b {
				sum += m[r][k] * b[k][c]
			}
			out[r][c] = sum
		}
	}
	return out
}

// SubBlock cuts rows [r0,r1) and columns [c0,c1) out of m.
func (m Mat) SubBlock(r0, c0, r1, c1 int) Mat {
	out := make(Mat, 0, r1-r0)
	for _, row := range m[r0:r1] {
		out = append(out, append([]float64(nil), row[c0:c1]...))
	}
	return out
}

// Flatten returns the entries of m in row-major order.
func Flatten(m Mat) []float32 {
	if len(m) == 0 {
		return nil
	}
	out := make([]float32, 0, len(m)*len(m[0]))
	for _, row := range m {
		for _, x := range row {
			out = append(out, float32(x))
		}
	}
	return out
}

// ColumnMajor transposes a 4x4 matrix and flattens it for column-major
// consumers.
func ColumnMajor(m Mat) [16]float32 {
	var out [16]float32
	copy(out[:], Flatten(m.Transposed()))
	return out
}

func (m Mat) String() string {
	parts := make([]string, len(m))
	for i, row := range m {
		cells := make([]string, len(row))
		for j, x := range row {
			cells[j] = fmt.Sprintf("%g", x)
		}
		parts[i] = "[" + strings.Join(cells, ", ") + "]"
	}
	return "[" + strings.Join(parts, " ") + "]"
}
