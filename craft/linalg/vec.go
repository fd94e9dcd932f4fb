package linalg

import (
	"fmt"
	"math"
	"strings"
)

// Vec is a vector of float64 components.
//
// Binary operations require operands of equal length.
type Vec []float64

// V builds a vector from its components.
func V(xs ...float64) Vec {
	out := make(Vec, len(xs))
	copy(out, xs)
	return out
}

func (v Vec) Copy() Vec { return V(v...) }

func (v Vec) Equal(o Vec) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

func (v Vec) Add(o Vec) Vec {
	sameLen(v, o)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out
}

func (v Vec) Sub(o Vec) Vec {
	sameLen(v, o)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out
}

// MulPairs is the element-wise product.
func (v Vec) MulPairs(o Vec) Vec {
	sameLen(v, o)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] * o[i]
	}
	return out
}

// Times returns v scaled by s.
func (v Vec) Times(s float64) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Scale scales v in place.
func (v Vec) Scale(s float64) {
	for i := range v {
		v[i] *= s
	}
}

func (v Vec) Dot(o Vec) float64 {
	sameLen(v, o)
	switch len(v) {
	case 2:
		return v[0]*o[0] + v[1]*o[1]
	case 3:
		return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
	case 4:
		return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
	}
	var acc float64
	for i := range v {
		acc += v[i] * o[i]
	}
	return acc
}

// Cross is defined for 3-component vectors only.
func (v Vec) Cross(o Vec) Vec {
	if len(v) != 3 || len(o) != 3 {
		panic(fmt.Sprintf("linalg: cross needs 3-vectors, got %d and %d", len(v), len(o)))
	}
	return Vec{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalized returns v/|v|. A zero vector yields NaN components, which
// callers such as LookAt use to detect degenerate input.
func (v Vec) Normalized() Vec { return v.Times(1 / v.Norm()) }

func (v Vec) Normalize() { v.Scale(1 / v.Norm()) }

// Mix linearly interpolates from v (s=0) to o (s=1).
func (v Vec) Mix(o Vec, s float64) Vec {
	sameLen(v, o)
	out := make(Vec, len(v))
	for i := range v {
		out[i] = (1-s)*v[i] + s*o[i]
	}
	return out
}

func (v Vec) To3() Vec { return Vec{v[0], v[1], v[2]} }

// To4 returns the homogeneous form: w=1 for points, w=0 for directions.
func (v Vec) To4(point bool) Vec {
	w := 0.0
	if point {
		w = 1
	}
	return Vec{v[0], v[1], v[2], w}
}

// Finite reports whether every component is a real number.
func (v Vec) Finite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vec) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[vec " + strings.Join(parts, ", ") + "]"
}

func sameLen(a, b Vec) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("linalg: length mismatch %d != %d", len(a), len(b)))
	}
}
