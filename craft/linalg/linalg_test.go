package linalg

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func assertMatNear(t *testing.T, want, got Mat, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]))
		for j := range want[i] {
			assert.InDelta(t, want[i][j], got[i][j], eps, "entry [%d][%d]", i, j)
		}
	}
}

func assertMatchesMGL(t *testing.T, m Mat, ref mgl32.Mat4) {
	t.Helper()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.InDelta(t, float64(ref.At(r, c)), m[r][c], 1e-5, "entry [%d][%d]", r, c)
		}
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2, 3)
	b := V(3, 2, 0)

	assert.Equal(t, V(4, 4, 3), a.Add(b))
	assert.Equal(t, V(-2, 0, 3), a.Sub(b))
	assert.Equal(t, V(3, 4, 0), a.MulPairs(b))
	assert.Equal(t, V(2, 4, 6), a.Times(2))
	assert.Equal(t, 14.0, a.Dot(a))
	assert.Equal(t, V(0, 0, 1), V(1, 0, 0).Cross(V(0, 1, 0)))
	assert.Equal(t, V(5, 6, 7), V(0, 2, 4).Mix(V(10, 10, 10), 0.5))
	assert.InDelta(t, math.Sqrt(14), a.Norm(), tol)

	c := a.Copy()
	c.Scale(3)
	assert.Equal(t, V(1, 2, 3), a, "Scale must not alias the source")
	assert.Equal(t, V(3, 6, 9), c)
}

func TestVecDotLongVectors(t *testing.T) {
	a := V(1, 1, 1, 1, 1, 1)
	b := V(1, 2, 3, 4, 5, 6)
	assert.Equal(t, 21.0, a.Dot(b))
	assert.Equal(t, 5.0, V(1, 2).Dot(V(3, 1)))
}

func TestVecNormalize(t *testing.T) {
	v := V(4, 4, 4)
	n := v.Normalized()
	assert.InDelta(t, 1, n.Norm(), tol)
	v.Normalize()
	assert.True(t, v.Equal(n))

	assert.False(t, V(0, 0, 0).Normalized().Finite())
}

func TestVecHomogeneous(t *testing.T) {
	assert.Equal(t, V(1, 2, 3, 1), V(1, 2, 3).To4(true))
	assert.Equal(t, V(1, 2, 3, 0), V(1, 2, 3).To4(false))
	assert.Equal(t, V(1, 2, 3), V(1, 2, 3, 4).To3())
	assert.Equal(t, "[vec 1, 2, 3]", V(1, 2, 3).String())
}

func TestMatBasics(t *testing.T) {
	m := Rows([]float64{1, 2, 3}, []float64{4, 5, 6})

	assert.Equal(t, Rows([]float64{1, 4}, []float64{2, 5}, []float64{3, 6}), m.Transposed())
	assert.Equal(t, Rows([]float64{2, 4, 6}, []float64{8, 10, 12}), m.Times(2))
	assert.Equal(t, Rows([]float64{2, 4, 6}, []float64{8, 10, 12}), m.Add(m))
	assert.Equal(t, Rows([]float64{0, 0, 0}, []float64{0, 0, 0}), m.Sub(m))
	assert.Equal(t, V(14, 32), m.MulVec(V(1, 2, 3)))
	assert.Equal(t, Rows([]float64{14, 32}, []float64{32, 77}), m.Mul(m.Transposed()))
	assert.Equal(t, Rows([]float64{5, 6}), m.SubBlock(1, 1, 2, 3))
	assert.Equal(t, Rows([]float64{1, 0, 0}, []float64{0, 1, 0}), Identity(2, 3))
	assert.Equal(t, "[[1, 2, 3] [4, 5, 6]]", m.String())
}

func TestColumnMajorTransposes(t *testing.T) {
	got := ColumnMajor(Translation(V(1, 2, 3)))
	want := mgl32.Translate3D(1, 2, 3)
	assert.Equal(t, [16]float32(want), got)
}

func TestComposeAppliesRightToLeft(t *testing.T) {
	m := Translation(V(10, 0, 0)).
		Mul(Rotation(math.Pi/2, V(0, 0, 1))).
		Mul(Scaling(V(2, 2, 2)))
	p := m.MulVec(V(1, 0, 0, 1))
	assert.InDelta(t, 10, p[0], tol)
	assert.InDelta(t, 2, p[1], tol)
	assert.InDelta(t, 0, p[2], tol)
	assert.InDelta(t, 1, p[3], tol)
}

func TestRotationNormalizesAxis(t *testing.T) {
	assertMatNear(t, Rotation(0.7, V(0, 1, 0)), Rotation(0.7, V(0, 5, 0)), tol)
}

func TestProjectionsMatchMathGL(t *testing.T) {
	fov := 45 * math.Pi / 180
	assertMatchesMGL(t, Perspective(fov, 1.5, 0.1, 100), mgl32.Perspective(float32(fov), 1.5, 0.1, 100))
	assertMatchesMGL(t, Orthographic(-2, 3, -1, 4, 0.5, 50), mgl32.Ortho(-2, 3, -1, 4, 0.5, 50))
}

func TestLookAtMatchesMathGL(t *testing.T) {
	m, err := LookAt(V(3, 4, 5), V(0, 1, 0), V(0, 1, 0))
	require.NoError(t, err)
	assertMatchesMGL(t, m, mgl32.LookAt(3, 4, 5, 0, 1, 0, 0, 1, 0))
}

func TestLookAtDegenerate(t *testing.T) {
	_, err := LookAt(V(1, 1, 1), V(1, 1, 1), V(0, 1, 0))
	assert.ErrorIs(t, err, ErrDegenerateView)

	_, err = LookAt(V(0, 0, 0), V(0, 5, 0), V(0, 1, 0))
	assert.ErrorIs(t, err, ErrDegenerateView)
}

func TestInverse(t *testing.T) {
	m := Translation(V(1, -2, 3)).
		Mul(Rotation(0.4, V(1, 1, 0))).
		Mul(Scaling(V(2, 3, 4)))
	inv, err := Inverse(m)
	require.NoError(t, err)
	assertMatNear(t, Identity4(), m.Mul(inv), 1e-9)
	assertMatNear(t, Identity4(), inv.Mul(m), 1e-9)

	tinv, err := Inverse(Translation(V(5, 6, 7)))
	require.NoError(t, err)
	assertMatNear(t, Translation(V(-5, -6, -7)), tinv, tol)
}

func TestInverseSingular(t *testing.T) {
	_, err := Inverse(Scaling(V(1, 0, 1)))
	assert.ErrorIs(t, err, ErrSingular)
}
