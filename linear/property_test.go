// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func randV3(r *rand.Rand) V3f {
	return V3f{r.Float32()*20 - 10, r.Float32()*20 - 10, r.Float32()*20 - 10}
}

func randM4(r *rand.Rand) (m M4) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = r.Float32()*4 - 2
		}
	}
	return
}

// toMgl converts m to the column-major layout of mgl32.
func toMgl(m M4) (n mgl32.Mat4) {
	for i := range m {
		for j := range m[i] {
			n.Set(i, j, m[i][j])
		}
	}
	return
}

func assertM4InDelta(t *testing.T, want, have M4, delta float64) {
	t.Helper()
	for i := range want {
		for j := range want[i] {
			assert.InDeltaf(t, want[i][j], have[i][j], delta, "element [%d][%d]", i, j)
		}
	}
}

func TestVecLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		a, b, c := NewV3(r.IntN(100), r.IntN(100), r.IntN(100)),
			NewV3(r.IntN(100), r.IntN(100), r.IntN(100)),
			NewV3(r.IntN(100), r.IntN(100), r.IntN(100))
		require.Equal(t, AddV3(a, b), AddV3(b, a))
		require.Equal(t, AddV3(AddV3(a, b), c), AddV3(a, AddV3(b, c)))
		require.Equal(t, V3[int]{}, SubV3(a, a))
		require.Equal(t, DotV3(a, b), DotV3(b, a))
	}
}

func TestCrossOrthogonal(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		a, b := randV3(r), randV3(r)
		c := Cross(a, b)
		// Rounding error grows with the magnitude of the operands.
		la, lb := float64(LenV3(a)), float64(LenV3(b))
		tol := 1e-5*la*lb*(la+lb) + 1e-6
		assert.InDelta(t, 0, DotV3(c, a), tol)
		assert.InDelta(t, 0, DotV3(c, b), tol)

		want := mgl32.Vec3(a).Cross(mgl32.Vec3(b))
		assert.InDelta(t, want[0], c[0], eps)
		assert.InDelta(t, want[1], c[1], eps)
		assert.InDelta(t, want[2], c[2], eps)
		assert.InDelta(t, mgl32.Vec3(a).Len(), LenV3(a), eps)
	}
}

func TestMatLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 100 {
		m := randM4(r)
		require.Equal(t, m, MulM4(IdentM4(), m))
		require.Equal(t, m, MulM4(m, IdentM4()))
		require.Equal(t, m, TransposeM4(TransposeM4(m)))
		for i := range 4 {
			require.Equal(t, m.Col(i), TransposeM4(m).Row(i))
		}
	}
}

func TestMatOracle(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for range 100 {
		l, m := randM4(r), randM4(r)

		have := toMgl(MulM4(l, m))
		want := toMgl(l).Mul4(toMgl(m))
		for i := range have {
			assert.InDelta(t, want[i], have[i], eps)
		}

		have = toMgl(TransposeM4(l))
		want = toMgl(l).Transpose()
		assert.Equal(t, want, have)

		v := V4f{r.Float32(), r.Float32(), r.Float32(), 1}
		hv := l.MulV4(v)
		wv := toMgl(l).Mul4x1(mgl32.Vec4(v))
		for i := range hv {
			assert.InDelta(t, wv[i], hv[i], eps)
		}
	}
}

func TestInvertM4(t *testing.T) {
	m := MulM4(TranslateM4(1, -2, 3), MulM4(RotateM4(RotateQ(0.7, V3f{1, 1, 0})), ScaleM4(2, 3, 4)))
	inv := InvertM4(m)
	assertM4InDelta(t, IdentM4(), MulM4(m, inv), eps)
	assertM4InDelta(t, IdentM4(), MulM4(inv, m), eps)

	want := toMgl(m).Inv()
	have := toMgl(inv)
	for i := range have {
		assert.InDelta(t, want[i], have[i], eps)
	}

	n := M3{{2, 0, 1}, {1, 3, 2}, {4, 2, 5}}
	ninv := InvertM3(n)
	prod := MulM3(n, ninv)
	for i := range prod {
		for j := range prod[i] {
			var w float32
			if i == j {
				w = 1
			}
			assert.InDelta(t, w, prod[i][j], eps)
		}
	}
}

func TestRotateM4(t *testing.T) {
	q := RotateQ(mgl32.DegToRad(90), V3f{0, 0, 1})
	m := RotateM4(q)
	p := m.Point(V3f{1, 0, 0})
	assert.InDelta(t, 0, p[0], eps)
	assert.InDelta(t, 1, p[1], eps)
	assert.InDelta(t, 0, p[2], eps)

	// Rotation matrices are orthogonal.
	assertM4InDelta(t, IdentM4(), MulM4(m, TransposeM4(m)), eps)

	want := mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1}).Mat4()
	have := toMgl(m)
	for i := range have {
		assert.InDelta(t, want[i], have[i], eps)
	}
}
