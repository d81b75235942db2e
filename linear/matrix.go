// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// M3 is a row-major 3x3 matrix of float32.
// m[i][j] is the element at row i, column j.
type M3 [3]V3f

// ZeroM3 returns the 3x3 zero matrix.
func ZeroM3() M3 { return M3{} }

// IdentM3 returns the 3x3 identity matrix.
func IdentM3() M3 { return M3{{1}, {1: 1}, {2: 1}} }

// M3FromRows returns the matrix whose rows are r0, r1 and r2.
func M3FromRows(r0, r1, r2 V3f) M3 { return M3{r0, r1, r2} }

// Row returns a copy of row i.
// It panics if i is not in [0, 3).
func (m M3) Row(i int) V3f { return m[i] }

// Col returns a copy of column j.
// It panics if j is not in [0, 3).
func (m M3) Col(j int) (v V3f) {
	for i := range v {
		v[i] = m[i][j]
	}
	return
}

// MulM3 returns l ⋅ r.
func MulM3(l, r M3) (m M3) {
	for i := range m {
		for j := range m[i] {
			for k := range r {
				m[i][j] += l[i][k] * r[k][j]
			}
		}
	}
	return
}

// TransposeM3 returns the transpose of m.
func TransposeM3(m M3) (t M3) {
	for i := range t {
		for j := range t[i] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// InvertM3 returns the inverse of n.
// A singular n produces non-finite elements.
func InvertM3(n M3) (m M3) {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	idet := 1 / (n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2)
	m[0][0] = s0 * idet
	m[0][1] = -(n[0][1]*n[2][2] - n[0][2]*n[2][1]) * idet
	m[0][2] = (n[0][1]*n[1][2] - n[0][2]*n[1][1]) * idet
	m[1][0] = -s1 * idet
	m[1][1] = (n[0][0]*n[2][2] - n[0][2]*n[2][0]) * idet
	m[1][2] = -(n[0][0]*n[1][2] - n[0][2]*n[1][0]) * idet
	m[2][0] = s2 * idet
	m[2][1] = -(n[0][0]*n[2][1] - n[0][1]*n[2][0]) * idet
	m[2][2] = (n[0][0]*n[1][1] - n[0][1]*n[1][0]) * idet
	return
}

// M4 is a row-major 4x4 matrix of float32.
// m[i][j] is the element at row i, column j.
type M4 [4]V4f

// ZeroM4 returns the 4x4 zero matrix.
func ZeroM4() M4 { return M4{} }

// IdentM4 returns the 4x4 identity matrix.
func IdentM4() M4 { return M4{{1}, {1: 1}, {2: 1}, {3: 1}} }

// M4FromRows returns the matrix whose rows are r0, r1, r2 and r3.
func M4FromRows(r0, r1, r2, r3 V4f) M4 { return M4{r0, r1, r2, r3} }

// Row returns a copy of row i.
// It panics if i is not in [0, 4).
func (m M4) Row(i int) V4f { return m[i] }

// Col returns a copy of column j.
// It panics if j is not in [0, 4).
func (m M4) Col(j int) (v V4f) {
	for i := range v {
		v[i] = m[i][j]
	}
	return
}

// MulM4 returns l ⋅ r.
func MulM4(l, r M4) (m M4) {
	for i := range m {
		for j := range m[i] {
			for k := range r {
				m[i][j] += l[i][k] * r[k][j]
			}
		}
	}
	return
}

// TransposeM4 returns the transpose of m.
func TransposeM4(m M4) (t M4) {
	for i := range t {
		for j := range t[i] {
			t[i][j] = m[j][i]
		}
	}
	return
}

// MulV4 returns m ⋅ v.
func (m M4) MulV4(v V4f) (u V4f) {
	for i := range u {
		u[i] = DotV4(m[i], v)
	}
	return
}

// Point returns m ⋅ {p, 1}, dropping w.
// m is assumed to be affine.
func (m M4) Point(p V3f) V3f {
	return m.MulV4(V4f{p[0], p[1], p[2], 1}).XYZ()
}

// Vector returns m ⋅ {v, 0}, dropping w.
// Translation does not affect the result.
func (m M4) Vector(v V3f) V3f {
	return m.MulV4(V4f{v[0], v[1], v[2], 0}).XYZ()
}

// InvertM4 returns the inverse of n.
// A singular n produces non-finite elements.
func InvertM4(n M4) (m M4) {
	s0 := n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s1 := n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s2 := n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s3 := n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s4 := n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s5 := n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c0 := n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c1 := n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c2 := n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c3 := n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c4 := n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c5 := n[2][2]*n[3][3] - n[2][3]*n[3][2]
	idet := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)
	m[0][0] = (c5*n[1][1] - c4*n[1][2] + c3*n[1][3]) * idet
	m[0][1] = (-c5*n[0][1] + c4*n[0][2] - c3*n[0][3]) * idet
	m[0][2] = (s5*n[3][1] - s4*n[3][2] + s3*n[3][3]) * idet
	m[0][3] = (-s5*n[2][1] + s4*n[2][2] - s3*n[2][3]) * idet
	m[1][0] = (-c5*n[1][0] + c2*n[1][2] - c1*n[1][3]) * idet
	m[1][1] = (c5*n[0][0] - c2*n[0][2] + c1*n[0][3]) * idet
	m[1][2] = (-s5*n[3][0] + s2*n[3][2] - s1*n[3][3]) * idet
	m[1][3] = (s5*n[2][0] - s2*n[2][2] + s1*n[2][3]) * idet
	m[2][0] = (c4*n[1][0] - c2*n[1][1] + c0*n[1][3]) * idet
	m[2][1] = (-c4*n[0][0] + c2*n[0][1] - c0*n[0][3]) * idet
	m[2][2] = (s4*n[3][0] - s2*n[3][1] + s0*n[3][3]) * idet
	m[2][3] = (-s4*n[2][0] + s2*n[2][1] - s0*n[2][3]) * idet
	m[3][0] = (-c3*n[1][0] + c1*n[1][1] - c0*n[1][2]) * idet
	m[3][1] = (c3*n[0][0] - c1*n[0][1] + c0*n[0][2]) * idet
	m[3][2] = (-s3*n[3][0] + s1*n[3][1] - s0*n[3][2]) * idet
	m[3][3] = (s3*n[2][0] - s1*n[2][1] + s0*n[2][2]) * idet
	return
}

// DetM4 returns the determinant of n.
func DetM4(n M4) float32 {
	s0 := n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s1 := n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s2 := n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s3 := n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s4 := n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s5 := n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c0 := n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c1 := n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c2 := n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c3 := n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c4 := n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c5 := n[2][2]*n[3][3] - n[2][3]*n[3][2]
	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// TranslateM4 returns a translation matrix.
func TranslateM4(x, y, z float32) M4 {
	return M4{{1, 0, 0, x}, {0, 1, 0, y}, {0, 0, 1, z}, {3: 1}}
}

// ScaleM4 returns a scale matrix.
func ScaleM4(x, y, z float32) M4 {
	return M4{{x}, {1: y}, {2: z}, {3: 1}}
}

// RotateM4 returns the rotation matrix of q.
// q must be a unit quaternion.
func RotateM4(q Q) M4 {
	x, y, z, r := q.V[0], q.V[1], q.V[2], q.R
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	xr, yr, zr := x*r, y*r, z*r
	return M4{
		{1 - 2*(yy+zz), 2 * (xy - zr), 2 * (xz + yr), 0},
		{2 * (xy + zr), 1 - 2*(xx+zz), 2 * (yz - xr), 0},
		{2 * (xz - yr), 2 * (yz + xr), 1 - 2*(xx+yy), 0},
		{3: 1},
	}
}
