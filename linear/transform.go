// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

// Transform is an affine change of space.
// WorldToLocal is expected to be the inverse of
// LocalToWorld. Transform never checks this.
type Transform struct {
	LocalToWorld M4
	WorldToLocal M4
}

// IdentTransform returns the identity transform.
func IdentTransform() Transform {
	return Transform{IdentM4(), IdentM4()}
}

// PairTransform returns a transform from both halves.
// The caller must ensure that inv is the inverse of fwd.
func PairTransform(fwd, inv M4) Transform {
	return Transform{fwd, inv}
}

// NewTransform returns a transform whose
// WorldToLocal is computed from fwd.
// fwd must be invertible.
func NewTransform(fwd M4) Transform {
	return Transform{fwd, InvertM4(fwd)}
}

// Translation returns a transform that translates by {x, y, z}.
func Translation(x, y, z float32) Transform {
	return Transform{TranslateM4(x, y, z), TranslateM4(-x, -y, -z)}
}

// Scaling returns a transform that scales by {x, y, z}.
// No factor can be zero.
func Scaling(x, y, z float32) Transform {
	return Transform{ScaleM4(x, y, z), ScaleM4(1/x, 1/y, 1/z)}
}

// Rotation returns a transform that rotates by q.
// q must be a unit quaternion.
func Rotation(q Q) Transform {
	fwd := RotateM4(q)
	return Transform{fwd, TransposeM4(fwd)}
}

// Compose returns the composition of a and b.
// Each half is multiplied in the order given:
//
//	LocalToWorld = a.LocalToWorld ⋅ b.LocalToWorld
//	WorldToLocal = a.WorldToLocal ⋅ b.WorldToLocal
//
// The result holds a valid inverse pair only when
// a.LocalToWorld and b.LocalToWorld commute (e.g.,
// when either one is the identity).
func Compose(a, b Transform) Transform {
	return Transform{
		MulM4(a.LocalToWorld, b.LocalToWorld),
		MulM4(a.WorldToLocal, b.WorldToLocal),
	}
}

// Inverse returns t with its halves swapped.
func (t Transform) Inverse() Transform {
	return Transform{t.WorldToLocal, t.LocalToWorld}
}
