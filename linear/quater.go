// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Q is a quaternion of float32.
type Q struct {
	V V3f
	R float32
}

// IdentQ returns the identity quaternion.
func IdentQ() Q { return Q{R: 1} }

// MulQ returns l ⋅ r.
func MulQ(l, r Q) Q {
	v := AddV3(ScaleV3(r.R, l.V), ScaleV3(l.R, r.V))
	return Q{
		V: AddV3(v, Cross(l.V, r.V)),
		R: l.R*r.R - DotV3(l.V, r.V),
	}
}

// ConjQ returns the conjugate of q.
func ConjQ(q Q) Q { return Q{V: ScaleV3(-1, q.V), R: q.R} }

// RotateQ returns a unit quaternion that rotates
// angle radians about axis.
// axis need not be normalized.
func RotateQ(angle float32, axis V3f) Q {
	sin, cos := math.Sincos(float64(angle) * 0.5)
	return Q{
		V: ScaleV3(float32(sin), NormV3(axis)),
		R: float32(cos),
	}
}
