// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
package linear

import (
	"math"
)

// Scalar is the set of types a vector can hold.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		Float
}

// Float is the set of floating-point scalars.
type Float interface {
	~float32 | ~float64
}

// V3 is a 3-component vector.
type V3[T Scalar] [3]T

// V3f is a 3-component vector of float32.
type V3f = V3[float32]

// NewV3 returns the vector {x, y, z}.
func NewV3[T Scalar](x, y, z T) V3[T] { return V3[T]{x, y, z} }

// AddV3 returns v + w.
func AddV3[T Scalar](v, w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV3 returns v - w.
func SubV3[T Scalar](v, w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3[T Scalar](s T, v V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// HadamardV3 returns the component-wise product of v and w.
func HadamardV3[T Scalar](v, w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3[T Scalar](v, w V3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
func LenV3[T Float](v V3[T]) T {
	return T(math.Sqrt(float64(DotV3(v, v))))
}

// NormV3 returns v normalized.
// The zero vector has no direction, so every
// component of the result is NaN.
func NormV3[T Float](v V3[T]) V3[T] {
	return ScaleV3(1/LenV3(v), v)
}

// Cross returns v × w.
func Cross[T Scalar](v, w V3[T]) (u V3[T]) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// V4 is a 4-component vector.
type V4[T Scalar] [4]T

// V4f is a 4-component vector of float32.
type V4f = V4[float32]

// NewV4 returns the vector {x, y, z, w}.
func NewV4[T Scalar](x, y, z, w T) V4[T] { return V4[T]{x, y, z, w} }

// AddV4 returns v + w.
func AddV4[T Scalar](v, w V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV4 returns v - w.
func SubV4[T Scalar](v, w V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV4 returns s ⋅ v.
func ScaleV4[T Scalar](s T, v V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// HadamardV4 returns the component-wise product of v and w.
func HadamardV4[T Scalar](v, w V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// DotV4 returns v ⋅ w.
func DotV4[T Scalar](v, w V4[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV4 returns the length of v.
func LenV4[T Float](v V4[T]) T {
	return T(math.Sqrt(float64(DotV4(v, v))))
}

// NormV4 returns v normalized.
// The zero vector has no direction, so every
// component of the result is NaN.
func NormV4[T Float](v V4[T]) V4[T] {
	return ScaleV4(1/LenV4(v), v)
}

// XYZ returns the first three components of v.
func (v V4[T]) XYZ() V3[T] { return V3[T]{v[0], v[1], v[2]} }
