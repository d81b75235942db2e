// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package geometry defines rays and the intersection
// contract that shapes implement.
package geometry

import (
	"github.com/gviegas/raytrace/linear"
)

// Ray is a half-line starting at Origin.
// Direct is not normalized on construction.
type Ray struct {
	Origin linear.V3f
	Direct linear.V3f
}

// At returns the point Origin + t ⋅ Direct.
func (r Ray) At(t float32) linear.V3f {
	return linear.AddV3(r.Origin, linear.ScaleV3(t, r.Direct))
}

// Norm returns a copy of r whose direction
// has unit length.
func (r Ray) Norm() Ray {
	return Ray{r.Origin, linear.NormV3(r.Direct)}
}

// Transform returns r in the space that m maps to.
// Origin is mapped as a point and Direct as a
// vector, so the result is not normalized even
// when r is.
func (r Ray) Transform(m linear.M4) Ray {
	return Ray{m.Point(r.Origin), m.Vector(r.Direct)}
}

// Interaction describes where a ray met a surface.
type Interaction struct {
	// P is the hit point.
	P linear.V3f
	// T is the ray parameter at P, i.e.,
	// ray.At(T) == P.
	T float32
}

// Geometry is the interface that hittable shapes
// implement.
type Geometry interface {
	// Hit returns the first surface contact along r.
	// It returns false if r misses the shape. The
	// range of valid ray parameters is defined by
	// each implementation.
	Hit(r Ray) (Interaction, bool)
}
