// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/raytrace/linear"
)

// plane is the z = Z plane.
// It only reports hits in front of the ray origin.
type plane struct{ Z float32 }

func (p plane) Hit(r Ray) (Interaction, bool) {
	if r.Direct[2] == 0 {
		return Interaction{}, false
	}
	t := (p.Z - r.Origin[2]) / r.Direct[2]
	if t <= 0 {
		return Interaction{}, false
	}
	return Interaction{P: r.At(t), T: t}, true
}

var _ Geometry = plane{}

func TestHit(t *testing.T) {
	var g Geometry = plane{Z: 5}
	r := Ray{Origin: linear.V3f{0, 0, 0}, Direct: linear.V3f{0, 0, 1}}

	hit, ok := g.Hit(r)
	require.True(t, ok)
	assert.Equal(t, float32(5), hit.P[2])
	assert.Equal(t, linear.V3f{0, 0, 5}, hit.P)
	assert.Equal(t, r.At(hit.T), hit.P)
}

func TestMiss(t *testing.T) {
	var g Geometry = plane{Z: 5}
	for _, r := range [...]Ray{
		{Direct: linear.V3f{1, 0, 0}},
		{Direct: linear.V3f{0, 0, -1}},
		{Origin: linear.V3f{0, 0, 6}, Direct: linear.V3f{0, 0, 1}},
	} {
		hit, ok := g.Hit(r)
		assert.False(t, ok, "ray %v", r)
		assert.Zero(t, hit)
	}
}

func TestRay(t *testing.T) {
	r := Ray{Origin: linear.V3f{1, 2, 3}, Direct: linear.V3f{0, 3, 4}}

	if p := r.At(0); p != r.Origin {
		t.Fatalf("Ray.At(0)\nhave %v\nwant %v", p, r.Origin)
	}
	if p := r.At(2); p != (linear.V3f{1, 8, 11}) {
		t.Fatalf("Ray.At(2)\nhave %v\nwant [1 8 11]", p)
	}
	if d := r.Direct; d != (linear.V3f{0, 3, 4}) {
		t.Fatalf("Ray.Direct: should not be normalized\nhave %v", d)
	}
	n := r.Norm()
	if n.Origin != r.Origin {
		t.Fatalf("Ray.Norm: Origin\nhave %v\nwant %v", n.Origin, r.Origin)
	}
	assert.InDelta(t, 1, linear.LenV3(n.Direct), 1e-6)
	assert.InDelta(t, 0.6, n.Direct[1], 1e-6)
	assert.InDelta(t, 0.8, n.Direct[2], 1e-6)
}

func TestRayTransform(t *testing.T) {
	x := linear.Compose(linear.Translation(10, 0, 0), linear.Scaling(2, 2, 2))
	r := Ray{Origin: linear.V3f{1, 1, 1}, Direct: linear.V3f{0, 0, 1}}

	w := r.Transform(x.LocalToWorld)
	if w.Origin != (linear.V3f{12, 2, 2}) {
		t.Fatalf("Ray.Transform: Origin\nhave %v\nwant [12 2 2]", w.Origin)
	}
	if w.Direct != (linear.V3f{0, 0, 2}) {
		t.Fatalf("Ray.Transform: Direct\nhave %v\nwant [0 0 2]", w.Direct)
	}

	// A hit found in world space maps back to local space.
	hit, ok := plane{Z: 6}.Hit(w)
	require.True(t, ok)
	assert.Equal(t, float32(2), hit.T)
	local := linear.NewTransform(x.LocalToWorld).WorldToLocal.Point(hit.P)
	assert.InDelta(t, 1, local[0], 1e-5)
	assert.InDelta(t, 1, local[1], 1e-5)
	assert.InDelta(t, 3, local[2], 1e-5)
}
