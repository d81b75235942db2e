// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package config loads scene descriptions.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gviegas/raytrace/internal/log"
	"github.com/gviegas/raytrace/linear"
	"github.com/gviegas/raytrace/node"
)

var (
	ErrNoRoot      = errors.New("config: root not set")
	ErrUnknownNode = errors.New("config: unknown node")
	ErrCycle       = errors.New("config: cycle in node graph")
	ErrShared      = errors.New("config: node has more than one parent")
	ErrTransform   = errors.New("config: invalid transform")
)

// Config describes a scene graph and how to process it.
// Nodes are identified by name; a node lists the names
// of its immediate descendants.
type Config struct {
	Log   LogConfig             `yaml:"log"`
	Walk  WalkConfig            `yaml:"walk"`
	Root  string                `yaml:"root"`
	Nodes map[string]NodeConfig `yaml:"nodes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type WalkConfig struct {
	// Limit is the maximum number of subtrees
	// visited concurrently. Zero means no limit.
	Limit int `yaml:"limit"`
}

// NodeConfig describes a node's local transform.
// Either Matrix or any of Translate, Rotate and Scale
// can be set. The latter are applied as T ⋅ R ⋅ S.
type NodeConfig struct {
	Matrix    [][]float32   `yaml:"matrix,omitempty"`
	Translate []float32     `yaml:"translate,omitempty"`
	Rotate    *RotateConfig `yaml:"rotate,omitempty"`
	Scale     []float32     `yaml:"scale,omitempty"`
	Children  []string      `yaml:"children,omitempty"`
}

// RotateConfig is a rotation of Angle radians about Axis.
type RotateConfig struct {
	Angle float32   `yaml:"angle"`
	Axis  []float32 `yaml:"axis"`
}

// Load decodes a YAML config from r.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &c, nil
}

// LoadFile decodes the YAML config stored at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// Build constructs the scene graph rooted at c.Root.
func (c *Config) Build() (node.Node, error) {
	if c.Root == "" {
		return node.Node{}, ErrNoRoot
	}
	parent := make(map[string]string, len(c.Nodes))
	visiting := make(map[string]bool)
	var build func(name string) (node.Node, error)
	build = func(name string) (node.Node, error) {
		nc, ok := c.Nodes[name]
		if !ok {
			return node.Node{}, fmt.Errorf("%w: %s", ErrUnknownNode, name)
		}
		if visiting[name] {
			return node.Node{}, fmt.Errorf("%w: %s", ErrCycle, name)
		}
		visiting[name] = true
		defer delete(visiting, name)

		local, err := nc.Transform()
		if err != nil {
			return node.Node{}, fmt.Errorf("%w (node %s)", err, name)
		}
		sub := make([]node.Node, 0, len(nc.Children))
		for _, chname := range nc.Children {
			if visiting[chname] {
				return node.Node{}, fmt.Errorf("%w: %s", ErrCycle, chname)
			}
			if p, ok := parent[chname]; ok {
				return node.Node{}, fmt.Errorf("%w: %s (%s, %s)", ErrShared, chname, p, name)
			}
			parent[chname] = name
			ch, err := build(chname)
			if err != nil {
				return node.Node{}, err
			}
			sub = append(sub, ch)
		}
		n := node.New(local, sub...)
		n.Name = name
		return n, nil
	}
	return build(c.Root)
}

// Transform returns the local transform described by nc.
// An empty NodeConfig yields the identity transform.
func (nc *NodeConfig) Transform() (linear.Transform, error) {
	if nc.Matrix != nil {
		if nc.Translate != nil || nc.Rotate != nil || nc.Scale != nil {
			return linear.Transform{}, fmt.Errorf("%w: matrix set along with translate/rotate/scale", ErrTransform)
		}
		var m linear.M4
		if len(nc.Matrix) != len(m) {
			return linear.Transform{}, fmt.Errorf("%w: matrix must have 4 rows", ErrTransform)
		}
		for i, r := range nc.Matrix {
			if len(r) != len(m[i]) {
				return linear.Transform{}, fmt.Errorf("%w: matrix row %d must have 4 columns", ErrTransform, i)
			}
			copy(m[i][:], r)
		}
		if d := float64(linear.DetM4(m)); d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return linear.Transform{}, fmt.Errorf("%w: singular matrix", ErrTransform)
		}
		return linear.NewTransform(m), nil
	}

	fwd, inv := linear.IdentM4(), linear.IdentM4()
	if nc.Scale != nil {
		s, err := v3(nc.Scale, "scale")
		if err != nil {
			return linear.Transform{}, err
		}
		if s[0] == 0 || s[1] == 0 || s[2] == 0 {
			return linear.Transform{}, fmt.Errorf("%w: zero scale %v", ErrTransform, s)
		}
		x := linear.Scaling(s[0], s[1], s[2])
		fwd, inv = x.LocalToWorld, x.WorldToLocal
	}
	if nc.Rotate != nil {
		axis, err := v3(nc.Rotate.Axis, "rotate axis")
		if err != nil {
			return linear.Transform{}, err
		}
		if axis == (linear.V3f{}) {
			return linear.Transform{}, fmt.Errorf("%w: zero rotate axis", ErrTransform)
		}
		x := linear.Rotation(linear.RotateQ(nc.Rotate.Angle, axis))
		fwd = linear.MulM4(x.LocalToWorld, fwd)
		inv = linear.MulM4(inv, x.WorldToLocal)
	}
	if nc.Translate != nil {
		t, err := v3(nc.Translate, "translate")
		if err != nil {
			return linear.Transform{}, err
		}
		x := linear.Translation(t[0], t[1], t[2])
		fwd = linear.MulM4(x.LocalToWorld, fwd)
		inv = linear.MulM4(inv, x.WorldToLocal)
	}
	return linear.PairTransform(fwd, inv), nil
}

func v3(s []float32, what string) (v linear.V3f, err error) {
	if len(s) != len(v) {
		return v, fmt.Errorf("%w: %s must have 3 components", ErrTransform, what)
	}
	copy(v[:], s)
	return
}
