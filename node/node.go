// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package node implements the scene's graph.
package node

import (
	"slices"

	"github.com/gviegas/raytrace/linear"
)

// Node represents a single node in a scene graph.
// A node exclusively owns its immediate descendants,
// so a graph built from nodes is always a tree.
type Node struct {
	local linear.Transform
	sub   []Node

	// Name for the node.
	// It is not used by node code.
	Name string
}

// New creates a node with the given local transform
// and immediate descendants.
// The order of sub is preserved. The node keeps its
// own copy of sub.
func New(local linear.Transform, sub ...Node) Node {
	return Node{local: local, sub: slices.Clone(sub)}
}

// Transform returns the local transform of n.
func (n *Node) Transform() linear.Transform { return n.local }

// Children returns a copy of the immediate descendants
// of n, in construction order.
func (n *Node) Children() []Node { return slices.Clone(n.sub) }

// Len returns the number of nodes in the tree rooted
// at n, n included.
func (n *Node) Len() int {
	c := 1
	for i := range n.sub {
		c += n.sub[i].Len()
	}
	return c
}

type entry struct {
	node  *Node
	world linear.Transform
}

// ForEach calls f for node n and each of its
// descendants, along with its world transform.
// The world transform of a node is the composition
// of its ancestors' transforms and its own, from
// the root down. Ancestors are processed first.
func (n *Node) ForEach(f func(n *Node, world linear.Transform)) {
	n.until(linear.IdentTransform(), func(n *Node, world linear.Transform) bool {
		f(n, world)
		return true
	})
}

// Until is like ForEach, but returns as soon as
// f returns false.
func (n *Node) Until(f func(n *Node, world linear.Transform) bool) {
	n.until(linear.IdentTransform(), f)
}

// until visits the tree rooted at n breadth-first.
// parent is the world transform of n's ancestor.
func (n *Node) until(parent linear.Transform, f func(*Node, linear.Transform) bool) bool {
	que := []entry{{n, linear.Compose(parent, n.local)}}
	for len(que) > 0 {
		e := que[0]
		que = que[1:]
		if !f(e.node, e.world) {
			return false
		}
		for i := range e.node.sub {
			sub := &e.node.sub[i]
			que = append(que, entry{sub, linear.Compose(e.world, sub.local)})
		}
	}
	return true
}
