// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package node

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gviegas/raytrace/linear"
)

// WalkFunc is called by Walk for every node visited.
type WalkFunc func(ctx context.Context, n *Node, world linear.Transform) error

// Walk calls f for node n and each of its descendants,
// along with its world transform (as in ForEach).
//
// n itself is visited first. Then each subtree rooted
// at an immediate descendant of n is visited by its
// own goroutine, breadth-first. At most limit subtrees
// are visited at once; a limit less than 1 means no
// limit. Since f may be called concurrently, it must
// be safe for concurrent use.
//
// Walk stops at the first error returned by f or when
// ctx is done, and returns that error.
func (n *Node) Walk(ctx context.Context, limit int, f WalkFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	root := n.local
	if err := f(ctx, n, root); err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range n.sub {
		sub := &n.sub[i]
		g.Go(func() (err error) {
			sub.until(root, func(n *Node, world linear.Transform) bool {
				if err = ctx.Err(); err != nil {
					return false
				}
				err = f(ctx, n, world)
				return err == nil
			})
			return
		})
	}
	return g.Wait()
}
