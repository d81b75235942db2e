// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Scenedump loads a scene description and logs the
// world transform of every node in it.
//
// Usage:
//
//	scenedump [-level debug|info|warn|error] scene.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gviegas/raytrace/internal/config"
	"github.com/gviegas/raytrace/internal/log"
	"github.com/gviegas/raytrace/linear"
	"github.com/gviegas/raytrace/node"
)

func main() {
	level := flag.String("level", "", "log level (overrides the scene's log.level)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flag.Arg(0), *level); err != nil {
		fmt.Fprintln(os.Stderr, "scenedump:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path, level string) error {
	c, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if level != "" {
		c.Log.Level = level
	}
	lvl, err := c.LogLevel()
	if err != nil {
		return err
	}
	logger := log.New(lvl)
	defer logger.Sync()

	root, err := c.Build()
	if err != nil {
		return err
	}
	logger.Info("scene loaded",
		log.String("path", path),
		log.String("root", root.Name),
		log.Int("nodes", root.Len()))

	return dump(ctx, &root, c.Walk.Limit, logger)
}

// dump logs the world transform of every node under root.
func dump(ctx context.Context, root *node.Node, limit int, logger *log.Logger) error {
	err := root.Walk(ctx, limit, func(_ context.Context, n *node.Node, world linear.Transform) error {
		o := world.LocalToWorld.Point(linear.V3f{})
		l := logger.With(log.String("node", n.Name))
		l.Info("node",
			log.Int("children", len(n.Children())),
			log.Any("origin", o))
		// Only LocalToWorld is logged: composing nodes keeps
		// WorldToLocal in root-to-leaf order, which is not
		// the inverse of LocalToWorld below the first level.
		l.Debug("world transform",
			log.Any("local_to_world", world.LocalToWorld))
		return nil
	})
	if err != nil {
		logger.Error("walk failed", log.Error(err))
		return err
	}
	return nil
}
