package tree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/cbegen/internal/ir"
	"github.com/roach88/cbegen/internal/synth"
)

// Options tune how a tree is written.
type Options struct {
	Workers int         // max concurrent file writes; <= 0 means 1
	Logger  *zap.Logger // nil means no logging
}

// Result reports what was written.
type Result struct {
	Files int64 `json:"files"`
	Bytes int64 `json:"bytes"`
}

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Write renders every unit of p into layout and then writes manifest.
func Write(ctx context.Context, layout ir.Layout, p *ir.Project, manifest []byte, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := max(opts.Workers, 1)

	logger.Info("Writing tree",
		zap.String("root", layout.Root),
		zap.Int("headers", len(p.Headers)),
		zap.Int("sources", len(p.Sources)),
		zap.Int("workers", workers))

	if err := Reset(layout); err != nil {
		return nil, err
	}

	var res Result
	write := func(path string, data []byte) error {
		if err := os.WriteFile(path, data, filePerm); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		atomic.AddInt64(&res.Files, 1)
		atomic.AddInt64(&res.Bytes, int64(len(data)))
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	includeRoot := layout.IncludeRoot()
	for _, h := range p.Headers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return write(filepath.Join(includeRoot, ir.HeaderFile(h.Index)), synth.RenderHeader(h))
		})
	}

	sourceRoot := layout.SourceRoot()
	for _, s := range p.Sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return write(filepath.Join(sourceRoot, ir.SourceFile(s.Index)), synth.RenderSource(s))
		})
	}
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		return write(filepath.Join(sourceRoot, ir.EntryFile), synth.RenderEntry(p.Entry))
	})

	if err := g.Wait(); err != nil {
		logger.Warn("Tree write stopped", zap.Error(err), zap.Int64("files", res.Files))
		return &res, err
	}

	manifestPath := layout.ManifestPath()
	if err := os.MkdirAll(filepath.Dir(manifestPath), dirPerm); err != nil {
		return &res, fmt.Errorf("creating manifest directory: %w", err)
	}
	if err := write(manifestPath, manifest); err != nil {
		return &res, err
	}

	logger.Info("Tree written",
		zap.String("manifest", manifestPath),
		zap.Int64("files", res.Files),
		zap.Int64("bytes", res.Bytes))
	return &res, nil
}

// Reset removes the generated directories of layout and recreates them
// empty. The build directory is created for the build engine to populate.
// Every directory is removed before any is created, so one directory
// nested in another survives the reset.
func Reset(layout ir.Layout) error {
	dirs := []string{layout.IncludeRoot(), layout.SourceRoot(), layout.BuildRoot()}
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("clearing %s: %w", dir, err)
		}
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
