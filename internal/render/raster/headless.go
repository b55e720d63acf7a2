package raster

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/territory/internal/core/observability/log"
	"github.com/zeusync/territory/internal/render"
	"github.com/zeusync/territory/pkg/generic"
)

// Options drive a headless run.
type Options struct {
	Frames int
	DT     float64
	// SnapshotEvery writes a PNG every N frames; 0 writes only the last frame.
	SnapshotEvery int
	OutputDir     string
}

// Result summarizes a finished headless run.
type Result struct {
	Frames    int
	Snapshots []string
}

type frame struct {
	name string
	buf  *bytes.Buffer
}

// frameQueue bounds the number of encoded frames waiting for the writer.
const frameQueue = 4

// Run steps host for opts.Frames frames at a fixed dt. Frames chosen for a
// snapshot are encoded on the simulation goroutine and written to disk by a
// second goroutine.
func Run(ctx context.Context, host *render.Host, surface *Surface, opts Options, logger log.Log) (Result, error) {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	frames := make(chan frame, frameQueue)
	buffers := generic.NewWarmPool(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset, frameQueue)
	var res Result

	g.Go(func() error {
		defer close(frames)
		for i := 1; i <= opts.Frames; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			host.Tick(opts.DT)
			res.Frames = i

			if !snapshotDue(i, opts) {
				continue
			}
			if err := surface.Err(); err != nil {
				logger.Warn("frame drawn with errors", log.Int("frame", i), log.Error(err))
				surface.ResetErr()
			}
			buf := buffers.Get()
			if err := surface.EncodePNG(buf); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			select {
			case frames <- frame{name: fmt.Sprintf("frame-%06d.png", i), buf: buf}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		for f := range frames {
			path := filepath.Join(opts.OutputDir, f.name)
			size := f.buf.Len()
			err := os.WriteFile(path, f.buf.Bytes(), 0o644)
			buffers.Put(f.buf)
			if err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			res.Snapshots = append(res.Snapshots, path)
			logger.Debug("snapshot written", log.String("path", path), log.Int("bytes", size))
		}
		return nil
	})

	err := g.Wait()
	return res, err
}

func snapshotDue(i int, opts Options) bool {
	if i == opts.Frames {
		return true
	}
	return opts.SnapshotEvery > 0 && i%opts.SnapshotEvery == 0
}
