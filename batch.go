package planerect

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// batchChunk is the number of points converted per goroutine.
const batchChunk = 1024

// ConvertFromGeodeticBatch converts many geodetic points concurrently. The
// result is index aligned with points and identical to calling
// ConvertFromGeodetic on each one. The only error is ctx's.
func (p *Projector) ConvertFromGeodeticBatch(ctx context.Context, points []GeodeticPoint) ([]PlanarPoint, error) {
	out := make([]PlanarPoint, len(points))
	err := inChunks(ctx, len(points), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = p.ConvertFromGeodetic(points[i])
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConvertToGeodeticBatch converts many plane points concurrently. The result
// is index aligned with points and identical to calling ConvertToGeodetic on
// each one. The only error is ctx's.
func (p *Projector) ConvertToGeodeticBatch(ctx context.Context, points []PlanarPoint) ([]GeodeticPoint, error) {
	out := make([]GeodeticPoint, len(points))
	err := inChunks(ctx, len(points), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = p.ConvertToGeodetic(points[i])
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func inChunks(ctx context.Context, n int, fn func(lo, hi int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < n; lo += batchChunk {
		if gctx.Err() != nil {
			break
		}
		lo := lo
		hi := min(lo+batchChunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
