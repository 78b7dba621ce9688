package astar

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Request is one search of a batch.
type Request struct {
	Config Config
	Source int
}

// ComputeAll runs independent searches concurrently with at most limit in
// flight (limit ≤ 0 means GOMAXPROCS). Results are returned in request order.
// The searches do not see each other's routes. The first error cancels the
// searches still running and is returned.
func ComputeAll(ctx context.Context, e Engine, reqs []Request, limit int) ([]*Result, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := e.Compute(ctx, req.Config, req.Source)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
