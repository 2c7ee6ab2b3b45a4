package preload

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Warm preloads urls with at most limit requests in flight.
// Results are returned in the order of urls.
func Warm(ctx context.Context, l Loader, urls []string, limit int) []Result {
	results := make([]Result, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, url := range urls {
		g.Go(func() error {
			results[i] = l.Preload(ctx, url)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
