// Package content retrieves portfolio items from a content backend.
package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/folio-cli/folio/media"
	"golang.org/x/sync/errgroup"
)

// ErrContentFetchFailed wraps every failure to obtain a list from a backend.
var ErrContentFetchFailed = errors.New("content fetch failed")

// Source is a content backend.
// FetchAll returns every published item of kind, sorted by order.
type Source interface {
	Name() string
	FetchAll(ctx context.Context, kind media.Kind) ([]*media.Item, error)
}

// Library holds both sections of the portfolio.
type Library struct {
	Videos []*media.Item `json:"videos"`
	Photos []*media.Item `json:"photos"`
}

// Of returns the section for kind.
func (l *Library) Of(kind media.Kind) []*media.Item {
	if kind == media.Photo {
		return l.Photos
	}
	return l.Videos
}

// FetchLibrary fetches videos and photos concurrently.
// The first failure cancels the other request.
func FetchLibrary(ctx context.Context, src Source) (*Library, error) {
	var lib Library

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		lib.Videos, err = src.FetchAll(ctx, media.Video)
		return
	})
	g.Go(func() (err error) {
		lib.Photos, err = src.FetchAll(ctx, media.Photo)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// normalize drops duplicate ids, stamps the kind and sorts by order.
func normalize(items []*media.Item, kind media.Kind) []*media.Item {
	items = media.Dedupe(items)
	for _, item := range items {
		item.Kind = kind
	}
	media.SortByOrder(items)
	return items
}

func fetchErr(src string, kind media.Kind, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrContentFetchFailed, src, kind.Plural(), err)
}
