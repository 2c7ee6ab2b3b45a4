package media

import (
	"cmp"
	"errors"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// ErrNotFound is returned when an id is not part of a list.
var ErrNotFound = errors.New("media item not found")

// SortByOrder sorts items in place by Order, keeping the incoming order on ties.
func SortByOrder(items []*Item) {
	slices.SortStableFunc(items, func(a, b *Item) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

// Dedupe drops items whose ID was already seen, keeping the first.
func Dedupe(items []*Item) []*Item {
	return lo.UniqBy(items, func(i *Item) string { return i.ID })
}

// IndexOf returns the position of the item with the given id.
func IndexOf(items []*Item, id string) (int, error) {
	_, idx, ok := lo.FindIndexOf(items, func(i *Item) bool { return i.ID == id })
	if !ok {
		return -1, ErrNotFound
	}
	return idx, nil
}

// Filter returns the items whose title fuzzy-matches query, best match first.
// An empty query returns items unchanged.
func Filter(items []*Item, query string) []*Item {
	if query == "" {
		return items
	}

	titles := lo.Map(items, func(i *Item, _ int) string { return i.Title })
	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.OriginalIndex, b.OriginalIndex)
	})

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) *Item { return items[r.OriginalIndex] })
}
