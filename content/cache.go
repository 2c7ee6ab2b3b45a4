package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

type entry struct {
	Items     []*media.Item `json:"items"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// Cached wraps a source with one file cache per tag.
// A tag is fresh for Lifetime after it was fetched; Invalidate makes it stale at once.
// When refetching a stale tag fails, the stale items are served.
type Cached struct {
	Source
	Lifetime time.Duration

	mu    sync.Mutex
	tags  map[string]*gache.Cache[*entry]
	clock func() time.Time
}

// NewCached wraps src. Cache files live in the content cache directory.
func NewCached(src Source, lifetime time.Duration) *Cached {
	return &Cached{
		Source:   src,
		Lifetime: lifetime,
		tags:     make(map[string]*gache.Cache[*entry]),
		clock:    time.Now,
	}
}

// Tag returns the revalidation tag for kind.
func Tag(kind media.Kind) string {
	return string(kind)
}

func (c *Cached) cacher(tag string) *gache.Cache[*entry] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cacher, ok := c.tags[tag]; ok {
		return cacher
	}

	cacher := gache.New[*entry](&gache.Options{
		Path:       filepath.Join(where.Content(), fmt.Sprintf("%s.%s.json", c.Name(), tag)),
		FileSystem: &filesystem.GacheFs{},
	})
	c.tags[tag] = cacher
	return cacher
}

func (c *Cached) FetchAll(ctx context.Context, kind media.Kind) ([]*media.Item, error) {
	cacher := c.cacher(Tag(kind))

	cached, expired, err := cacher.Get()
	if err != nil {
		log.Warnf("content cache %s: %s", Tag(kind), err)
	}

	stale := err != nil || expired || cached == nil || c.clock().Sub(cached.FetchedAt) >= c.Lifetime
	if !stale {
		return cached.Items, nil
	}

	items, err := c.Source.FetchAll(ctx, kind)
	if err != nil {
		if cached != nil && cached.Items != nil {
			log.Warnf("serving stale %s: %s", Tag(kind), err)
			return cached.Items, nil
		}
		return nil, err
	}

	if err := cacher.Set(&entry{Items: items, FetchedAt: c.clock()}); err != nil {
		log.Warnf("content cache %s: %s", Tag(kind), err)
	}
	return items, nil
}

// Invalidate marks tag stale so the next fetch goes to the source.
// Unknown tags are an error.
func (c *Cached) Invalidate(tag string) error {
	if !lo.Contains(lo.Map(media.Kinds(), func(k media.Kind, _ int) string { return Tag(k) }), tag) {
		return fmt.Errorf("unknown tag %q", tag)
	}

	cacher := c.cacher(tag)
	cached, _, _ := cacher.Get()
	if cached == nil {
		return nil
	}

	log.Infof("revalidate %s", tag)
	return cacher.Set(&entry{Items: cached.Items})
}
