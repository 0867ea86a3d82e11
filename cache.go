package studioweb

import (
	"context"
	"sync"
	"time"
)

// IndexSource lists every known content slug. *content.Client implements it.
type IndexSource interface {
	Index(ctx context.Context) ([]string, error)
}

// SlugIndex is an in-memory cache of the content slug list with TTL. It is
// the only cache in the site and never holds documents.
type SlugIndex struct {
	mu      sync.RWMutex
	slugs   []string
	fetched time.Time
	ttl     time.Duration
	source  IndexSource
}

// NewSlugIndex creates a SlugIndex backed by src.
func NewSlugIndex(src IndexSource, ttl time.Duration) *SlugIndex {
	return &SlugIndex{source: src, ttl: ttl}
}

func (i *SlugIndex) valid() bool {
	return i.slugs != nil && time.Since(i.fetched) < i.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (i *SlugIndex) Invalidate() {
	i.mu.Lock()
	i.slugs = nil
	i.mu.Unlock()
}

// Slugs returns the cached slug list, reloading it once the TTL has passed.
// When a reload fails and an older list exists, the older list is returned
// along with the error.
func (i *SlugIndex) Slugs(ctx context.Context) ([]string, error) {
	i.mu.RLock()
	if i.valid() {
		slugs := i.slugs
		i.mu.RUnlock()
		return slugs, nil
	}
	i.mu.RUnlock()

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.valid() {
		return i.slugs, nil
	}
	slugs, err := i.source.Index(ctx)
	if err != nil {
		return i.slugs, err
	}
	if slugs == nil {
		slugs = []string{}
	}
	i.slugs = slugs
	i.fetched = time.Now()
	return slugs, nil
}
