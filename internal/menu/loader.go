package menu

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/catalog"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/options"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) (map[string]interface{}, error)
}

type Normalizer interface {
	Normalize(raw map[string]interface{}) catalog.Catalog
}

type Cache interface {
	Read() *catalog.Catalog
	Write(menu *catalog.Catalog)
}

// State is what the UI layer consumes: the last-good canonical tree plus
// load/error flags, refreshed once per load cycle.
type State struct {
	Menu *catalog.Catalog
	// Overrides is the per-size add-on pricing table carried alongside the
	// catalog in the raw document. Empty after a cache fallback; the
	// resolver then degrades to option-level pricing.
	Overrides options.PricingOverrides
	Loading   bool
	Err       error
}

// Loader runs the menu load cycle: fetch raw document, normalize, cache.
// Stale-while-revalidate: the cached tree is served from cold start and
// replaced once a fetch succeeds; on fetch failure the cache stays.
// At most one fetch is in flight at a time.
type Loader struct {
	fetcher    Fetcher
	normalizer Normalizer
	cache      Cache
	url        string

	mu       sync.Mutex
	inflight bool
	state    State
}

func NewLoader(fetcher Fetcher, normalizer Normalizer, cache Cache, url string) *Loader {
	l := &Loader{
		fetcher:    fetcher,
		normalizer: normalizer,
		cache:      cache,
		url:        url,
	}
	if cached := cache.Read(); cached != nil {
		l.state.Menu = cached
	} else {
		l.state.Loading = true
	}
	return l
}

// Load runs one load cycle. A call while a fetch is outstanding is a no-op;
// re-entrant triggers must not duplicate the in-flight request.
func (l *Loader) Load(ctx context.Context) {
	l.mu.Lock()
	if l.inflight {
		l.mu.Unlock()
		return
	}
	l.inflight = true
	l.state.Loading = true
	l.mu.Unlock()

	cycle := uuid.NewString()[:8]

	raw, err := l.fetcher.Fetch(ctx, l.url)
	var fresh catalog.Catalog
	if err == nil {
		fresh = l.normalizer.Normalize(raw)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inflight = false

	// Consumer torn down mid-fetch: discard the result entirely.
	if ctx.Err() != nil {
		log.Printf("[menu] load %s canceled, result discarded", cycle)
		return
	}

	if err != nil {
		if fallback := l.cache.Read(); fallback != nil {
			log.Printf("[menu] load %s failed, serving cache: %v", cycle, err)
			l.state = State{Menu: fallback}
			return
		}
		log.Printf("[menu] load %s failed, no cache available: %v", cycle, err)
		l.state = State{Err: err}
		return
	}

	l.state = State{Menu: &fresh, Overrides: options.OverridesFromDocument(raw)}
	l.cache.Write(&fresh)
	log.Printf("[menu] load %s ok: %d categories", cycle, len(fresh.Categories))
}

// Snapshot returns a copy of the current state for the HTTP layer.
func (l *Loader) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
