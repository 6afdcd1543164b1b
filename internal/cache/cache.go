package cache

import (
	"encoding/json"
	"log"

	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/catalog"
)

const (
	// Key and version match the storefront's localStorage envelope.
	// Bump Version whenever the canonical tree shape changes; old envelopes
	// then read as misses instead of feeding a stale shape to the UI.
	Key     = "pp_menu_v2_cache"
	Version = 3
)

type envelope struct {
	Version int             `json:"__ver"`
	Data    catalog.Catalog `json:"data"`
}

// Cache is the versioned last-known-good menu, used as a fallback when the
// live fetch fails. Read never errors and never returns partial data; Write
// is best-effort.
type Cache struct {
	store   Store
	key     string
	version int
}

func New(store Store) *Cache {
	return &Cache{store: store, key: Key, version: Version}
}

// NewWithVersion exists for version-gate tests and migrations.
func NewWithVersion(store Store, version int) *Cache {
	return &Cache{store: store, key: Key, version: version}
}

// Read returns the cached canonical tree, or nil on a miss: absent key,
// undecodable payload, or version mismatch all count as misses.
func (c *Cache) Read() *catalog.Catalog {
	data, err := c.store.Get(c.key)
	if err != nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil
	}
	if env.Version != c.version {
		return nil
	}
	return &env.Data
}

// Write stores the tree under the current version. Serialization or storage
// failures are logged and swallowed; a missing cache is an acceptable
// degraded state, not an error to surface.
func (c *Cache) Write(menu *catalog.Catalog) {
	if menu == nil {
		return
	}
	data, err := json.Marshal(envelope{Version: c.version, Data: *menu})
	if err != nil {
		log.Printf("menu cache: marshal failed: %v", err)
		return
	}
	if err := c.store.Set(c.key, data); err != nil {
		log.Printf("menu cache: write failed: %v", err)
	}
}
