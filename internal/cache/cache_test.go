package cache

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/catalog"
)

func sampleMenu() *catalog.Catalog {
	menu := catalog.Empty()
	menu.Categories = append(menu.Categories, catalog.Category{
		ID: "c1", Ref: "c1", Name: "Pizzas", Sort: 1,
		Items: []catalog.Item{{
			ID: "p1", Ref: "p1", Name: "Margherita",
			Sizes:          []catalog.Size{{ID: "p1:regular", Name: "Regular", PriceCents: 1450}},
			BasePriceCents: 1450,
		}},
	})
	return &menu
}

func TestReadWrite_RoundTrip(t *testing.T) {
	c := New(NewInMemoryStore())
	c.Write(sampleMenu())

	got := c.Read()
	if got == nil {
		t.Fatal("expected cache hit")
	}
	if len(got.Categories) != 1 || got.Categories[0].Items[0].BasePriceCents != 1450 {
		t.Fatalf("unexpected cached tree: %+v", got)
	}
}

func TestRead_MissingKey(t *testing.T) {
	c := New(NewInMemoryStore())
	if c.Read() != nil {
		t.Fatal("expected miss on empty store")
	}
}

func TestRead_VersionMismatch(t *testing.T) {
	store := NewInMemoryStore()

	old := NewWithVersion(store, Version)
	old.Write(sampleMenu())

	next := NewWithVersion(store, Version+1)
	if next.Read() != nil {
		t.Fatal("expected version-gated miss, got a hit")
	}
}

func TestRead_CorruptPayload(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Set(Key, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	c := New(store)
	if c.Read() != nil {
		t.Fatal("expected miss on corrupt payload")
	}
}

type failingStore struct{}

func (failingStore) Get(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) Set(string, []byte) error   { return errors.New("quota exceeded") }

func TestWrite_BestEffort(t *testing.T) {
	c := New(failingStore{})
	// must not panic or propagate
	c.Write(sampleMenu())
	c.Write(nil)
	if c.Read() != nil {
		t.Fatal("expected miss from failing store")
	}
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Get(Key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	c := New(store)
	c.Write(sampleMenu())
	if got := c.Read(); got == nil || got.Categories[0].Name != "Pizzas" {
		t.Fatalf("expected file-backed hit, got %+v", got)
	}
}
