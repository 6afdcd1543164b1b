package catalog

import "strings"

// Catalog is the normalized, UI-ready menu tree. It is pure data: built in
// one pass, never mutated afterwards. JSON field names match the envelope
// the storefront caches, so a cached tree round-trips byte-identically.
type Catalog struct {
	Categories       []Category                        `json:"categories"`
	OptionListsByRef map[string]map[string]interface{} `json:"optionListsByRef"`
}

type Category struct {
	ID    string `json:"id"`
	Ref   string `json:"ref"`
	Name  string `json:"name"`
	Sort  int    `json:"sort"`
	Items []Item `json:"items"`
}

type Item struct {
	ID          string `json:"id"`
	Ref         string `json:"ref"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Image is the resolved asset reference, or the raw upstream reference
	// when the asset index has no match. Empty means no image at all.
	Image          string `json:"image"`
	Sizes          []Size `json:"sizes"`
	BasePriceCents int    `json:"basePrice_cents"`
}

type Size struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
}

// Empty returns a valid zero catalog. Guards hand this back instead of nil
// so downstream rendering never has to null-check.
func Empty() Catalog {
	return Catalog{
		Categories:       []Category{},
		OptionListsByRef: map[string]map[string]interface{}{},
	}
}

// DefaultSize picks the size a product should preselect: the first one whose
// name looks like "regular", otherwise the first listed. Nil when the item
// has no size variants.
func (it *Item) DefaultSize() *Size {
	if len(it.Sizes) == 0 {
		return nil
	}
	for i := range it.Sizes {
		if strings.Contains(strings.ToLower(it.Sizes[i].Name), "reg") {
			return &it.Sizes[i]
		}
	}
	return &it.Sizes[0]
}
