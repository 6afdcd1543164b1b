package catalog

import (
	"sort"
	"strings"

	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/pricing"
)

// ImageResolver maps a logical image reference onto a served asset path.
type ImageResolver interface {
	Resolve(logical string) (string, bool)
}

// Normalizer converts a raw upstream catalog document into the canonical
// menu tree. It consolidates the schema-detection heuristics of every
// producer variant seen in the wild behind a single contract: whatever the
// document looks like, Normalize returns a valid (possibly empty) tree.
type Normalizer struct {
	Images ImageResolver
}

func NewNormalizer(images ImageResolver) *Normalizer {
	return &Normalizer{Images: images}
}

// Candidate field spellings across producers. detectKey picks one per batch.
var (
	catRefKeys   = []string{"ref", "id", "_id"}
	catNameKeys  = []string{"name", "title", "label"}
	prodCatKeys  = []string{"category_ref", "categoryRef", "category", "categoryId", "category_id"}
	skuContainer = []string{"skus", "sizes", "price_map", "prices"}
)

// Normalize builds the canonical tree from an untrusted document.
// It never returns an error and never panics: malformed records are skipped
// or defaulted field by field, and a document without usable categories or
// products yields an empty catalog.
func (n *Normalizer) Normalize(raw map[string]interface{}) Catalog {
	if raw == nil {
		return Empty()
	}
	if _, ok := raw["categories"].([]interface{}); !ok {
		return Empty()
	}
	if _, ok := raw["products"].([]interface{}); !ok {
		return Empty()
	}

	cats := records(raw["categories"])
	prods := records(raw["products"])

	catRefKey := detectKey(cats, catRefKeys, "ref")
	catNameKey := detectKey(cats, catNameKeys, "name")
	prodCatKey := detectKey(prods, prodCatKeys, "category_ref")

	// categoryRef -> products, source order preserved. Products with no
	// usable link are dropped, not errored.
	byCat := make(map[string][]map[string]interface{})
	for _, p := range prods {
		cref := keyString(p[prodCatKey])
		if cref == "" {
			continue
		}
		byCat[cref] = append(byCat[cref], p)
	}

	ordered := make([]map[string]interface{}, len(cats))
	copy(ordered, cats)
	sort.SliceStable(ordered, func(i, j int) bool {
		return sortOrder(ordered[i]) < sortOrder(ordered[j])
	})

	out := Empty()
	for _, cat := range ordered {
		ref := keyString(cat[catRefKey])
		if ref == "" {
			ref = keyString(cat["id"])
		}
		id := keyString(cat["id"])
		if id == "" {
			id = ref
		}
		name := strField(cat, catNameKey)
		if name == "" {
			name = ref
		}
		if name == "" {
			name = "Category"
		}

		items := make([]Item, 0, len(byCat[ref]))
		for _, p := range byCat[ref] {
			items = append(items, n.normalizeProduct(p, ref))
		}

		out.Categories = append(out.Categories, Category{
			ID:    id,
			Ref:   ref,
			Name:  name,
			Sort:  sortOrder(cat),
			Items: items,
		})
	}

	for _, list := range records(raw["option_lists"]) {
		ref := keyString(list["ref"])
		if ref == "" {
			ref = keyString(list["id"])
		}
		if ref == "" {
			continue
		}
		out.OptionListsByRef[ref] = list
	}

	return out
}

func sortOrder(cat map[string]interface{}) int {
	return intField(cat, 9999, "sort", "sort_order", "sortOrder")
}

func (n *Normalizer) normalizeProduct(p map[string]interface{}, catRef string) Item {
	name := strField(p, "name", "title")
	if name == "" {
		name = "Menu Item"
	}

	id := keyString(p["id"])
	if id == "" {
		id = keyString(p["ref"])
	}
	if id == "" {
		id = catRef + ":" + name
	}
	ref := keyString(p["ref"])
	if ref == "" {
		ref = id
	}

	sizes := n.normalizeSizes(p, id)

	var base int
	if len(sizes) > 0 {
		base = sizes[0].PriceCents
		for _, s := range sizes[1:] {
			if s.PriceCents < base {
				base = s.PriceCents
			}
		}
	} else if v, ok := p["price_cents"]; ok {
		base = pricing.Cents(v)
	} else {
		base = pricing.ToCents(p["price"])
	}

	image := strField(p, "image")
	if n.Images != nil && image != "" {
		if resolved, ok := n.Images.Resolve(image); ok {
			image = resolved
		}
	}

	return Item{
		ID:             id,
		Ref:            ref,
		Name:           name,
		Description:    strField(p, "description"),
		Image:          image,
		Sizes:          sizes,
		BasePriceCents: base,
	}
}

// normalizeSizes locates the product's size container (first spelling that
// is present wins) and flattens it into ordered {name, cents} pairs.
// Supported shapes: array of sku records, array of size-name strings paired
// with a sibling "prices" map, or a plain {name: price} object.
func (n *Normalizer) normalizeSizes(p map[string]interface{}, prodID string) []Size {
	var container interface{}
	for _, k := range skuContainer {
		if v, ok := p[k]; ok {
			container = v
			break
		}
	}

	sizes := []Size{}
	switch t := container.(type) {
	case []interface{}:
		for _, entry := range t {
			switch e := entry.(type) {
			case map[string]interface{}:
				name := strField(e, "size", "name")
				if name == "" {
					name = keyString(e["id"])
				}
				if name == "" {
					name = "Regular"
				}
				var cents int
				if v, ok := e["price"]; ok {
					cents = pricing.ToCents(v)
				} else if v, ok := e["price_cents"]; ok {
					cents = pricing.Cents(v)
				} else {
					continue
				}
				sizes = append(sizes, Size{
					ID:         skuID(e, prodID, name),
					Name:       name,
					PriceCents: cents,
				})
			case string:
				// legacy shape: sizes: ["Regular", ...] with prices: {...}
				prices := asMap(p["prices"])
				priceV, ok := prices[e]
				if !ok {
					continue
				}
				sizes = append(sizes, Size{
					ID:         prodID + ":" + strings.ToLower(e),
					Name:       e,
					PriceCents: pricing.ToCents(priceV),
				})
			}
		}
	case map[string]interface{}:
		names := make([]string, 0, len(t))
		for k := range t {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			sizes = append(sizes, Size{
				ID:         prodID + ":" + strings.ToLower(k),
				Name:       k,
				PriceCents: pricing.ToCents(t[k]),
			})
		}
	}
	return sizes
}

func skuID(sku map[string]interface{}, prodID, name string) string {
	if id := keyString(sku["id"]); id != "" {
		return id
	}
	return prodID + ":" + strings.ToLower(name)
}
