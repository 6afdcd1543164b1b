package options

import (
	"testing"

	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/size"
)

func TestPriceCents_PerSizeBeatsFlat(t *testing.T) {
	r := NewResolver(nil)
	option := map[string]interface{}{
		"ref":           "extra-cheese",
		"price_by_size": map[string]interface{}{"large": 250.0},
		"price_cents":   100.0,
	}
	if got := r.PriceCents(option, size.Large); got != 250 {
		t.Fatalf("expected per-size 250, got %d", got)
	}
}

func TestPriceCents_CaseInsensitiveKeys(t *testing.T) {
	r := NewResolver(nil)

	upper := map[string]interface{}{
		"price_by_size": map[string]interface{}{"LARGE": 250.0},
	}
	if got := r.PriceCents(upper, size.Large); got != 250 {
		t.Fatalf("expected UPPER key hit, got %d", got)
	}

	title := map[string]interface{}{
		"prices": map[string]interface{}{"Large": "2.50"},
	}
	if got := r.PriceCents(title, size.Large); got != 250 {
		t.Fatalf("expected Title key hit, got %d", got)
	}
}

func TestPriceCents_PricesArray(t *testing.T) {
	r := NewResolver(nil)
	option := map[string]interface{}{
		"prices": []interface{}{
			map[string]interface{}{"size": "Lrg", "price_cents": 300.0},
			map[string]interface{}{"size": "Regular", "price_cents": 200.0},
		},
	}
	if got := r.PriceCents(option, size.Large); got != 300 {
		t.Fatalf("expected 300 from prices array, got %d", got)
	}
	if got := r.PriceCents(option, size.Regular); got != 200 {
		t.Fatalf("expected 200 from prices array, got %d", got)
	}
}

func TestPriceCents_OverrideTable(t *testing.T) {
	overrides := PricingOverrides{
		"EXTRAS_LARGE": {
			"anchovies": map[string]interface{}{"large": 350.0},
		},
	}
	r := NewResolver(overrides)
	option := map[string]interface{}{
		"ref":             "anchovies",
		"option_list_ref": "EXTRAS_LARGE",
		"price_cents":     100.0,
	}
	// override is more specific than the flat field
	if got := r.PriceCents(option, size.Large); got != 350 {
		t.Fatalf("expected override 350, got %d", got)
	}
	// size not covered by the override falls through to the flat field
	if got := r.PriceCents(option, size.Mini); got != 100 {
		t.Fatalf("expected flat 100, got %d", got)
	}
}

func TestPriceCents_FlatFallback(t *testing.T) {
	r := NewResolver(nil)

	cents := map[string]interface{}{"price_cents": 150.0, "price": "$9.00"}
	if got := r.PriceCents(cents, size.Regular); got != 150 {
		t.Fatalf("expected price_cents preferred, got %d", got)
	}

	dollars := map[string]interface{}{"price": "$1.50"}
	if got := r.PriceCents(dollars, size.Regular); got != 150 {
		t.Fatalf("expected 150 from dollar string, got %d", got)
	}
}

func TestPriceCents_Default(t *testing.T) {
	r := NewResolver(nil)
	if got := r.PriceCents(nil, size.Regular); got != 0 {
		t.Fatalf("expected 0 for nil option, got %d", got)
	}
	if got := r.PriceCents(map[string]interface{}{"name": "plain"}, size.Regular); got != 0 {
		t.Fatalf("expected 0 default, got %d", got)
	}
}

func TestOverridesFromDocument(t *testing.T) {
	raw := map[string]interface{}{
		"option_pricing": []interface{}{
			map[string]interface{}{
				"option_list_ref": "EXTRAS_REGULAR",
				"option_ref":      "olives",
				"price_by_size":   map[string]interface{}{"regular": 150.0},
			},
			map[string]interface{}{"option_ref": "broken"},
			"junk",
		},
	}
	overrides := OverridesFromDocument(raw)
	if len(overrides) != 1 {
		t.Fatalf("expected 1 list, got %d", len(overrides))
	}
	if overrides["EXTRAS_REGULAR"]["olives"] == nil {
		t.Fatal("expected olives override present")
	}

	if got := OverridesFromDocument(nil); len(got) != 0 {
		t.Fatal("expected empty table for nil document")
	}
}

func TestGroupAddons(t *testing.T) {
	lists := []map[string]interface{}{
		{
			"ref":  "EXTRA_TOPPINGS",
			"name": "Extra Toppings",
			"options": []interface{}{
				map[string]interface{}{"ref": "olives", "name": "Olives"},
				map[string]interface{}{"name": "No-ref is fine"},
				map[string]interface{}{},
			},
		},
		{
			"ref":   "DIPS",
			"name":  "Dipping Sauces",
			"items": []interface{}{map[string]interface{}{"ref": "garlic-dip"}},
		},
	}
	groups := GroupAddons(lists)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// ordered: Toppings before Sauces
	if groups[0].Label != "Toppings" || groups[1].Label != "Sauces" {
		t.Fatalf("unexpected order: %s, %s", groups[0].Label, groups[1].Label)
	}
	if len(groups[0].Items) != 2 {
		t.Fatalf("expected 2 toppings (ref or name), got %d", len(groups[0].Items))
	}
}

func TestInferGroup(t *testing.T) {
	cases := map[string]string{
		"Extra Toppings": "Toppings",
		"BBQ sauces":     "Sauces",
		"Soft Drinks":    "Drinks",
		"Side orders":    "Sides",
		"Mystery list":   "Extras",
	}
	for in, want := range cases {
		if got := InferGroup(in); got != want {
			t.Errorf("InferGroup(%q) = %q, want %q", in, got, want)
		}
	}
}
