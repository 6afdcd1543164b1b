package options

import (
	"strings"

	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/pricing"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/size"
)

// PricingOverrides is the external per-size pricing table, keyed by
// option-list ref then option ref. It covers producers that attach add-on
// prices at the list level instead of on the option itself.
type PricingOverrides map[string]map[string]map[string]interface{}

// Resolver answers "what does this add-on cost at this size" across the
// three levels of specificity producers use: a per-size map on the option,
// the external override table, or a flat price field. Most specific wins.
type Resolver struct {
	Overrides PricingOverrides
}

func NewResolver(overrides PricingOverrides) *Resolver {
	return &Resolver{Overrides: overrides}
}

// OverridesFromDocument builds the override table from the raw catalog's
// option_pricing records: [{option_list_ref, option_ref, price_by_size}].
// Malformed records are skipped.
func OverridesFromDocument(raw map[string]interface{}) PricingOverrides {
	out := PricingOverrides{}
	if raw == nil {
		return out
	}
	entries, _ := raw["option_pricing"].([]interface{})
	for _, entry := range entries {
		rec, _ := entry.(map[string]interface{})
		if rec == nil {
			continue
		}
		listRef, _ := rec["option_list_ref"].(string)
		optRef, _ := rec["option_ref"].(string)
		bySize, _ := rec["price_by_size"].(map[string]interface{})
		if listRef == "" || optRef == "" || bySize == nil {
			continue
		}
		if out[listRef] == nil {
			out[listRef] = map[string]map[string]interface{}{}
		}
		out[listRef][optRef] = bySize
	}
	return out
}

// PriceCents resolves an option's price in cents for the given size token.
// Resolution order:
//  1. per-size map on the option (price_by_size, then prices when it is a map)
//  2. override table entry for (option_list_ref, option_ref)
//  3. flat price_cents, then price
//  4. 0
//
// The result is never negative, whatever the upstream data claims.
func (r *Resolver) PriceCents(option map[string]interface{}, token size.Token) int {
	if cents := r.resolve(option, token); cents > 0 {
		return cents
	}
	return 0
}

func (r *Resolver) resolve(option map[string]interface{}, token size.Token) int {
	if option == nil {
		return 0
	}

	if bySize, ok := option["price_by_size"].(map[string]interface{}); ok {
		if v, ok := probeSizeKey(bySize, token); ok {
			return pricing.ToCents(v)
		}
	}
	if prices, ok := option["prices"].(map[string]interface{}); ok {
		if v, ok := probeSizeKey(prices, token); ok {
			return pricing.ToCents(v)
		}
	}
	// prices can also arrive as [{size, price_cents}]
	if entries, ok := option["prices"].([]interface{}); ok {
		for _, entry := range entries {
			rec, _ := entry.(map[string]interface{})
			if rec == nil {
				continue
			}
			label, _ := rec["size"].(string)
			if size.Normalize(label) != token {
				continue
			}
			if v, ok := rec["price_cents"]; ok {
				return pricing.Cents(v)
			}
		}
	}

	if bySize := r.overrideFor(option); bySize != nil {
		if v, ok := probeSizeKey(bySize, token); ok {
			return pricing.ToCents(v)
		}
	}

	if v, ok := option["price_cents"]; ok {
		return pricing.Cents(v)
	}
	if v, ok := option["price"]; ok {
		return pricing.ToCents(v)
	}
	return 0
}

func (r *Resolver) overrideFor(option map[string]interface{}) map[string]interface{} {
	listRef, _ := option["option_list_ref"].(string)
	optRef, _ := option["ref"].(string)
	if optRef == "" {
		optRef, _ = option["id"].(string)
	}
	if listRef == "" || optRef == "" {
		return nil
	}
	byOption, ok := r.Overrides[listRef]
	if !ok {
		return nil
	}
	return byOption[optRef]
}

// probeSizeKey tries the token as-is, upper-cased, then title-cased, since
// upstream keys are case-inconsistent ("large" vs "LARGE" vs "Large").
func probeSizeKey(m map[string]interface{}, token size.Token) (interface{}, bool) {
	s := string(token)
	for _, key := range []string{s, strings.ToUpper(s), titleCase(s)} {
		if v, ok := m[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
