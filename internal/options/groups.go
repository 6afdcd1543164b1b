package options

import "strings"

// Add-on grouping for the item detail panel: flatten the option lists that
// apply to a product and bucket them under readable headings.

type AddonGroup struct {
	Label string                   `json:"label"`
	Items []map[string]interface{} `json:"items"`
}

// Preferred heading order; anything else appends after, in first-seen order.
var groupOrder = []string{"Toppings", "Sauces", "Sides", "Drinks", "Extras"}

// GroupAddons flattens raw option lists into grouped add-ons. Each option's
// own "group" field wins; otherwise the list's group, inferred from its name
// when absent. Options without a usable ref are dropped.
func GroupAddons(lists []map[string]interface{}) []AddonGroup {
	grouped := map[string][]map[string]interface{}{}
	var seen []string

	for _, list := range lists {
		if list == nil {
			continue
		}
		baseGroup, _ := list["group"].(string)
		if baseGroup == "" {
			name, _ := list["name"].(string)
			if name == "" {
				name, _ = list["ref"].(string)
			}
			baseGroup = InferGroup(name)
		}

		items, ok := list["items"].([]interface{})
		if !ok {
			items, _ = list["options"].([]interface{})
		}
		for _, entry := range items {
			opt, _ := entry.(map[string]interface{})
			if opt == nil {
				continue
			}
			if optionRef(opt) == "" {
				continue
			}
			group, _ := opt["group"].(string)
			if group == "" {
				group = baseGroup
			}
			if _, ok := grouped[group]; !ok {
				seen = append(seen, group)
			}
			grouped[group] = append(grouped[group], opt)
		}
	}

	if len(grouped) == 0 {
		return []AddonGroup{}
	}

	out := []AddonGroup{}
	emitted := map[string]bool{}
	for _, label := range groupOrder {
		if items, ok := grouped[label]; ok {
			out = append(out, AddonGroup{Label: label, Items: items})
			emitted[label] = true
		}
	}
	for _, label := range seen {
		if !emitted[label] {
			out = append(out, AddonGroup{Label: label, Items: grouped[label]})
		}
	}
	return out
}

func optionRef(opt map[string]interface{}) string {
	for _, k := range []string{"ref", "id", "value", "name"} {
		if s, ok := opt[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// InferGroup guesses a heading from an option list's name.
func InferGroup(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "topping"):
		return "Toppings"
	case strings.Contains(n, "sauce"):
		return "Sauces"
	case strings.Contains(n, "drink"):
		return "Drinks"
	case strings.Contains(n, "side"):
		return "Sides"
	default:
		return "Extras"
	}
}
