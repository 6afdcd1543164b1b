package catalog

import (
	"strconv"
	"strings"
)

// Helpers for picking fields out of the untrusted upstream document.
// Every accessor degrades to a zero value; nothing here panics on a
// missing key or a mistyped field.

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

// records filters a raw sequence down to its mapping entries; anything else
// (strings, numbers, nulls mixed into the array) is dropped.
func records(v interface{}) []map[string]interface{} {
	raw := asSlice(v)
	out := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		if m := asMap(entry); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// keyString renders a field value as a lookup key. Falsy values (nil, "",
// 0, false) come back empty, which callers treat as "no key".
func keyString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case bool:
		return ""
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		if t == 0 {
			return ""
		}
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func strField(rec map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := rec[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func intField(rec map[string]interface{}, def int, keys ...string) int {
	for _, k := range keys {
		switch t := rec[k].(type) {
		case float64:
			return int(t)
		case int:
			return t
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
				return n
			}
		}
	}
	return def
}

// detectKey probes candidate field names against a record batch and returns
// the first candidate present on at least one record. The same key is then
// used for the whole batch; producers do not mix spellings within one
// document, so per-record probing would only mask real schema drift.
func detectKey(recs []map[string]interface{}, candidates []string, fallback string) string {
	for _, candidate := range candidates {
		for _, rec := range recs {
			if _, ok := rec[candidate]; ok {
				return candidate
			}
		}
	}
	return fallback
}
