package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToCents converts any upstream price representation into integer cents.
// Producers emit prices as dollars ("$19.50", 19.5, "0.50") or as raw cents
// (500, "1450") with no type tag. The rule that reconciles them: an integral
// value of at least 100 is already cents, everything else is dollars.
// Unparseable input yields 0, never an error.
func ToCents(value interface{}) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return numberToCents(float64(v))
	case int64:
		return numberToCents(float64(v))
	case float64:
		return numberToCents(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0
		}
		return numberToCents(n)
	case string:
		return stringToCents(v)
	default:
		return stringToCents(fmt.Sprint(v))
	}
}

func stringToCents(s string) int {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, strings.TrimSpace(s))

	if cleaned == "" {
		return 0
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return numberToCents(n)
}

func numberToCents(n float64) int {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	// Already-cents heuristic: whole number >= 100
	if n >= 100 && n == math.Trunc(n) {
		return int(n)
	}
	return int(math.Round(n * 100))
}

// Cents reads a value that is declared to already be cents (price_cents
// style fields). No dollars heuristic: 50 means fifty cents. Unparseable
// input yields 0.
func Cents(value interface{}) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(math.Round(v))
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0
		}
		return int(math.Round(n))
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return int(math.Round(n))
	default:
		return 0
	}
}

// FormatCents renders cents as a display price, e.g. 1950 -> "$19.50".
func FormatCents(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
