// Package pricing converts the catalog's heterogeneous price values
// (numbers or locale-formatted strings) into canonical amounts and
// renders them as Colombian pesos. Display code and the order message
// composer share the same Format so the two never drift apart.
package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize returns the canonical amount for a price value. Numeric
// inputs pass through unchanged; strings are parsed leniently. Anything
// else normalizes to 0 rather than failing, so malformed upstream data
// degrades to a free item instead of an error.
func Normalize(price any) float64 {
	switch v := price.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}

		return f
	case string:
		return NormalizeString(v)
	default:
		return 0
	}
}

// NormalizeString parses a regional currency string such as "$45.000".
// The dot is a thousands separator in es-CO, so it is stripped along
// with the currency symbol, spaces and commas. Strings with no digits
// normalize to 0.
func NormalizeString(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', '.', ',', ' ', '\u00a0':
			return -1
		}

		return r
	}, s)

	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return f
	}

	// Leftover non-numeric characters ("COP 45.000"). Keep the digits.
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, cleaned)

	if digits == "" {
		return 0
	}

	f, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}

	return f
}

// Format renders a price as whole pesos: "$ 90.000". Fractional
// subunits are rounded away, never displayed.
func Format(price any) string {
	amount := int64(math.Round(Normalize(price)))

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return sign + "$ " + group(strconv.FormatInt(amount, 10))
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}

		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
