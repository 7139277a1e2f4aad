// Package numeric normalizes loosely-typed numeric fields from the
// marketplace API. Upstream represents monetary and percentage values
// inconsistently: plain numbers, numeric strings with grouping separators
// ("1,250,000"), percent-suffixed strings ("8.5%"), or absent values.
// Every ingestion point routes through this package so downstream arithmetic
// never encounters NaN or a missing value.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount coerces an arbitrary decoded JSON value into a finite float64.
// nil, empty strings, and unparseable values normalize to 0, never NaN.
func Amount(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		return ParseAmount(n)
	default:
		return 0
	}
}

// ParseAmount parses a monetary string, tolerating grouping separators and
// currency symbols. Negative values and decimals round-trip; unparseable
// input normalizes to 0.
func ParseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

// ParseRate parses the leading numeric prefix of a percentage string, so 8.5
// and "8.5%" yield the same value. Input without a numeric prefix normalizes
// to 0 rather than aborting the caller's aggregation.
func ParseRate(s string) float64 {
	s = strings.TrimSpace(s)

	end := 0
	seenDot := false
	for i, r := range s {
		if r == '+' || r == '-' {
			if i != 0 {
				break
			}
		} else if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
