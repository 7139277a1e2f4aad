package models

import (
	"encoding/json"

	"brickshare/internal/numeric"
)

// Money is a currency amount that tolerates the marketplace API's loose
// typing: numbers, numeric strings with grouping separators, and null all
// decode to a finite value. Malformed input decodes to 0 rather than failing
// the surrounding record.
type Money float64

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = 0
		return nil
	}
	*m = Money(numeric.Amount(raw))
	return nil
}

// Rate is an annual return percentage. Upstream sends it as a plain number or
// a percent-suffixed string ("8.5%"); both normalize through the same lenient
// parse, so "8.5%" and 8.5 are the same rate.
type Rate float64

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rate) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = 0
		return nil
	}
	if s, ok := raw.(string); ok {
		*r = Rate(numeric.ParseRate(s))
		return nil
	}
	*r = Rate(numeric.Amount(raw))
	return nil
}
