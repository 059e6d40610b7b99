package capability

import "encoding/json"

// Limit is an inclusive amount range in currency subunits.
type Limit struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// NewLimit builds a limit from two bounds in either order.
func NewLimit(a, b int64) Limit {
	if a > b {
		a, b = b, a
	}
	return Limit{Min: a, Max: b}
}

// Contains reports whether amount falls within the limit. Both bounds are
// inclusive.
func (l Limit) Contains(amount int64) bool {
	return l.Min <= amount && amount <= l.Max
}

func (l *Limit) UnmarshalJSON(data []byte) error {
	var raw struct {
		Min int64 `json:"min"`
		Max int64 `json:"max"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = NewLimit(raw.Min, raw.Max)
	return nil
}
