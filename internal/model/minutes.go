package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Minutes is a screen-time duration that tolerates sloppy JSON input: a
// number, a numeric string, or null. Anything else leaves the value marked
// invalid instead of failing the decode, so one malformed entry cannot sink a
// whole batch; the normalizer drops invalid records later.
type Minutes struct {
	Value float64
	Valid bool
}

// NewMinutes returns a valid Minutes value.
func NewMinutes(v float64) Minutes { return Minutes{Value: v, Valid: true} }

// UnmarshalJSON implements json.Unmarshaler.
func (m *Minutes) UnmarshalJSON(b []byte) error {
	m.Value, m.Valid = 0, false
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		m.Value, m.Valid = v, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	m.Value, m.Valid = v, true
	return nil
}

// MarshalJSON implements json.Marshaler. Invalid values serialize as null.
func (m Minutes) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}
