package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a booking date. It decodes from an RFC 3339 timestamp or from a
// bare YYYY-MM-DD date, which is read as midnight UTC. It encodes as RFC 3339.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves d unchanged.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
}
