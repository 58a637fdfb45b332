package model

import (
	"encoding/json"
	"fmt"
)

// tripJSON is the wire form of a Trip: dates as plain ISO-8601 calendar
// dates rather than full RFC3339 instants.
type tripJSON struct {
	ID          int64  `json:"id"`
	Destination string `json:"destination"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Notes       string `json:"notes,omitempty"`
}

func (t Trip) MarshalJSON() ([]byte, error) {
	return json.Marshal(tripJSON{
		ID:          t.ID,
		Destination: t.Destination,
		Start:       FormatDate(t.Start),
		End:         FormatDate(t.End),
		Notes:       t.Notes,
	})
}

func (t *Trip) UnmarshalJSON(b []byte) error {
	var j tripJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	start, err := ParseDate(j.Start)
	if err != nil {
		return fmt.Errorf("trip %d start: %w", j.ID, err)
	}
	end, err := ParseDate(j.End)
	if err != nil {
		return fmt.Errorf("trip %d end: %w", j.ID, err)
	}
	t.ID = j.ID
	t.Destination = j.Destination
	t.Start = start
	t.End = end
	t.Notes = j.Notes
	return nil
}
