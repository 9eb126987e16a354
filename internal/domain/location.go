package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// A fixed place a task is delivered to. Label is optional.
type Location struct {
	ID       string
	Label    string
	Geopoint Geopoint
}

type locationJSON struct {
	ID       string    `json:"uuid"`
	Label    string    `json:"label,omitempty"`
	Geopoint *Geopoint `json:"geopoint"`
}

func (l Location) MarshalJSON() ([]byte, error) {
	gp := l.Geopoint
	return json.Marshal(locationJSON{ID: l.ID, Label: l.Label, Geopoint: &gp})
}

// UnmarshalJSON rejects locations without a geopoint.
func (l *Location) UnmarshalJSON(b []byte) error {
	var raw locationJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode location: %w", err)
	}
	if raw.Geopoint == nil {
		return errors.New("decode location: geopoint must be present")
	}

	*l = Location{ID: raw.ID, Label: raw.Label, Geopoint: *raw.Geopoint}
	return nil
}
