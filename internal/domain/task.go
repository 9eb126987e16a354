package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Represents a single unit of delivery work at a fixed location.
// Tasks are identified by ID: two tasks at the same location are still distinct.
type Task struct {
	ID       string   `json:"uuid"`
	Location Location `json:"location"`
}

// Point is a shorthand for the task's geopoint.
func (t Task) Point() Geopoint { return t.Location.Geopoint }

// UnmarshalJSON rejects tasks without a location.
func (t *Task) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       string    `json:"uuid"`
		Location *Location `json:"location"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode task: %w", err)
	}
	if raw.Location == nil {
		return errors.New("decode task: location must be present")
	}

	*t = Task{ID: raw.ID, Location: *raw.Location}
	return nil
}
