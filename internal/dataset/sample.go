package dataset

import (
	"bytes"
	"delivery-assignment-service/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SampleDataset is a generated or loaded set of drivers and an ordered task
// stream, before any assignment has happened.
type SampleDataset struct {
	Tasks   []domain.Task   `json:"tasks"`
	Drivers []domain.Driver `json:"drivers"`
	Names   *NameHelper     `json:"names,omitempty"`
}

// ReadSampleDataset decodes and validates a dataset.
func ReadSampleDataset(r io.Reader) (*SampleDataset, error) {
	var ds SampleDataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("read dataset: decode json: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return &ds, nil
}

// LoadSampleDataset reads a dataset from a JSON file.
func LoadSampleDataset(path string) (*SampleDataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: read %q: %w", path, err)
	}

	ds, err := ReadSampleDataset(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", path, err)
	}
	return ds, nil
}

// Validate checks that every driver and task carries an ID and that IDs are unique.
func (d *SampleDataset) Validate() error {
	drivers := make(map[string]struct{}, len(d.Drivers))
	for i, drv := range d.Drivers {
		if drv.ID == "" {
			return fmt.Errorf("driver at index %d: uuid must not be empty", i)
		}
		if _, ok := drivers[drv.ID]; ok {
			return fmt.Errorf("driver at index %d: duplicate uuid %q", i, drv.ID)
		}
		drivers[drv.ID] = struct{}{}
	}

	tasks := make(map[string]struct{}, len(d.Tasks))
	for i, t := range d.Tasks {
		if t.ID == "" {
			return fmt.Errorf("task at index %d: uuid must not be empty", i)
		}
		if _, ok := tasks[t.ID]; ok {
			return fmt.Errorf("task at index %d: duplicate uuid %q", i, t.ID)
		}
		tasks[t.ID] = struct{}{}
	}
	return nil
}

// WriteFile stores the dataset as indented JSON.
func (d *SampleDataset) WriteFile(path string) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("write dataset: encode json: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write dataset: %q: %w", path, err)
	}
	return nil
}
