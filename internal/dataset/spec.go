package dataset

import (
	"errors"
	"fmt"
)

const (
	DefaultNumberOfDrivers          = 50
	DefaultTasksPerDriver           = 25
	DefaultVarianceInTasksPerDriver = 5
)

// DatasetSpec describes the shape of a dataset to generate.
type DatasetSpec struct {
	Name                     string `json:"name,omitempty" yaml:"name"`
	NumberOfDrivers          int    `json:"numberOfDrivers" yaml:"number_of_drivers"`
	TasksPerDriver           int    `json:"tasksPerDriver" yaml:"tasks_per_driver"`
	VarianceInTasksPerDriver int    `json:"varianceInTasksPerDriver" yaml:"variance_in_tasks_per_driver"`
}

func DefaultSpec() DatasetSpec {
	return DatasetSpec{
		Name:                     "Default",
		NumberOfDrivers:          DefaultNumberOfDrivers,
		TasksPerDriver:           DefaultTasksPerDriver,
		VarianceInTasksPerDriver: DefaultVarianceInTasksPerDriver,
	}
}

func (s DatasetSpec) Validate() error {
	if s.NumberOfDrivers < 1 {
		return fmt.Errorf("dataset spec: number of drivers must be positive, got %d", s.NumberOfDrivers)
	}
	if s.TasksPerDriver < 1 {
		return fmt.Errorf("dataset spec: tasks per driver must be positive, got %d", s.TasksPerDriver)
	}
	if s.VarianceInTasksPerDriver < 0 {
		return errors.New("dataset spec: variance must not be negative")
	}
	if s.VarianceInTasksPerDriver >= s.TasksPerDriver {
		return fmt.Errorf(
			"dataset spec: variance (%d) must be smaller than tasks per driver (%d)",
			s.VarianceInTasksPerDriver, s.TasksPerDriver,
		)
	}
	return nil
}
