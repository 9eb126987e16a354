package services

import (
	"delivery-assignment-service/internal/domain"
	"errors"
)

var (
	// ErrNoDrivers means there is no candidate driver to resolve an assignment to.
	ErrNoDrivers = errors.New("no drivers available")
	// ErrEmptyTasklist means a driver has no tasks where at least one is required.
	ErrEmptyTasklist = errors.New("driver has no assigned tasks")
	// ErrEmptySnapshot means a snapshot view was built from an unpopulated export.
	ErrEmptySnapshot = errors.New("snapshot contains a driver without tasks")
)

// TaskAssigner is the contract shared by the live assignment engine and the
// snapshot view built from its export.
type TaskAssigner interface {
	// Assign a single task to driver, admitting unknown drivers.
	AssignToDriver(driver domain.Driver, task domain.Task)
	// Assign tasks to driver one by one. Not atomic.
	AssignTasksToDriver(driver domain.Driver, tasks []domain.Task)
	// Pick the driver for which adding task is cheapest.
	ResolveLowestCostAssignment(task domain.Task) (domain.Driver, error)
	// Return the workload tracker for driver, if it has one.
	TasklistForDriver(driver domain.Driver) (*domain.Tasklist, bool)
	// Copy the current assignments, without derived cost state.
	Export() Snapshot
	// Per-driver summary, heaviest load first.
	ReportLines() ([]ReportLine, error)
	// Human-readable rendering of ReportLines.
	Report() (string, error)
}

// DriverTasks is one driver's ordered, de-duplicated task set in a Snapshot.
type DriverTasks struct {
	Driver domain.Driver
	Tasks  []domain.Task
}

// Snapshot is an exported, detached copy of assignments in driver order.
type Snapshot []DriverTasks

// assignAll applies single-task assignment in order. It is not transactional.
func assignAll(a TaskAssigner, driver domain.Driver, tasks []domain.Task) {
	for _, task := range tasks {
		a.AssignToDriver(driver, task)
	}
}
