package services

import (
	"delivery-assignment-service/internal/domain"
	"fmt"
)

// BlindTaskManager is a detached view over an exported snapshot. It keeps only
// task membership per driver and re-derives every cost from scratch, so it is
// blind to how the assignments were reached.
//
// Changes to the view never reach the engine it was built from, and changes to
// that engine never reach the view.
type BlindTaskManager struct {
	order   []string
	drivers map[string]domain.Driver
	board   map[string]*domain.TaskSet
}

// NewBlindTaskManager copies src's export into an independent view.
func NewBlindTaskManager(src TaskAssigner) *BlindTaskManager {
	return NewBlindTaskManagerFromSnapshot(src.Export())
}

func NewBlindTaskManagerFromSnapshot(snap Snapshot) *BlindTaskManager {
	m := &BlindTaskManager{
		order:   make([]string, 0, len(snap)),
		drivers: make(map[string]domain.Driver, len(snap)),
		board:   make(map[string]*domain.TaskSet, len(snap)),
	}
	for _, dt := range snap {
		if set, ok := m.board[dt.Driver.ID]; ok {
			for _, task := range dt.Tasks {
				set.Add(task)
			}
			continue
		}
		m.order = append(m.order, dt.Driver.ID)
		m.drivers[dt.Driver.ID] = dt.Driver
		m.board[dt.Driver.ID] = domain.NewTaskSet(dt.Tasks...)
	}
	return m
}

// costWithTask is the full route distance with candidate appended at the end.
func costWithTask(tasks []domain.Task, candidate domain.Task) float64 {
	route := append(tasks, candidate)
	return domain.RouteDistance(route)
}

// ResolveLowestCostAssignment recomputes each driver's whole route cost with
// task appended and returns the cheapest; the first seen wins ties.
//
// Every driver must already have tasks: an empty set means the view was built
// from data it cannot reason about, and is reported as ErrEmptySnapshot.
func (m *BlindTaskManager) ResolveLowestCostAssignment(task domain.Task) (domain.Driver, error) {
	var (
		bestID   string
		bestCost float64
		found    bool
	)

	for _, id := range m.order {
		set := m.board[id]
		if set.Len() == 0 {
			return domain.Driver{}, fmt.Errorf(
				"blind resolve task=%s driver=%s: %w",
				task.ID, m.drivers[id].DisplayName(), ErrEmptySnapshot,
			)
		}

		cost := costWithTask(set.Tasks(), task)
		if !found || cost < bestCost {
			bestID = id
			bestCost = cost
			found = true
		}
	}

	if !found {
		return domain.Driver{}, fmt.Errorf("blind resolve task=%s: %w", task.ID, ErrNoDrivers)
	}
	return m.drivers[bestID], nil
}

// AssignToDriver adds task to driver's set. Re-adding a task is a no-op.
func (m *BlindTaskManager) AssignToDriver(driver domain.Driver, task domain.Task) {
	set, ok := m.board[driver.ID]
	if !ok {
		m.order = append(m.order, driver.ID)
		m.drivers[driver.ID] = driver
		m.board[driver.ID] = domain.NewTaskSet(task)
		return
	}
	set.Add(task)
}

func (m *BlindTaskManager) AssignTasksToDriver(driver domain.Driver, tasks []domain.Task) {
	assignAll(m, driver, tasks)
}

// TasklistForDriver rebuilds a tracker from the driver's current set.
// The returned tracker is a fresh copy.
func (m *BlindTaskManager) TasklistForDriver(driver domain.Driver) (*domain.Tasklist, bool) {
	set, ok := m.board[driver.ID]
	if !ok {
		return nil, false
	}
	return domain.NewTasklistFrom(m.drivers[driver.ID], set.Tasks()), true
}

func (m *BlindTaskManager) Export() Snapshot {
	out := make(Snapshot, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, DriverTasks{Driver: m.drivers[id], Tasks: m.board[id].Tasks()})
	}
	return out
}

func (m *BlindTaskManager) ReportLines() ([]ReportLine, error) {
	lists := make([]*domain.Tasklist, 0, len(m.order))
	for _, id := range m.order {
		lists = append(lists, domain.NewTasklistFrom(m.drivers[id], m.board[id].Tasks()))
	}
	return BuildReport(lists)
}

func (m *BlindTaskManager) Report() (string, error) {
	lines, err := m.ReportLines()
	if err != nil {
		return "", err
	}
	return FormatReport(lines), nil
}
