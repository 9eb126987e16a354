package services

import (
	"delivery-assignment-service/internal/domain"
	"fmt"
	"log"
)

// TaskManager is the live assignment engine. It owns one Tasklist per driver
// and greedily hands each new task to the driver whose route grows the least.
//
// Drivers are scanned in the order they were first seen, so selection is
// reproducible for a given input order. A TaskManager is not safe for
// concurrent use: callers that share one must serialize access.
type TaskManager struct {
	order  []string
	board  map[string]*domain.Tasklist
	logger *log.Logger
}

// NewTaskManager creates an engine with an empty tasklist for every driver.
// Drivers sharing an ID collapse into the first one.
func NewTaskManager(drivers []domain.Driver) *TaskManager {
	m := &TaskManager{
		order: make([]string, 0, len(drivers)),
		board: make(map[string]*domain.Tasklist, len(drivers)),
	}
	for _, d := range drivers {
		if _, ok := m.board[d.ID]; ok {
			continue
		}
		m.order = append(m.order, d.ID)
		m.board[d.ID] = domain.NewTasklist(d)
	}
	return m
}

// SetLogger enables per-assignment logging. A nil logger disables it.
func (m *TaskManager) SetLogger(l *log.Logger) { m.logger = l }

// ResolveLowestCostAssignment returns the driver with the lowest marginal cost
// for task.
//
// A tracker reporting a cost of exactly zero wins immediately. Zero is the
// "no tasks yet" signal, so idle drivers are filled before anyone's route is
// extended. The same value is returned for a hop between identical points,
// and such a driver also short-circuits the scan.
//
// Among non-zero costs the first strictly lowest one seen keeps precedence.
func (m *TaskManager) ResolveLowestCostAssignment(task domain.Task) (domain.Driver, error) {
	var (
		best     *domain.Tasklist
		bestCost float64
	)

	for _, id := range m.order {
		tl := m.board[id]

		cost := tl.CostToAssignTask(task)
		if cost == 0 {
			return tl.Driver(), nil
		}
		if best == nil || cost < bestCost {
			best = tl
			bestCost = cost
		}
	}

	if best == nil {
		return domain.Driver{}, fmt.Errorf("resolve lowest cost assignment task=%s: %w", task.ID, ErrNoDrivers)
	}
	return best.Driver(), nil
}

// AssignToDriver appends task to driver's tasklist, creating the tasklist for
// drivers the engine has not seen before.
func (m *TaskManager) AssignToDriver(driver domain.Driver, task domain.Task) {
	if m.logger != nil {
		m.logger.Printf("assign task=%s driver=%s", task.ID, driver.DisplayName())
	}

	tl, ok := m.board[driver.ID]
	if !ok {
		m.order = append(m.order, driver.ID)
		m.board[driver.ID] = domain.NewTasklistFrom(driver, []domain.Task{task})
		return
	}
	tl.AssignTask(task)
}

func (m *TaskManager) AssignTasksToDriver(driver domain.Driver, tasks []domain.Task) {
	assignAll(m, driver, tasks)
}

// Assign resolves the cheapest driver for task and assigns it there.
func (m *TaskManager) Assign(task domain.Task) (domain.Driver, error) {
	driver, err := m.ResolveLowestCostAssignment(task)
	if err != nil {
		return domain.Driver{}, fmt.Errorf("assign: %w", err)
	}
	m.AssignToDriver(driver, task)
	return driver, nil
}

func (m *TaskManager) TasklistForDriver(driver domain.Driver) (*domain.Tasklist, bool) {
	tl, ok := m.board[driver.ID]
	return tl, ok
}

// Tasklists returns the engine's trackers in driver order.
func (m *TaskManager) Tasklists() []*domain.Tasklist {
	out := make([]*domain.Tasklist, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.board[id])
	}
	return out
}

// Export copies current assignments out of the engine. The result shares no
// state with the engine.
func (m *TaskManager) Export() Snapshot {
	out := make(Snapshot, 0, len(m.order))
	for _, id := range m.order {
		tl := m.board[id]
		set := domain.NewTaskSet(tl.AssignedTasks()...)
		out = append(out, DriverTasks{Driver: tl.Driver(), Tasks: set.Tasks()})
	}
	return out
}

func (m *TaskManager) ReportLines() ([]ReportLine, error) {
	return BuildReport(m.Tasklists())
}

func (m *TaskManager) Report() (string, error) {
	lines, err := m.ReportLines()
	if err != nil {
		return "", err
	}
	return FormatReport(lines), nil
}
