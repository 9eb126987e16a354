package services

import (
	"errors"
	"testing"

	"delivery-assignment-service/internal/domain"
)

func TestBlindIsolationFromEngine(t *testing.T) {
	m := NewTaskManager([]domain.Driver{d1, d2})
	m.AssignToDriver(d1, taskAt("a", 0, 0))
	m.AssignToDriver(d2, taskAt("b", 3, 3))

	blind := NewBlindTaskManager(m)

	m.AssignToDriver(d1, taskAt("c", 1, 1))
	m.AssignToDriver(d3, taskAt("d", 2, 2))

	snap := blind.Export()
	if len(snap) != 2 {
		t.Fatalf("blind drivers = %d, want 2", len(snap))
	}
	if ids := taskIDs(snap[0].Tasks); ids != "a" {
		t.Fatalf("blind d1 tasks = %s, want a", ids)
	}

	blind.AssignToDriver(d2, taskAt("e", 4, 4))
	tl, _ := m.TasklistForDriver(d2)
	if ids := taskIDs(tl.AssignedTasks()); ids != "b" {
		t.Fatalf("engine d2 tasks = %s after blind mutation, want b", ids)
	}
}

func TestBlindResolveUsesFullRouteCost(t *testing.T) {
	m := NewTaskManager([]domain.Driver{d1, d2})
	m.AssignTasksToDriver(d1, []domain.Task{taskAt("a", 0, 0), taskAt("b", 10, 0)})
	m.AssignTasksToDriver(d2, []domain.Task{taskAt("c", 0, 0), taskAt("d", 1, 0)})

	candidate := taskAt("p", 9, 0)

	// marginal: d1 = 1, d2 = 8
	live, err := m.ResolveLowestCostAssignment(candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live.ID != d1.ID {
		t.Fatalf("engine resolved %s, want %s", live.ID, d1.ID)
	}

	// full route: d1 = 10 + 1, d2 = 1 + 8
	blind := NewBlindTaskManager(m)
	got, err := blind.ResolveLowestCostAssignment(candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != d2.ID {
		t.Fatalf("blind resolved %s, want %s", got.ID, d2.ID)
	}
}

func TestBlindResolveIsConsistent(t *testing.T) {
	m := NewTaskManager([]domain.Driver{d1, d2, d3})
	m.AssignToDriver(d1, taskAt("a", 0, 0))
	m.AssignToDriver(d2, taskAt("b", 1, 1))
	m.AssignToDriver(d3, taskAt("c", 2, 2))
	blind := NewBlindTaskManager(m)

	candidate := taskAt("p", 1, 1.5)
	first, err := blind.ResolveLowestCostAssignment(candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := blind.ResolveLowestCostAssignment(candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("blind resolve not consistent: %s then %s", first.ID, second.ID)
	}
}

func TestBlindResolveRejectsEmptyDriver(t *testing.T) {
	m := NewTaskManager([]domain.Driver{d1, d2})
	m.AssignToDriver(d1, taskAt("a", 0, 0))

	blind := NewBlindTaskManager(m)
	_, err := blind.ResolveLowestCostAssignment(taskAt("p", 1, 1))
	if !errors.Is(err, ErrEmptySnapshot) {
		t.Fatalf("err = %v, want ErrEmptySnapshot", err)
	}
}

func TestBlindResolveWithoutDrivers(t *testing.T) {
	blind := NewBlindTaskManagerFromSnapshot(nil)
	_, err := blind.ResolveLowestCostAssignment(taskAt("p", 1, 1))
	if !errors.Is(err, ErrNoDrivers) {
		t.Fatalf("err = %v, want ErrNoDrivers", err)
	}
}

func TestBlindTasklistForDriver(t *testing.T) {
	m := NewTaskManager([]domain.Driver{d1})
	m.AssignTasksToDriver(d1, []domain.Task{taskAt("a", 0, 0), taskAt("b", 2, 3), taskAt("c", 1, 1)})
	blind := NewBlindTaskManager(m)

	live, _ := m.TasklistForDriver(d1)
	rebuilt, ok := blind.TasklistForDriver(d1)
	if !ok {
		t.Fatal("blind view should know d1")
	}
	if rebuilt.KnownDistance() != live.KnownDistance() || rebuilt.LoadEstimate() != live.LoadEstimate() {
		t.Fatalf("rebuilt distance=%v estimate=%v, live distance=%v estimate=%v",
			rebuilt.KnownDistance(), rebuilt.LoadEstimate(), live.KnownDistance(), live.LoadEstimate())
	}

	if _, ok := blind.TasklistForDriver(d2); ok {
		t.Fatal("blind view should not know d2")
	}
}

func TestBlindAssignIgnoresDuplicates(t *testing.T) {
	blind := NewBlindTaskManagerFromSnapshot(nil)
	task := taskAt("a", 0, 0)

	blind.AssignTasksToDriver(d1, []domain.Task{task, task, taskAt("b", 1, 1)})

	snap := blind.Export()
	if len(snap) != 1 || taskIDs(snap[0].Tasks) != "a,b" {
		t.Fatalf("export = %+v", snap)
	}
}

func TestBlindReportMatchesEngine(t *testing.T) {
	m := NewTaskManager([]domain.Driver{d1, d2})
	m.AssignTasksToDriver(d1, []domain.Task{taskAt("a", 0, 0), taskAt("b", 1, 1)})
	m.AssignTasksToDriver(d2, []domain.Task{taskAt("c", 0, 0), taskAt("d", 10, 10)})

	want, err := m.Report()
	if err != nil {
		t.Fatalf("engine report: %v", err)
	}
	got, err := NewBlindTaskManager(m).Report()
	if err != nil {
		t.Fatalf("blind report: %v", err)
	}
	if got != want {
		t.Fatalf("blind report =\n%s\nwant\n%s", got, want)
	}
}
