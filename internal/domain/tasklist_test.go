package domain

import (
	"slices"
	"testing"
)

func TestTasklistEmpty(t *testing.T) {
	tl := NewTasklist(Driver{ID: "d1", Name: "Ada"})

	if tl.TaskCount() != 0 || len(tl.AssignedTasks()) != 0 {
		t.Fatalf("new tasklist has %d tasks", tl.TaskCount())
	}
	if tl.LoadEstimate() != 0 || tl.KnownDistance() != 0 {
		t.Fatalf("new tasklist estimate=%v distance=%v, want zeros", tl.LoadEstimate(), tl.KnownDistance())
	}
	if _, ok := tl.LastAssignedTask(); ok {
		t.Fatal("new tasklist should have no last task")
	}
	if _, ok := tl.FirstAssignedTask(); ok {
		t.Fatal("new tasklist should have no first task")
	}

	for _, task := range []Task{taskAt("a", 0, 0), taskAt("b", 50, -50)} {
		if c := tl.CostToAssignTask(task); c != 0 {
			t.Fatalf("cost for first task %s = %v, want 0", task.ID, c)
		}
	}
}

func TestTasklistAssignTask(t *testing.T) {
	tl := NewTasklist(Driver{ID: "d1"})

	tl.AssignTask(taskAt("a", 0, 0))
	assertFloat(t, "distance after 1", tl.KnownDistance(), 0)
	assertFloat(t, "estimate after 1", tl.LoadEstimate(), 0)

	tl.AssignTask(taskAt("b", 10, 10))
	assertFloat(t, "distance after 2", tl.KnownDistance(), 20)
	assertFloat(t, "estimate after 2", tl.LoadEstimate(), 4)

	// same point as the last task: no extra distance, estimate still accumulates
	tl.AssignTask(taskAt("c", 10, 10))
	assertFloat(t, "distance after 3", tl.KnownDistance(), 20)
	assertFloat(t, "estimate after 3", tl.LoadEstimate(), 8)

	if tl.TaskCount() != 3 {
		t.Fatalf("task count = %d, want 3", tl.TaskCount())
	}

	last, ok := tl.LastAssignedTask()
	if !ok || last.ID != "c" {
		t.Fatalf("last task = %+v, want c", last)
	}
	first, ok := tl.FirstAssignedTask()
	if !ok || first.ID != "a" {
		t.Fatalf("first task = %+v, want a", first)
	}
}

func TestTasklistCountMatchesAssigned(t *testing.T) {
	tl := NewTasklist(Driver{ID: "d1"})
	for i := 0; i < 20; i++ {
		tl.AssignTask(taskAt(string(rune('a'+i)), float64(i), float64(-i)))
		if tl.TaskCount() != len(tl.AssignedTasks()) {
			t.Fatalf("after %d: count=%d len=%d", i+1, tl.TaskCount(), len(tl.AssignedTasks()))
		}
	}
}

func TestTasklistEstimateNonDecreasing(t *testing.T) {
	tl := NewTasklist(Driver{ID: "d1"})
	prev := tl.LoadEstimate()
	for i, p := range [][2]float64{{0, 0}, {3, 4}, {3, 4}, {-2, 1}, {7, 7}} {
		tl.AssignTask(taskAt(string(rune('a'+i)), p[0], p[1]))
		if tl.LoadEstimate() < prev {
			t.Fatalf("estimate decreased from %v to %v", prev, tl.LoadEstimate())
		}
		prev = tl.LoadEstimate()
	}
}

func TestTasklistCostToAssignTask(t *testing.T) {
	tl := NewTasklist(Driver{ID: "d1"})
	tl.AssignTask(taskAt("a", 0, 0))
	tl.AssignTask(taskAt("b", 2, 2))

	// only the hop from the last task counts, not the whole route
	assertFloat(t, "cost", tl.CostToAssignTask(taskAt("c", 3, 1)), 2)

	if tl.TaskCount() != 2 {
		t.Fatalf("cost query mutated tasklist: count=%d", tl.TaskCount())
	}
}

func TestNewTasklistFromMatchesSequential(t *testing.T) {
	tasks := []Task{taskAt("t1", 0, 0), taskAt("t2", 1, 5), taskAt("t3", -3, 2)}
	driver := Driver{ID: "d1"}

	seq := NewTasklist(driver)
	for _, task := range tasks {
		seq.AssignTask(task)
	}
	pre := NewTasklistFrom(driver, tasks)

	if pre.KnownDistance() != seq.KnownDistance() {
		t.Fatalf("known distance: prefilled=%v sequential=%v", pre.KnownDistance(), seq.KnownDistance())
	}
	if pre.LoadEstimate() != seq.LoadEstimate() {
		t.Fatalf("load estimate: prefilled=%v sequential=%v", pre.LoadEstimate(), seq.LoadEstimate())
	}
	pl, _ := pre.LastAssignedTask()
	sl, _ := seq.LastAssignedTask()
	if pl.ID != sl.ID {
		t.Fatalf("last task: prefilled=%s sequential=%s", pl.ID, sl.ID)
	}
	if pre.TaskCount() != 3 {
		t.Fatalf("task count = %d, want 3", pre.TaskCount())
	}
}

func TestTasklistAssignedTasksIsCopy(t *testing.T) {
	tl := NewTasklistFrom(Driver{ID: "d1"}, []Task{taskAt("a", 0, 0)})
	got := tl.AssignedTasks()
	got[0].ID = "mutated"

	if first, _ := tl.FirstAssignedTask(); first.ID != "a" {
		t.Fatalf("tasklist changed through returned slice: %s", first.ID)
	}
}

func TestCompareByLoad(t *testing.T) {
	light := NewTasklistFrom(Driver{ID: "light"}, []Task{taskAt("a", 0, 0), taskAt("b", 1, 1)})
	heavy := NewTasklistFrom(Driver{ID: "heavy"}, []Task{taskAt("c", 0, 0), taskAt("d", 9, 9)})
	empty := NewTasklist(Driver{ID: "empty"})

	lists := []*Tasklist{light, empty, heavy}
	slices.SortStableFunc(lists, CompareByLoad)

	got := []string{lists[0].Driver().ID, lists[1].Driver().ID, lists[2].Driver().ID}
	want := []string{"heavy", "light", "empty"}
	if !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}
