package domain

// TaskCountWeight scales how strongly accumulated distance feeds the load estimate.
const TaskCountWeight = 0.2

// Workload tracker for a single driver.
//
// A Tasklist keeps the driver's tasks in assignment order together with a
// running cost summary that is cheap to query: the known distance between
// consecutive tasks and a load estimate. The load estimate is a heuristic for
// how unwieldy the route has become. It is only ever increased, never
// recomputed, so it depends on both the number and the order of assignments.
//
// A Tasklist is not safe for concurrent use.
type Tasklist struct {
	driver        Driver
	assigned      []Task
	last          *Task
	taskCount     int
	loadEstimate  float64
	knownDistance float64
}

func NewTasklist(driver Driver) *Tasklist {
	return &Tasklist{driver: driver}
}

// NewTasklistFrom builds a tracker from already assigned tasks. The tasks are
// folded through AssignTask in order, so the result matches assigning them one
// by one to an empty tracker.
func NewTasklistFrom(driver Driver, tasks []Task) *Tasklist {
	tl := &Tasklist{
		driver:   driver,
		assigned: make([]Task, 0, len(tasks)),
	}
	for _, task := range tasks {
		tl.AssignTask(task)
	}
	return tl
}

// Append a task to the end of the driver's route.
func (t *Tasklist) AssignTask(task Task) {
	t.knownDistance += Distance(t.last, task)
	t.assigned = append(t.assigned, task)
	t.taskCount++

	last := task
	t.last = &last

	// (knownDistance / taskCount) * (taskCount * weight) reduces to this.
	t.loadEstimate += t.knownDistance * TaskCountWeight
}

// CostToAssignTask returns the marginal cost of appending task: the hop from
// the last assigned task only. A driver without tasks reports 0, which the
// assignment engine treats as "first task for this driver".
func (t *Tasklist) CostToAssignTask(task Task) float64 {
	if t.last == nil {
		return 0
	}
	return Distance(t.last, task)
}

func (t *Tasklist) Driver() Driver { return t.driver }

// AssignedTasks returns a copy of the tasks in assignment order.
func (t *Tasklist) AssignedTasks() []Task {
	out := make([]Task, len(t.assigned))
	copy(out, t.assigned)
	return out
}

func (t *Tasklist) TaskCount() int { return t.taskCount }

func (t *Tasklist) LoadEstimate() float64 { return t.loadEstimate }

func (t *Tasklist) KnownDistance() float64 { return t.knownDistance }

func (t *Tasklist) LastAssignedTask() (Task, bool) {
	if t.last == nil {
		return Task{}, false
	}
	return *t.last, true
}

func (t *Tasklist) FirstAssignedTask() (Task, bool) {
	if len(t.assigned) == 0 {
		return Task{}, false
	}
	return t.assigned[0], true
}

// CompareByLoad orders tasklists by descending load estimate.
// Use with a stable sort to keep ties in their original order.
func CompareByLoad(a, b *Tasklist) int {
	switch {
	case a.loadEstimate > b.loadEstimate:
		return -1
	case a.loadEstimate < b.loadEstimate:
		return 1
	}
	return 0
}
