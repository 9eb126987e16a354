package domain

// TaskSet is an insertion-ordered set of tasks keyed by task ID.
// The zero value is ready to use.
type TaskSet struct {
	tasks []Task
	index map[string]struct{}
}

func NewTaskSet(tasks ...Task) *TaskSet {
	s := &TaskSet{}
	for _, t := range tasks {
		s.Add(t)
	}
	return s
}

// Add appends task unless a task with the same ID is already present.
// It reports whether the set changed.
func (s *TaskSet) Add(task Task) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[task.ID]; ok {
		return false
	}
	s.index[task.ID] = struct{}{}
	s.tasks = append(s.tasks, task)
	return true
}

func (s *TaskSet) Len() int { return len(s.tasks) }

// Tasks returns a copy of the members in insertion order.
func (s *TaskSet) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}
