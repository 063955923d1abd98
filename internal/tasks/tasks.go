package tasks

// Status represents the completion state of a task.
type Status int

const (
	Pending Status = iota
	Done
)

// Task represents a single item in the demo task list.
type Task struct {
	Title  string
	Status Status
}

// List manages an ordered collection of tasks with a selection cursor.
// It is only mutated from Bubbletea's single-threaded Update loop.
type List struct {
	tasks    []Task
	selected int
}

// New creates a List from the given tasks.
func New(tasks []Task) *List {
	return &List{tasks: tasks}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Task returns a pointer to the task at the given index, or nil if out of range.
func (l *List) Task(i int) *Task {
	if i < 0 || i >= len(l.tasks) {
		return nil
	}
	return &l.tasks[i]
}

// Selected returns the index of the selected task, or -1 if the list is empty.
func (l *List) Selected() int {
	if len(l.tasks) == 0 {
		return -1
	}
	return l.selected
}

// MoveSelection moves the cursor by delta, clamped to the list bounds.
func (l *List) MoveSelection(delta int) {
	l.Select(l.selected + delta)
}

// Select sets the cursor to i, clamped to the list bounds.
func (l *List) Select(i int) {
	if len(l.tasks) == 0 {
		l.selected = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(l.tasks) {
		i = len(l.tasks) - 1
	}
	l.selected = i
}

// Add appends a new pending task and returns its index.
func (l *List) Add(title string) int {
	l.tasks = append(l.tasks, Task{Title: title})
	return len(l.tasks) - 1
}

// Remove deletes the task at the given index, adjusting the cursor.
// Returns false if the index is invalid.
func (l *List) Remove(i int) bool {
	if i < 0 || i >= len(l.tasks) {
		return false
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	if l.selected > i || l.selected >= len(l.tasks) {
		l.Select(l.selected - 1)
	}
	return true
}

// Toggle flips the completion state of the task at the given index.
// Returns false if the index is invalid.
func (l *List) Toggle(i int) bool {
	if i < 0 || i >= len(l.tasks) {
		return false
	}
	if l.tasks[i].Status == Done {
		l.tasks[i].Status = Pending
	} else {
		l.tasks[i].Status = Done
	}
	return true
}
