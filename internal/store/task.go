package store

import (
	"fmt"
	"strings"
	"time"
)

// Task is one record in the document. IDs are assigned once from NextID and
// never reused. Records are never removed from storage: delete marks Hidden
// and the record stays on disk as a tombstone.
type Task struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	Hidden      bool       `json:"hidden"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	HiddenAt    *time.Time `json:"hiddenAt,omitempty"`
}

// TaskData is the entire persisted document. Task order is insertion order.
type TaskData struct {
	Tasks  []Task `json:"tasks"`
	NextID int    `json:"nextId"`
}

// Pending returns pointers to the tasks visible in the pending view, in
// storage order. A task's serial number is its 1-based position in this
// slice, valid only until the underlying set changes.
func Pending(d *TaskData) []*Task {
	var out []*Task
	for i := range d.Tasks {
		t := &d.Tasks[i]
		if !t.Completed && !t.Hidden {
			out = append(out, t)
		}
	}
	return out
}

// Archived returns pointers to the completed, non-hidden tasks in storage
// order.
func Archived(d *TaskData) []*Task {
	var out []*Task
	for i := range d.Tasks {
		t := &d.Tasks[i]
		if t.Completed && !t.Hidden {
			out = append(out, t)
		}
	}
	return out
}

// Add appends a new pending task and reports its serial number in the
// pending view after insertion.
func (s *Store) Add(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: task name is required", ErrInvalid)
	}
	d := s.Load()
	d.Tasks = append(d.Tasks, Task{
		ID:        d.NextID,
		Name:      name,
		CreatedAt: timeNow(),
	})
	d.NextID++
	if err := s.Save(d); err != nil {
		return 0, err
	}
	return len(Pending(d)), nil
}

// Complete marks the n-th pending task done. The bound is checked against
// the pending view of the freshly loaded document, not a prior listing.
func (s *Store) Complete(n int) (Task, error) {
	d := s.Load()
	pending := Pending(d)
	if n < 1 || n > len(pending) {
		return Task{}, fmt.Errorf("%w: no pending task #%d", ErrInvalid, n)
	}
	t := pending[n-1]
	now := timeNow()
	t.Completed = true
	t.CompletedAt = &now
	if err := s.Save(d); err != nil {
		return Task{}, err
	}
	return *t, nil
}

// Hide tombstones the n-th pending task. Same bounds rule as Complete.
func (s *Store) Hide(n int) (Task, error) {
	d := s.Load()
	pending := Pending(d)
	if n < 1 || n > len(pending) {
		return Task{}, fmt.Errorf("%w: no pending task #%d", ErrInvalid, n)
	}
	t := pending[n-1]
	now := timeNow()
	t.Hidden = true
	t.HiddenAt = &now
	if err := s.Save(d); err != nil {
		return Task{}, err
	}
	return *t, nil
}

// HidePending tombstones every pending task and reports how many were hit.
// Zero is a valid outcome; nothing is written in that case.
func (s *Store) HidePending() (int, error) {
	d := s.Load()
	return s.hideAll(d, Pending(d))
}

// HideArchived tombstones every archived task and reports how many were hit.
func (s *Store) HideArchived() (int, error) {
	d := s.Load()
	return s.hideAll(d, Archived(d))
}

func (s *Store) hideAll(d *TaskData, view []*Task) (int, error) {
	if len(view) == 0 {
		return 0, nil
	}
	now := timeNow()
	for _, t := range view {
		t.Hidden = true
		t.HiddenAt = &now
	}
	if err := s.Save(d); err != nil {
		return 0, err
	}
	return len(view), nil
}
