package tasks

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Type categorizes a schedule entry.
type Type string

const (
	TypeAcademic  Type = "academic"
	TypeLearning  Type = "learning"
	TypePersonal  Type = "personal"
	TypeEvent     Type = "event"
	TypeHackathon Type = "hackathon"
)

// Types lists all task types in display order.
func Types() []Type {
	return []Type{TypeAcademic, TypeLearning, TypePersonal, TypeEvent, TypeHackathon}
}

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists all priorities in display order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// GeneratedPrefix tags template tasks produced by schedule generation.
// The prefix is the sole discriminator between generated and
// user-created entries.
const GeneratedPrefix = "ai-"

// Task is one schedule entry. StartTime and EndTime are zero-padded
// HH:MM strings; ordering compares them lexicographically, which is
// chronological only because the format is fixed-width.
type Task struct {
	ID        string
	Title     string
	Type      Type
	Priority  Priority
	StartTime string
	EndTime   string
	Completed bool
}

// Generated reports whether the task came from schedule generation.
func (t Task) Generated() bool {
	return strings.HasPrefix(t.ID, GeneratedPrefix)
}

// List is the in-memory task collection for one session. Tasks are
// not persisted across restarts.
type List struct {
	tasks []Task
}

// NewList creates an empty task list.
func NewList() *List {
	return &List{}
}

// Add appends a task, assigning a fresh id when none is supplied.
func (l *List) Add(t Task) Task {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	l.tasks = append(l.tasks, t)
	return t
}

// Remove deletes the first task with the given id. No-op when absent.
func (l *List) Remove(id string) {
	for i, t := range l.tasks {
		if t.ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return
		}
	}
}

// Toggle flips the completed flag of the task with the given id.
func (l *List) Toggle(id string) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			return
		}
	}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// All returns a copy of the tasks in insertion order.
func (l *List) All() []Task {
	return append([]Task(nil), l.tasks...)
}

// Sorted returns the tasks ordered for display: ascending by start
// time via string comparison.
func (l *List) Sorted() []Task {
	out := l.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// template is the fixed schedule produced by generation.
var template = []Task{
	{ID: "ai-1", Title: "Daily Review & Planning", Type: TypePersonal, Priority: PriorityMedium, StartTime: "08:00", EndTime: "08:30"},
	{ID: "ai-2", Title: "Deep Work: Roadmap Module 1", Type: TypeLearning, Priority: PriorityHigh, StartTime: "09:00", EndTime: "11:00"},
	{ID: "ai-3", Title: "Academic Revision", Type: TypeAcademic, Priority: PriorityMedium, StartTime: "14:00", EndTime: "15:30"},
	{ID: "ai-4", Title: "Hackathon Ideation", Type: TypeHackathon, Priority: PriorityLow, StartTime: "19:00", EndTime: "20:00"},
}

// GenerateSchedule replaces every generated task with the fixed
// template set, leaving user-created tasks untouched. Calling it
// repeatedly is idempotent with respect to the non-generated entries.
func (l *List) GenerateSchedule() {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.Generated() {
			kept = append(kept, t)
		}
	}
	l.tasks = append(kept, template...)
}
