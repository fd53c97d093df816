package tasks

import (
	"sort"
	"testing"
)

func TestAddAssignsID(t *testing.T) {
	l := NewList()
	added := l.Add(Task{Title: "Revise algebra", Type: TypeAcademic, Priority: PriorityMedium, StartTime: "10:00", EndTime: "11:00"})
	if added.ID == "" {
		t.Fatal("Add should assign an id when none is supplied")
	}
	if added.Generated() {
		t.Fatal("user tasks must not carry the generated prefix")
	}

	kept := l.Add(Task{ID: "mine", Title: "Custom", StartTime: "12:00", EndTime: "13:00"})
	if kept.ID != "mine" {
		t.Fatalf("Add should keep a supplied id, got %q", kept.ID)
	}
}

func TestRemove(t *testing.T) {
	l := NewList()
	a := l.Add(Task{Title: "a", StartTime: "09:00", EndTime: "10:00"})
	l.Add(Task{Title: "b", StartTime: "10:00", EndTime: "11:00"})

	l.Remove(a.ID)
	if l.Len() != 1 || l.All()[0].Title != "b" {
		t.Fatalf("unexpected list after remove: %v", l.All())
	}

	// Removing an absent id is a no-op.
	l.Remove("missing")
	if l.Len() != 1 {
		t.Fatal("removing an absent id changed the list")
	}
}

func TestGenerateScheduleFromEmpty(t *testing.T) {
	l := NewList()
	l.GenerateSchedule()

	if l.Len() != 4 {
		t.Fatalf("expected 4 generated tasks, got %d", l.Len())
	}
	for _, task := range l.All() {
		if !task.Generated() {
			t.Errorf("task %q should carry the generated prefix", task.ID)
		}
	}

	// Repeat call does not duplicate the template.
	l.GenerateSchedule()
	if l.Len() != 4 {
		t.Fatalf("expected 4 tasks after regeneration, got %d", l.Len())
	}
}

func TestGenerateSchedulePreservesUserTasks(t *testing.T) {
	l := NewList()
	mine := l.Add(Task{Title: "Gym", Type: TypePersonal, Priority: PriorityLow, StartTime: "06:00", EndTime: "07:00"})
	l.GenerateSchedule()
	l.GenerateSchedule()
	l.GenerateSchedule()

	var user []Task
	for _, task := range l.All() {
		if !task.Generated() {
			user = append(user, task)
		}
	}
	if len(user) != 1 || user[0].ID != mine.ID {
		t.Fatalf("user tasks should survive any number of regenerations, got %v", user)
	}
	if l.Len() != 5 {
		t.Fatalf("expected 5 tasks total, got %d", l.Len())
	}
}

func TestSortedIsChronological(t *testing.T) {
	l := NewList()
	for _, start := range []string{"23:59", "00:00", "09:30", "09:05", "18:45", "07:00"} {
		l.Add(Task{Title: start, StartTime: start, EndTime: "23:59"})
	}

	got := l.Sorted()
	if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].StartTime < got[j].StartTime }) {
		t.Fatalf("tasks not sorted: %v", got)
	}
	if got[0].StartTime != "00:00" || got[len(got)-1].StartTime != "23:59" {
		t.Fatalf("lexicographic order should match clock order for zero-padded times: %v", got)
	}
}

func TestToggle(t *testing.T) {
	l := NewList()
	task := l.Add(Task{Title: "a", StartTime: "09:00", EndTime: "10:00"})

	l.Toggle(task.ID)
	if !l.All()[0].Completed {
		t.Fatal("toggle should mark the task completed")
	}
	l.Toggle(task.ID)
	if l.All()[0].Completed {
		t.Fatal("toggle should flip back")
	}
}

func TestOverlapIsAllowed(t *testing.T) {
	l := NewList()
	l.Add(Task{Title: "a", StartTime: "09:00", EndTime: "11:00"})
	l.Add(Task{Title: "b", StartTime: "10:00", EndTime: "10:30"})
	if l.Len() != 2 {
		t.Fatal("overlapping tasks are not rejected")
	}
}
