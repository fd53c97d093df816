package schedule

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edupath/pathfinder/internal/profile"
	"github.com/edupath/pathfinder/internal/router"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/tasks"
)

type memBlobs struct {
	data map[string]string
}

func newMemBlobs() *memBlobs {
	return &memBlobs{data: make(map[string]string)}
}

func (m *memBlobs) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memBlobs) Put(_ context.Context, key, payload string) error {
	m.data[key] = payload
	return nil
}

func (m *memBlobs) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func testManager() *session.Manager {
	return session.New(profile.NewStore(newMemBlobs()))
}

func dispatched(t *testing.T, cmd tea.Cmd) session.Action {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	msg, ok := cmd().(router.DispatchMsg)
	if !ok {
		t.Fatalf("expected DispatchMsg, got %T", cmd())
	}
	return msg.Action
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestToggleDispatch(t *testing.T) {
	m := testManager()
	m.Dispatch(context.Background(), session.GenerateSchedule{})

	s := New(m)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	action := dispatched(t, cmd)
	toggle, ok := action.(session.ToggleTask)
	if !ok {
		t.Fatalf("expected ToggleTask, got %T", action)
	}
	if toggle.ID != "ai-1" {
		t.Fatalf("first sorted task should be ai-1, got %q", toggle.ID)
	}
}

func TestDeleteDispatch(t *testing.T) {
	m := testManager()
	m.Dispatch(context.Background(), session.GenerateSchedule{})

	s := New(m)
	_, cmd := s.Update(keyPress('d'))

	action := dispatched(t, cmd)
	if _, ok := action.(session.RemoveTask); !ok {
		t.Fatalf("expected RemoveTask, got %T", action)
	}
}

func TestDeleteLastRowDispatch(t *testing.T) {
	m := testManager()
	m.Dispatch(context.Background(), session.AddTask{Task: tasks.Task{
		ID: "t-first", Title: "Morning review", Type: tasks.TypeAcademic,
		Priority: tasks.PriorityLow, StartTime: "09:00", EndTime: "10:00",
	}})
	m.Dispatch(context.Background(), session.AddTask{Task: tasks.Task{
		ID: "t-last", Title: "Evening review", Type: tasks.TypeAcademic,
		Priority: tasks.PriorityLow, StartTime: "18:00", EndTime: "19:00",
	}})

	s := New(m)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(keyPress('d'))

	action := dispatched(t, cmd)
	remove, ok := action.(session.RemoveTask)
	if !ok {
		t.Fatalf("expected RemoveTask, got %T", action)
	}
	if remove.ID != "t-last" {
		t.Fatalf("delete should target the selected row, got %q", remove.ID)
	}
	if s.selected != 0 {
		t.Fatalf("cursor should move up after deleting the last row, got %d", s.selected)
	}
}

func TestGenerateDispatch(t *testing.T) {
	s := New(testManager())
	_, cmd := s.Update(keyPress('g'))

	action := dispatched(t, cmd)
	if _, ok := action.(session.GenerateSchedule); !ok {
		t.Fatalf("expected GenerateSchedule, got %T", action)
	}
}

func TestFormValidation(t *testing.T) {
	s := New(testManager())
	s.openForm()

	// Missing title.
	s.submitForm()
	if s.formErr == "" {
		t.Fatal("blank title should be rejected")
	}

	// Bad time format.
	s.title.Model.SetValue("Gym")
	s.start.Model.SetValue("9am")
	s.end.Model.SetValue("10:00")
	s.submitForm()
	if s.formErr == "" {
		t.Fatal("non HH:MM start time should be rejected")
	}

	// End before start.
	s.start.Model.SetValue("11:00")
	s.end.Model.SetValue("10:00")
	s.submitForm()
	if s.formErr == "" {
		t.Fatal("end before start should be rejected")
	}
}

func TestFormSubmitDispatchesAddTask(t *testing.T) {
	s := New(testManager())
	s.openForm()

	s.title.Model.SetValue("Evening run")
	s.start.Model.SetValue("18:00")
	s.end.Model.SetValue("19:00")

	_, cmd := s.submitForm()
	action := dispatched(t, cmd)

	add, ok := action.(session.AddTask)
	if !ok {
		t.Fatalf("expected AddTask, got %T", action)
	}
	if add.Task.Title != "Evening run" || add.Task.StartTime != "18:00" {
		t.Fatalf("unexpected task %+v", add.Task)
	}
	if add.Task.Type != tasks.TypePersonal || add.Task.Priority != tasks.PriorityMedium {
		t.Fatalf("form defaults not applied: %+v", add.Task)
	}
	if s.adding {
		t.Fatal("form should close after submit")
	}
}

func TestOverlapAllowed(t *testing.T) {
	m := testManager()
	m.Dispatch(context.Background(), session.AddTask{Task: tasks.Task{
		Title: "Existing", Type: tasks.TypePersonal, Priority: tasks.PriorityLow,
		StartTime: "09:00", EndTime: "10:00",
	}})

	s := New(m)
	s.openForm()
	s.title.Model.SetValue("Overlapping")
	s.start.Model.SetValue("09:30")
	s.end.Model.SetValue("10:30")

	_, cmd := s.submitForm()
	if _, ok := dispatched(t, cmd).(session.AddTask); !ok {
		t.Fatal("overlapping times should still be accepted")
	}
}
