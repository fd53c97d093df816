package settings

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edupath/pathfinder/internal/profile"
	"github.com/edupath/pathfinder/internal/router"
	"github.com/edupath/pathfinder/internal/session"
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

func loggedInManager() *session.Manager {
	m := session.New(profile.NewStore(newMemBlobs()))
	m.Dispatch(context.Background(), session.LoginSubmitted{
		Profile: profile.Default("Ana", "ana@example.com"),
	})
	return m
}

func TestSaveDispatchesUpdatedProfile(t *testing.T) {
	s := New(loggedInManager())
	s.name.Model.SetValue("Ana Maria")
	s.hours.Model.SetValue("6")

	_, cmd := s.save()
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	msg, ok := cmd().(router.DispatchMsg)
	if !ok {
		t.Fatalf("expected DispatchMsg, got %T", cmd())
	}
	save, ok := msg.Action.(session.SaveSettings)
	if !ok {
		t.Fatalf("expected SaveSettings, got %T", msg.Action)
	}
	if save.Profile.Name != "Ana Maria" {
		t.Fatalf("edited name not applied: %q", save.Profile.Name)
	}
	if save.Profile.DailyAvailability != 6 {
		t.Fatalf("edited availability not applied: %d", save.Profile.DailyAvailability)
	}
	if save.Profile.Email != "ana@example.com" {
		t.Fatalf("unedited email should carry over, got %q", save.Profile.Email)
	}
}

func TestSaveRejectsAvailabilityOutOfRange(t *testing.T) {
	for _, value := range []string{"0", "13", "14"} {
		s := New(loggedInManager())
		s.hours.Model.SetValue(value)

		_, cmd := s.save()
		if cmd != nil {
			t.Fatalf("availability %s should be rejected", value)
		}
		if s.formErr == "" {
			t.Fatalf("availability %s should set a form error", value)
		}
	}
}

func TestSaveRejectsBlankName(t *testing.T) {
	s := New(loggedInManager())
	s.name.Model.SetValue("   ")

	_, cmd := s.save()
	if cmd != nil {
		t.Fatal("blank name should be rejected")
	}
	if s.formErr == "" {
		t.Fatal("blank name should set a form error")
	}
}

func TestLogoutDispatch(t *testing.T) {
	s := New(loggedInManager())
	s.focused = fieldLogout

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	msg, ok := cmd().(router.DispatchMsg)
	if !ok {
		t.Fatalf("expected DispatchMsg, got %T", cmd())
	}
	if _, ok := msg.Action.(session.Logout); !ok {
		t.Fatalf("expected Logout, got %T", msg.Action)
	}
}
