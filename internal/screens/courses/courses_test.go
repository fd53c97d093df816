package courses

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edupath/pathfinder/internal/catalog"
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

func testManager() *session.Manager {
	return session.New(profile.NewStore(newMemBlobs()))
}

func TestInitialResultsShowFullCatalog(t *testing.T) {
	s := New(testManager())
	if len(s.results) != len(catalog.Courses) {
		t.Fatalf("expected full catalog, got %d of %d", len(s.results), len(catalog.Courses))
	}
}

func TestSearchFiltersResults(t *testing.T) {
	s := New(testManager())

	_, _ = s.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !s.searching {
		t.Fatal("slash should enter search mode")
	}

	for _, r := range "machine" {
		_, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}

	if len(s.results) == 0 || len(s.results) == len(catalog.Courses) {
		t.Fatalf("search should narrow results, got %d", len(s.results))
	}
	for _, c := range s.results {
		if c.Category != catalog.RoleMLEngineer {
			t.Fatalf("unexpected category in results: %s", c.Category)
		}
	}
}

func TestEnterDispatchesEnroll(t *testing.T) {
	s := New(testManager())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected dispatch command")
	}

	msg, ok := cmd().(router.DispatchMsg)
	if !ok {
		t.Fatalf("expected DispatchMsg, got %T", cmd())
	}
	enroll, ok := msg.Action.(session.Enroll)
	if !ok {
		t.Fatalf("expected Enroll, got %T", msg.Action)
	}
	if enroll.CourseID != s.results[0].ID {
		t.Fatalf("expected first course id, got %q", enroll.CourseID)
	}
}

func TestSelectionScrollsWindow(t *testing.T) {
	s := New(testManager())

	for i := 0; i < pageSize+2; i++ {
		_, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}

	if s.selected != pageSize+2 {
		t.Fatalf("expected selection %d, got %d", pageSize+2, s.selected)
	}
	if s.offset == 0 {
		t.Fatal("window should scroll once selection passes a page")
	}
}
