package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func stubFactory(built *[]*stubScreen) Factory {
	return func(v nav.View) screen.Screen {
		s := &stubScreen{title: string(v)}
		*built = append(*built, s)
		return s
	}
}

func TestInitialScreen(t *testing.T) {
	var built []*stubScreen
	r := New(stubFactory(&built), nav.ViewLanding)

	if r.Active().Title() != string(nav.ViewLanding) {
		t.Errorf("expected landing screen, got %q", r.Active().Title())
	}
	if r.CurrentView() != nav.ViewLanding {
		t.Errorf("expected view landing, got %q", r.CurrentView())
	}
}

func TestSyncRebuildsOnViewChange(t *testing.T) {
	var built []*stubScreen
	r := New(stubFactory(&built), nav.ViewLanding)

	r.Sync(nav.ViewExplore)

	if r.Active().Title() != string(nav.ViewExplore) {
		t.Errorf("expected explore screen, got %q", r.Active().Title())
	}
	if len(built) != 2 {
		t.Fatalf("expected 2 screens built, got %d", len(built))
	}
	if !built[1].initRan {
		t.Error("expected Init() to run on the new screen")
	}
}

func TestSyncKeepsScreenOnSameView(t *testing.T) {
	var built []*stubScreen
	r := New(stubFactory(&built), nav.ViewExplore)

	r.Sync(nav.ViewExplore)

	if len(built) != 1 {
		t.Errorf("same view should not rebuild, built %d screens", len(built))
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	var built []*stubScreen
	r := New(stubFactory(&built), nav.ViewLanding)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if built[0].updates != 1 {
		t.Errorf("expected 1 update on active screen, got %d", built[0].updates)
	}
}

func TestDispatchCmd(t *testing.T) {
	cmd := Dispatch(nil)
	msg := cmd()
	if _, ok := msg.(DispatchMsg); !ok {
		t.Fatalf("expected DispatchMsg, got %T", msg)
	}
}
