package session

import (
	"context"
	"testing"

	"github.com/edupath/pathfinder/internal/catalog"
	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/profile"
	"github.com/edupath/pathfinder/internal/tasks"
)

type memBlobs struct {
	data map[string]string
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

func newManager() (*Manager, *memBlobs) {
	blobs := &memBlobs{data: make(map[string]string)}
	m := New(profile.NewStore(blobs))
	m.Load(context.Background())
	return m, blobs
}

func TestFreshSessionStartsAtLanding(t *testing.T) {
	m, _ := newManager()
	if m.ActiveView() != nav.ViewLanding {
		t.Fatalf("expected landing, got %s", m.ActiveView())
	}
	if m.LoggedIn() {
		t.Fatal("fresh session should be logged out")
	}
}

func TestRestoredSessionStartsAtDashboard(t *testing.T) {
	ctx := context.Background()
	_, blobs := newManager()

	first := New(profile.NewStore(blobs))
	first.Load(ctx)
	first.Dispatch(ctx, LoginSubmitted{Profile: profile.Default("Ana", "a@x.com")})

	second := New(profile.NewStore(blobs))
	second.Load(ctx)
	if second.ActiveView() != nav.ViewDashboard {
		t.Fatalf("restored session should open at dashboard, got %s", second.ActiveView())
	}
	if second.Profile().Name != "Ana" {
		t.Fatalf("restored profile name %q", second.Profile().Name)
	}
}

func TestLoginScenario(t *testing.T) {
	ctx := context.Background()
	m, blobs := newManager()

	m.Dispatch(ctx, OpenLogin{})
	if m.ActiveView() != nav.ViewAuth {
		t.Fatalf("expected auth, got %s", m.ActiveView())
	}

	m.Dispatch(ctx, LoginSubmitted{Profile: profile.Default("Ana", "a@x.com")})

	if m.Profile().Name != "Ana" {
		t.Errorf("profile name = %q", m.Profile().Name)
	}
	if m.ActiveView() != nav.ViewDashboard {
		t.Errorf("view = %s, want dashboard", m.ActiveView())
	}
	stored, err := profile.Decode(blobs.data[profile.StorageKey])
	if err != nil || stored == nil || stored.Name != "Ana" {
		t.Errorf("durable profile = %+v, %v", stored, err)
	}
}

func TestLandingTransitions(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager()

	m.Dispatch(ctx, Start{})
	if m.ActiveView() != nav.ViewExplore {
		t.Fatalf("start should open explore, got %s", m.ActiveView())
	}
}

func TestProtectedViewFallsBackToAuth(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager()

	m.Dispatch(ctx, Navigate{View: nav.ViewDashboard})
	if m.ActiveView() != nav.ViewAuth {
		t.Fatalf("dashboard while logged out should render auth, got %s", m.ActiveView())
	}
	// The requested tag survives; once logged in it renders as asked.
	m.Dispatch(ctx, LoginSubmitted{Profile: profile.Default("", "")})
	if m.ActiveView() != nav.ViewDashboard {
		t.Fatalf("expected dashboard after login, got %s", m.ActiveView())
	}
}

func TestDomainSelection(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager()
	m.Dispatch(ctx, Start{})

	d := catalog.DomainByRole(catalog.RoleBackend)
	m.Dispatch(ctx, SelectDomain{Domain: d})
	if m.ActiveView() != nav.ViewDomainDetail || m.Nav().SelectedDomain != d {
		t.Fatalf("selection not applied atomically: %+v", m.Nav())
	}

	m.Dispatch(ctx, BackToExplore{})
	if m.ActiveView() != nav.ViewExplore {
		t.Fatalf("back should land on explore, got %s", m.ActiveView())
	}
	if m.Nav().SelectedDomain != d {
		t.Fatal("selection persists stale after back")
	}

	// Nil selection does not transition.
	m.Dispatch(ctx, SelectDomain{Domain: nil})
	if m.ActiveView() != nav.ViewExplore {
		t.Fatal("nil domain selection must not navigate")
	}
}

func TestEnrollWhileAuthenticated(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager()
	m.Dispatch(ctx, LoginSubmitted{Profile: profile.Default("", "")})

	m.Dispatch(ctx, Enroll{CourseID: "ml-0"})

	got := m.Profile().CompletedCourses
	if len(got) != 1 || got[0] != "ml-0" {
		t.Fatalf("expected [ml-0], got %v", got)
	}
}

func TestEnrollWhileLoggedOutResumesAfterLogin(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager()

	m.Dispatch(ctx, Enroll{CourseID: "ml-0"})
	if m.ActiveView() != nav.ViewAuth {
		t.Fatalf("logged-out enroll should redirect to auth, got %s", m.ActiveView())
	}
	if m.Profile() != nil {
		t.Fatal("no profile should exist yet")
	}

	m.Dispatch(ctx, LoginSubmitted{Profile: profile.Default("", "")})
	got := m.Profile().CompletedCourses
	if len(got) != 1 || got[0] != "ml-0" {
		t.Fatalf("parked enrollment should run after login, got %v", got)
	}
	if m.Nav().Pending != nil {
		t.Fatal("pending intent should clear once executed")
	}
}

func TestSetGoalWhileLoggedOutResumesAfterLogin(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager()

	m.Dispatch(ctx, SetGoal{Role: catalog.RoleDataScientist})
	if m.ActiveView() != nav.ViewAuth {
		t.Fatalf("logged-out set-goal should redirect to auth, got %s", m.ActiveView())
	}

	m.Dispatch(ctx, LoginSubmitted{Profile: profile.Default("", "")})
	if m.Profile().CareerGoal != catalog.RoleDataScientist {
		t.Fatalf("goal = %s", m.Profile().CareerGoal)
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	ctx := context.Background()
	m, blobs := newManager()
	m.Dispatch(ctx, LoginSubmitted{Profile: profile.Default("Ana", "a@x.com")})
	m.Dispatch(ctx, SelectDomain{Domain: catalog.DomainByRole(catalog.RoleCloud)})

	m.Dispatch(ctx, Logout{})

	if m.LoggedIn() || m.ActiveView() != nav.ViewLanding {
		t.Fatalf("logout should land logged-out on landing, got %s", m.ActiveView())
	}
	if m.Nav().SelectedDomain != nil {
		t.Fatal("logout clears the selected domain")
	}
	if _, ok := blobs.data[profile.StorageKey]; ok {
		t.Fatal("logout clears the durable key")
	}
}

func TestSaveSettingsReplacesProfile(t *testing.T) {
	ctx := context.Background()
	m, blobs := newManager()
	m.Dispatch(ctx, LoginSubmitted{Profile: profile.Default("Ana", "a@x.com")})
	m.Dispatch(ctx, Enroll{CourseID: "soft-1"})

	updated := *m.Profile()
	updated.Name = "Ana Maria"
	updated.LearningPace = profile.PaceFast
	m.Dispatch(ctx, SaveSettings{Profile: updated})

	if m.Profile().Name != "Ana Maria" || m.Profile().LearningPace != profile.PaceFast {
		t.Fatalf("settings not applied: %+v", m.Profile())
	}
	if m.ActiveView() != nav.ViewDashboard {
		t.Fatalf("save should return to dashboard, got %s", m.ActiveView())
	}
	stored, _ := profile.Decode(blobs.data[profile.StorageKey])
	if stored.Name != "Ana Maria" {
		t.Fatalf("durable profile not replaced: %+v", stored)
	}
}

func TestTaskActions(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager()

	m.Dispatch(ctx, AddTask{Task: tasks.Task{Title: "Gym", StartTime: "06:00", EndTime: "07:00"}})
	m.Dispatch(ctx, GenerateSchedule{})
	if m.Tasks().Len() != 5 {
		t.Fatalf("expected 5 tasks, got %d", m.Tasks().Len())
	}

	id := m.Tasks().All()[0].ID
	m.Dispatch(ctx, ToggleTask{ID: id})
	if !m.Tasks().All()[0].Completed {
		t.Fatal("toggle not applied")
	}
	m.Dispatch(ctx, RemoveTask{ID: id})
	if m.Tasks().Len() != 4 {
		t.Fatalf("expected 4 tasks after remove, got %d", m.Tasks().Len())
	}
}
