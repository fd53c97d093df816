package nav

import "testing"

func TestInitial(t *testing.T) {
	if got := Initial(false).View; got != ViewLanding {
		t.Fatalf("fresh session should start at landing, got %s", got)
	}
	if got := Initial(true).View; got != ViewDashboard {
		t.Fatalf("restored session should start at dashboard, got %s", got)
	}
}

func TestResolveProtectedFallback(t *testing.T) {
	for _, v := range []View{ViewDashboard, ViewSettings} {
		s := State{View: v}
		if got := s.Resolve(false); got != ViewAuth {
			t.Errorf("%s while logged out should render auth, got %s", v, got)
		}
		if got := s.Resolve(true); got != v {
			t.Errorf("%s while logged in should render itself, got %s", v, got)
		}
		// The stored tag is untouched by resolution.
		if s.View != v {
			t.Errorf("resolve must not rewrite the stored view")
		}
	}
}

func TestResolveOpenViews(t *testing.T) {
	for _, v := range []View{ViewLanding, ViewExplore, ViewDomainDetail, ViewCourses, ViewSchedule} {
		if got := (State{View: v}).Resolve(false); got != v {
			t.Errorf("%s should render without a session, got %s", v, got)
		}
	}
}
