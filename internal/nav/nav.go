// Package nav holds the navigation state of the app: which top-level
// view is active and which domain, if any, is selected. There is no
// history stack; back actions hard-set their target view.
package nav

import "github.com/edupath/pathfinder/internal/catalog"

// View is the enumerated identifier of a top-level screen.
type View string

const (
	ViewLanding      View = "landing"
	ViewAuth         View = "auth"
	ViewDashboard    View = "dashboard"
	ViewExplore      View = "explore"
	ViewDomainDetail View = "domain-detail"
	ViewCourses      View = "courses"
	ViewSchedule     View = "schedule"
	ViewSettings     View = "settings"
)

// Protected reports whether the view requires an authenticated session.
func (v View) Protected() bool {
	return v == ViewDashboard || v == ViewSettings
}

// Title returns the header label for the view.
func (v View) Title() string {
	switch v {
	case ViewLanding:
		return "Pathfinder"
	case ViewAuth:
		return "Sign In"
	case ViewDashboard:
		return "Dashboard"
	case ViewExplore:
		return "Explore Domains"
	case ViewDomainDetail:
		return "Domain"
	case ViewCourses:
		return "Course Library"
	case ViewSchedule:
		return "Schedule"
	case ViewSettings:
		return "Settings"
	default:
		return string(v)
	}
}

// IntentKind tags a deferred protected action.
type IntentKind string

const (
	IntentEnroll  IntentKind = "enroll"
	IntentSetGoal IntentKind = "set-goal"
)

// Intent is a protected action attempted while logged out, kept so it
// can run once login completes instead of being silently dropped.
type Intent struct {
	Kind     IntentKind
	CourseID string
	Role     catalog.CareerRole
}

// State is the full navigation state. SelectedDomain stays stale after
// backing out of domain-detail; it is always overwritten before reuse
// and must not be relied on to be nil.
type State struct {
	View           View
	SelectedDomain *catalog.DomainStats
	Pending        *Intent
}

// Initial returns the starting navigation state for a session.
// Sessions with a restored profile start at the dashboard.
func Initial(loggedIn bool) State {
	if loggedIn {
		return State{View: ViewDashboard}
	}
	return State{View: ViewLanding}
}

// Resolve maps the stored view to the one actually rendered: protected
// views fall back to auth while logged out. The fallback is render-time
// only; State.View keeps the requested tag.
func (s State) Resolve(loggedIn bool) View {
	if s.View.Protected() && !loggedIn {
		return ViewAuth
	}
	return s.View
}
