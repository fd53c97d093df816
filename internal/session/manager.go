// Package session ties the profile store, task list, and navigation
// state together behind a single reducer-style Dispatch. All state
// transitions run synchronously inside one UI event; the mentor bridge
// is the only asynchronous collaborator and it never mutates session
// state.
package session

import (
	"context"

	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/profile"
	"github.com/edupath/pathfinder/internal/tasks"
)

// Manager owns the session state: the authoritative profile, the
// transient task list, and the navigation tag.
type Manager struct {
	profiles *profile.Store
	tasks    *tasks.List
	nav      nav.State
}

// New creates a Manager over the given profile store.
func New(profiles *profile.Store) *Manager {
	return &Manager{
		profiles: profiles,
		tasks:    tasks.NewList(),
		nav:      nav.State{View: nav.ViewLanding},
	}
}

// Load restores a persisted session and sets the initial view:
// dashboard when a durable profile exists, landing otherwise.
func (m *Manager) Load(ctx context.Context) {
	restored := m.profiles.Load(ctx)
	m.nav = nav.Initial(restored)
}

// Profile returns the current profile, or nil when logged out.
func (m *Manager) Profile() *profile.UserProfile {
	return m.profiles.Current()
}

// LoggedIn reports whether a profile is active.
func (m *Manager) LoggedIn() bool {
	return m.profiles.LoggedIn()
}

// Tasks returns the session task list.
func (m *Manager) Tasks() *tasks.List {
	return m.tasks
}

// Nav returns the current navigation state.
func (m *Manager) Nav() nav.State {
	return m.nav
}

// ActiveView returns the view to render, applying the logged-out
// fallback for protected views.
func (m *Manager) ActiveView() nav.View {
	return m.nav.Resolve(m.profiles.LoggedIn())
}

// TakeWarning surfaces a pending non-blocking storage warning, if any.
func (m *Manager) TakeWarning() string {
	return m.profiles.TakeWarning()
}

// Dispatch applies one action to the session. This is the single
// transition table: screens construct actions, nothing else mutates
// session state.
func (m *Manager) Dispatch(ctx context.Context, a Action) {
	switch a := a.(type) {
	case Start:
		m.nav.View = nav.ViewExplore

	case OpenLogin:
		if !m.profiles.LoggedIn() {
			m.nav.View = nav.ViewAuth
		}

	case LoginSubmitted:
		m.profiles.Login(ctx, a.Profile)
		m.nav.View = nav.ViewDashboard
		m.runPending(ctx)

	case Logout:
		m.profiles.Logout(ctx)
		m.nav = nav.State{View: nav.ViewLanding}

	case Navigate:
		m.nav.View = a.View

	case SelectDomain:
		if a.Domain != nil {
			m.nav.SelectedDomain = a.Domain
			m.nav.View = nav.ViewDomainDetail
		}

	case BackToExplore:
		// Selection intentionally kept; it is overwritten on the
		// next SelectDomain.
		m.nav.View = nav.ViewExplore

	case Enroll:
		if !m.profiles.LoggedIn() {
			m.nav.Pending = &nav.Intent{Kind: nav.IntentEnroll, CourseID: a.CourseID}
			m.nav.View = nav.ViewAuth
			return
		}
		m.profiles.Enroll(ctx, a.CourseID)

	case SetGoal:
		if !m.profiles.LoggedIn() {
			m.nav.Pending = &nav.Intent{Kind: nav.IntentSetGoal, Role: a.Role}
			m.nav.View = nav.ViewAuth
			return
		}
		m.profiles.SetGoal(ctx, a.Role)

	case SaveSettings:
		// Settings saves replace the profile wholesale via the login
		// path, keeping one write-through code path.
		m.profiles.Login(ctx, a.Profile)
		m.nav.View = nav.ViewDashboard

	case AddTask:
		m.tasks.Add(a.Task)

	case RemoveTask:
		m.tasks.Remove(a.ID)

	case ToggleTask:
		m.tasks.Toggle(a.ID)

	case GenerateSchedule:
		m.tasks.GenerateSchedule()
	}
}

// runPending executes an intent parked by a logged-out protected
// action, then clears it.
func (m *Manager) runPending(ctx context.Context) {
	intent := m.nav.Pending
	if intent == nil {
		return
	}
	m.nav.Pending = nil
	switch intent.Kind {
	case nav.IntentEnroll:
		m.profiles.Enroll(ctx, intent.CourseID)
	case nav.IntentSetGoal:
		m.profiles.SetGoal(ctx, intent.Role)
	}
}
