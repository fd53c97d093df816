// Package router maps navigation view tags to screens. There is no
// screen stack: every transition hard-sets a tag on the session and
// the router rebuilds the matching screen.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/screen"
	"github.com/edupath/pathfinder/internal/session"
)

// DispatchMsg asks the app to run one session action. Screens emit
// these instead of mutating state themselves.
type DispatchMsg struct {
	Action session.Action
}

// Dispatch wraps an action in a command for screen key handlers.
func Dispatch(a session.Action) tea.Cmd {
	return func() tea.Msg {
		return DispatchMsg{Action: a}
	}
}

// Factory builds the screen for a view tag.
type Factory func(v nav.View) screen.Screen

// Router keeps the active screen in sync with the session's view tag.
type Router struct {
	factory Factory
	view    nav.View
	active  screen.Screen
}

// New creates a Router and builds the screen for the initial view.
func New(factory Factory, initial nav.View) *Router {
	return &Router{
		factory: factory,
		view:    initial,
		active:  factory(initial),
	}
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// CurrentView returns the view tag the active screen was built for.
func (r *Router) CurrentView() nav.View {
	return r.view
}

// Sync rebuilds the active screen when the resolved view tag changed.
// Screens keep their local state (cursor, form input) across updates
// within the same view.
func (r *Router) Sync(v nav.View) tea.Cmd {
	if v == r.view {
		return nil
	}
	r.view = v
	r.active = r.factory(v)
	return r.active.Init()
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// Render renders the active screen.
func (r *Router) Render(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
