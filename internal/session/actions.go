package session

import (
	"github.com/edupath/pathfinder/internal/catalog"
	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/profile"
	"github.com/edupath/pathfinder/internal/tasks"
)

// Action is one variant of the session transition table. Every state
// change in the app flows through Manager.Dispatch with one of these.
type Action interface {
	isAction()
}

// Start moves from the landing page into domain exploration.
type Start struct{}

// OpenLogin requests the auth view.
type OpenLogin struct{}

// LoginSubmitted completes mock authentication with the given profile.
// Authentication always succeeds once the form submits.
type LoginSubmitted struct {
	Profile profile.UserProfile
}

// Logout ends the session and clears the persisted profile.
type Logout struct{}

// Navigate hard-sets a view tag. Used by sidebar entries and back
// buttons; there is no history to pop.
type Navigate struct {
	View nav.View
}

// SelectDomain opens domain-detail for the given domain. The selection
// is set atomically with the transition.
type SelectDomain struct {
	Domain *catalog.DomainStats
}

// BackToExplore returns from domain-detail, leaving the stale
// selection in place.
type BackToExplore struct{}

// Enroll records a course enrollment. While logged out it redirects to
// auth and parks the enrollment as a pending intent.
type Enroll struct {
	CourseID string
}

// SetGoal updates the profile's career goal, with the same logged-out
// redirect behavior as Enroll.
type SetGoal struct {
	Role catalog.CareerRole
}

// SaveSettings replaces the whole profile from the settings form.
type SaveSettings struct {
	Profile profile.UserProfile
}

// AddTask appends a schedule entry.
type AddTask struct {
	Task tasks.Task
}

// RemoveTask deletes a schedule entry by id.
type RemoveTask struct {
	ID string
}

// ToggleTask flips a schedule entry's completed flag.
type ToggleTask struct {
	ID string
}

// GenerateSchedule swaps in the generated template tasks.
type GenerateSchedule struct{}

func (Start) isAction()            {}
func (OpenLogin) isAction()        {}
func (LoginSubmitted) isAction()   {}
func (Logout) isAction()           {}
func (Navigate) isAction()         {}
func (SelectDomain) isAction()     {}
func (BackToExplore) isAction()    {}
func (Enroll) isAction()           {}
func (SetGoal) isAction()          {}
func (SaveSettings) isAction()     {}
func (AddTask) isAction()          {}
func (RemoveTask) isAction()       {}
func (ToggleTask) isAction()       {}
func (GenerateSchedule) isAction() {}
