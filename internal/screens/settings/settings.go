// Package settings renders the profile editor. Saving replaces the
// persisted profile wholesale; logout clears it.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/profile"
	"github.com/edupath/pathfinder/internal/router"
	"github.com/edupath/pathfinder/internal/screen"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/ui/components"
	"github.com/edupath/pathfinder/internal/ui/layout"
	"github.com/edupath/pathfinder/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldLevel
	fieldPace
	fieldHours
	fieldSave
	fieldLogout
	fieldCount
)

var academicLevels = []string{"High School", "Undergraduate", "Postgraduate", "Self-taught"}

// SettingsScreen edits the signed-in profile.
type SettingsScreen struct {
	manager *session.Manager
	focused int

	name  components.TextInput
	email components.TextInput
	level components.Picker
	pace  components.Picker
	hours components.TextInput

	formErr string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen pre-filled from the current profile.
func New(manager *session.Manager) *SettingsScreen {
	s := &SettingsScreen{manager: manager}

	p := manager.Profile()
	if p == nil {
		// Render-time auth fallback means this only happens transiently.
		fallback := profile.Default("", "")
		p = &fallback
	}

	s.name = components.NewTextInput("Your name", false, 40)
	s.name.Model.SetValue(p.Name)

	s.email = components.NewTextInput("you@example.com", false, 60)
	s.email.Model.SetValue(p.Email)
	s.email.Model.Blur()

	s.level = components.NewPicker("Level", academicLevels, p.AcademicLevel)

	s.pace = components.NewPicker("Pace", paceOptions(), string(p.LearningPace))

	s.hours = components.NewTextInput("4", true, 2)
	s.hours.Model.SetValue(fmt.Sprintf("%d", p.DailyAvailability))
	s.hours.Model.Blur()

	return s
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) Init() tea.Cmd {
	return s.name.Model.Focus()
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		switch s.focused {
		case fieldSave:
			return s.save()
		case fieldLogout:
			return s, router.Dispatch(session.Logout{})
		default:
			return s, s.focusField((s.focused + 1) % fieldCount)
		}

	case "tab", "down":
		return s, s.focusField((s.focused + 1) % fieldCount)

	case "shift+tab", "up":
		return s, s.focusField((s.focused + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	switch s.focused {
	case fieldName:
		s.name, cmd = s.name.Update(kmsg)
	case fieldEmail:
		s.email, cmd = s.email.Update(kmsg)
	case fieldLevel:
		s.level, cmd = s.level.Update(kmsg)
	case fieldPace:
		s.pace, cmd = s.pace.Update(kmsg)
	case fieldHours:
		s.hours, cmd = s.hours.Update(kmsg)
	}
	return s, cmd
}

func (s *SettingsScreen) focusField(i int) tea.Cmd {
	s.focused = i
	s.name.Model.Blur()
	s.email.Model.Blur()
	s.hours.Model.Blur()
	s.level.Focused = false
	s.pace.Focused = false

	switch i {
	case fieldName:
		return s.name.Model.Focus()
	case fieldEmail:
		return s.email.Model.Focus()
	case fieldLevel:
		s.level.Focused = true
	case fieldPace:
		s.pace.Focused = true
	case fieldHours:
		return s.hours.Model.Focus()
	}
	return nil
}

// save builds the replacement profile from the form, keeping the
// fields the form does not edit (goal, interests, enrollments).
func (s *SettingsScreen) save() (screen.Screen, tea.Cmd) {
	current := s.manager.Profile()
	if current == nil {
		return s, nil
	}

	name := strings.TrimSpace(s.name.Value())
	email := strings.TrimSpace(s.email.Value())
	if name == "" || email == "" {
		s.formErr = "Name and email cannot be blank."
		return s, nil
	}

	hours, err := s.hours.NumericValue()
	if err != nil || hours < 1 || hours > 12 {
		s.formErr = "Daily availability must be 1-12 hours."
		return s, nil
	}

	updated := *current
	updated.Name = name
	updated.Email = email
	updated.AcademicLevel = s.level.Value()
	updated.LearningPace = profile.LearningPace(s.pace.Value())
	updated.DailyAvailability = hours

	return s, router.Dispatch(session.SaveSettings{Profile: updated})
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Choose option"},
		{Key: "Enter", Description: "Activate"},
	}
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	label := func(text string, field int) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.focused == field {
			style = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		}
		return style.Render(text)
	}

	var b strings.Builder
	b.WriteString(label("Name", fieldName) + "\n" + s.name.View() + "\n\n")
	b.WriteString(label("Email", fieldEmail) + "\n" + s.email.View() + "\n\n")
	b.WriteString(s.level.View() + "\n")
	b.WriteString(s.pace.View() + "\n\n")
	b.WriteString(label("Daily hours", fieldHours) + "  " + s.hours.View() + "\n\n")

	save := components.NewButton("Save changes", s.focused == fieldSave, nil)
	logout := components.NewButton("Log out", s.focused == fieldLogout, nil)
	b.WriteString(save.View() + "  " + logout.View())

	if s.formErr != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.formErr))
	}

	card := components.TitledCard("Your profile", b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func paceOptions() []string {
	paces := profile.Paces()
	out := make([]string, len(paces))
	for i, p := range paces {
		out[i] = string(p)
	}
	return out
}
