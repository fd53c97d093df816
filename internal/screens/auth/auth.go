// Package auth renders the mock sign-in form. Submission always
// succeeds; blank fields fall back to a placeholder identity.
package auth

import (
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
	fieldCount
)

// AuthScreen collects a name and email and completes mock sign-in.
type AuthScreen struct {
	name    components.TextInput
	email   components.TextInput
	focused int
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates an AuthScreen.
func New() *AuthScreen {
	name := components.NewTextInput("Your name", false, 40)
	email := components.NewTextInput("you@example.com", false, 60)
	email.Model.Blur()

	return &AuthScreen{
		name:  name,
		email: email,
	}
}

func (a *AuthScreen) Title() string {
	return "Sign In"
}

func (a *AuthScreen) Init() tea.Cmd {
	return a.name.Init()
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			p := profile.Default(
				strings.TrimSpace(a.name.Value()),
				strings.TrimSpace(a.email.Value()),
			)
			return a, router.Dispatch(session.LoginSubmitted{Profile: p})

		case "tab", "down":
			return a, a.focusField((a.focused + 1) % fieldCount)

		case "shift+tab", "up":
			return a, a.focusField((a.focused + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	switch a.focused {
	case fieldName:
		a.name, cmd = a.name.Update(msg)
	case fieldEmail:
		a.email, cmd = a.email.Update(msg)
	}
	return a, cmd
}

func (a *AuthScreen) focusField(i int) tea.Cmd {
	a.focused = i
	a.name.Model.Blur()
	a.email.Model.Blur()
	switch i {
	case fieldName:
		return a.name.Model.Focus()
	case fieldEmail:
		return a.email.Model.Focus()
	}
	return nil
}

func (a *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (a *AuthScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		}
		return style.Render(text)
	}

	var b strings.Builder
	b.WriteString(label("Name", a.focused == fieldName) + "\n")
	b.WriteString(a.name.View() + "\n\n")
	b.WriteString(label("Email", a.focused == fieldEmail) + "\n")
	b.WriteString(a.email.View() + "\n\n")
	b.WriteString(theme.Hint.Render("No password needed. Blank fields sign you in as a guest explorer."))

	card := components.TitledCard("Welcome back", b.String(), cw)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
