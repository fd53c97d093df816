// Package explore renders the career domain browser, with optional
// AI-backed suggestions ranked by fit.
package explore

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/catalog"
	"github.com/edupath/pathfinder/internal/mentor"
	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/router"
	"github.com/edupath/pathfinder/internal/screen"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/ui/components"
	"github.com/edupath/pathfinder/internal/ui/layout"
	"github.com/edupath/pathfinder/internal/ui/theme"
)

type suggestionsMsg struct {
	suggestions []mentor.RoleSuggestion
	err         error
}

// ExploreScreen lists every career domain in the catalog.
type ExploreScreen struct {
	manager     *session.Manager
	mentor      *mentor.Service
	selected    int
	suggesting  bool
	suggestions []mentor.RoleSuggestion
	suggestErr  bool
}

var _ screen.Screen = (*ExploreScreen)(nil)
var _ screen.KeyHintProvider = (*ExploreScreen)(nil)

// New creates an ExploreScreen.
func New(manager *session.Manager, mentorSvc *mentor.Service) *ExploreScreen {
	return &ExploreScreen{
		manager: manager,
		mentor:  mentorSvc,
	}
}

func (e *ExploreScreen) Title() string {
	return "Explore Domains"
}

func (e *ExploreScreen) Init() tea.Cmd {
	return nil
}

func (e *ExploreScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionsMsg:
		e.suggesting = false
		if msg.err != nil {
			e.suggestErr = true
		} else {
			e.suggestions = msg.suggestions
		}
		return e, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if e.selected > 0 {
				e.selected--
			}
		case "down", "j":
			if e.selected < len(catalog.Domains)-1 {
				e.selected++
			}
		case "enter":
			domain := &catalog.Domains[e.selected]
			return e, router.Dispatch(session.SelectDomain{Domain: domain})
		case "a":
			return e, e.discover()
		case "c":
			return e, router.Dispatch(session.Navigate{View: nav.ViewCourses})
		case "esc":
			if e.manager.LoggedIn() {
				return e, router.Dispatch(session.Navigate{View: nav.ViewDashboard})
			}
			return e, router.Dispatch(session.Navigate{View: nav.ViewLanding})
		}
	}

	return e, nil
}

// discover asks the mentor for role suggestions based on the profile's
// interests, or a generic prompt while signed out.
func (e *ExploreScreen) discover() tea.Cmd {
	if e.mentor == nil || e.suggesting {
		return nil
	}
	e.suggesting = true
	e.suggestErr = false

	interests := []string{"Technology"}
	goals := "finding a good first role in tech"
	if p := e.manager.Profile(); p != nil {
		if len(p.Interests) > 0 {
			interests = p.Interests
		}
		if p.CareerGoal != catalog.RoleNotSure {
			goals = fmt.Sprintf("becoming a %s", p.CareerGoal)
		}
	}

	svc := e.mentor
	return func() tea.Msg {
		suggestions, err := svc.DiscoverCareer(context.Background(), interests, goals)
		return suggestionsMsg{suggestions: suggestions, err: err}
	}
}

func (e *ExploreScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
	}
	if e.mentor != nil {
		hints = append(hints, layout.KeyHint{Key: "A", Description: "AI suggestions"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "C", Description: "Courses"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

func (e *ExploreScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	inner := cw - 6

	var lines []string
	for i, d := range catalog.Domains {
		trend := trendGlyph(d.Trend)
		line := fmt.Sprintf("%-34s %s %-8s %s", d.Role, trend, d.Trend, d.AvgSalary)
		if i == e.selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Primary).Bold(true).Render("▸ "+line))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).Render("  "+line))
		}
	}

	list := components.TitledCard("Career domains", strings.Join(lines, "\n"), cw)

	sections := []string{list}
	if card := e.suggestionsCard(cw, inner); card != "" {
		sections = append(sections, card)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (e *ExploreScreen) suggestionsCard(cw, inner int) string {
	switch {
	case e.suggesting:
		return components.TitledCard("AI suggestions",
			theme.Hint.Render("Asking the mentor for your best-fit roles..."), cw)

	case e.suggestErr:
		return components.TitledCard("AI suggestions",
			lipgloss.NewStyle().Foreground(theme.Error).
				Render("Could not fetch suggestions. Try again with A."), cw)

	case len(e.suggestions) > 0:
		var lines []string
		for _, s := range e.suggestions {
			head := fmt.Sprintf("%s  %s", s.Role,
				lipgloss.NewStyle().Foreground(theme.Accent).
					Render(fmt.Sprintf("%.0f%% fit", s.FitScore)))
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).Bold(true).Render(head))
			lines = append(lines, theme.Hint.Render(truncate(s.Reason, inner)))
		}
		return components.TitledCard("AI suggestions", strings.Join(lines, "\n"), cw)
	}
	return ""
}

func trendGlyph(t catalog.Trend) string {
	switch t {
	case catalog.TrendHigh:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("▲")
	case catalog.TrendRising:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("△")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("►")
	}
}

func truncate(s string, max int) string {
	if max < 8 {
		max = 8
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
