// Package domaindetail renders the market card for one selected career
// domain: salary, openings, difficulty, and year-over-year demand.
package domaindetail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/router"
	"github.com/edupath/pathfinder/internal/screen"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/ui/components"
	"github.com/edupath/pathfinder/internal/ui/layout"
	"github.com/edupath/pathfinder/internal/ui/theme"
)

// DetailScreen shows one domain's stats with goal and course actions.
type DetailScreen struct {
	manager *session.Manager
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a DetailScreen for the session's selected domain.
func New(manager *session.Manager) *DetailScreen {
	return &DetailScreen{manager: manager}
}

func (d *DetailScreen) Title() string {
	if domain := d.manager.Nav().SelectedDomain; domain != nil {
		return string(domain.Role)
	}
	return "Domain"
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	domain := d.manager.Nav().SelectedDomain

	switch kmsg.String() {
	case "esc", "b":
		return d, router.Dispatch(session.BackToExplore{})
	case "g":
		if domain != nil {
			return d, router.Dispatch(session.SetGoal{Role: domain.Role})
		}
	case "c":
		return d, router.Dispatch(session.Navigate{View: nav.ViewCourses})
	}

	return d, nil
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "G", Description: "Set as goal"},
		{Key: "C", Description: "Courses"},
		{Key: "Esc", Description: "Back to explore"},
	}
}

func (d *DetailScreen) View(width, height int) string {
	domain := d.manager.Nav().SelectedDomain
	if domain == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No domain selected."))
	}

	cw := components.ContentWidth(width)
	inner := cw - 6

	var sections []string

	overview := theme.Body.Render(components.Wrap(domain.Description, inner)) + "\n\n" +
		components.StatRow("Average salary", domain.AvgSalary, inner) + "\n" +
		components.StatRow("Open positions", domain.Openings, inner) + "\n" +
		components.StatRow("Hiring trend", string(domain.Trend), inner) + "\n" +
		components.StatRow("Entry difficulty", string(domain.Difficulty), inner)
	sections = append(sections, components.TitledCard(string(domain.Role), overview, cw))

	// Demand trajectory chart.
	labels := make([]string, 0, len(domain.MarketStats))
	values := make([]int, 0, len(domain.MarketStats))
	for _, s := range domain.MarketStats {
		labels = append(labels, s.Year)
		values = append(values, s.Demand)
	}
	sections = append(sections, components.TitledCard("Demand by year",
		components.BarChart(labels, values, inner), cw))

	if p := d.manager.Profile(); p != nil && p.CareerGoal == domain.Role {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Success).Bold(true).
			Render("★ This is your current career goal"))
	} else {
		sections = append(sections, theme.Hint.Render(
			fmt.Sprintf("Press G to make %s your career goal", domain.Role)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
