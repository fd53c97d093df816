// Package dashboard renders the signed-in home view: goal summary,
// roadmap progress, today's schedule preview, and daily mentor tips.
package dashboard

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

type tipsMsg struct {
	tips string
	err  error
}

// DashboardScreen is the signed-in overview.
type DashboardScreen struct {
	manager *session.Manager
	mentor  *mentor.Service
	menu    components.Menu
	tips    string
	tipsErr bool
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen. The mentor service may be nil when no
// provider is configured; the tips card is skipped in that case.
func New(manager *session.Manager, mentorSvc *mentor.Service) *DashboardScreen {
	items := []components.MenuItem{
		{Label: "EXPLORE DOMAINS", Action: func() tea.Cmd {
			return router.Dispatch(session.Navigate{View: nav.ViewExplore})
		}},
		{Label: "COURSE LIBRARY", Action: func() tea.Cmd {
			return router.Dispatch(session.Navigate{View: nav.ViewCourses})
		}},
		{Label: "TODAY'S SCHEDULE", Action: func() tea.Cmd {
			return router.Dispatch(session.Navigate{View: nav.ViewSchedule})
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return router.Dispatch(session.Navigate{View: nav.ViewSettings})
		}},
	}

	return &DashboardScreen{
		manager: manager,
		mentor:  mentorSvc,
		menu:    components.NewMenu(items),
	}
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	if d.mentor == nil {
		return nil
	}
	p := d.manager.Profile()
	if p == nil {
		return nil
	}
	role := string(p.CareerGoal)
	progress := roadmapProgress(p.CareerGoal, p.CompletedCourses)
	svc := d.mentor
	return func() tea.Msg {
		tips, err := svc.DailyTips(context.Background(), role, progress)
		return tipsMsg{tips: tips, err: err}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tipsMsg:
		if msg.err != nil {
			d.tipsErr = true
		} else {
			d.tips = msg.tips
		}
		return d, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		d.menu, cmd = d.menu.Update(msg)
		return d, cmd
	}

	return d, nil
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+T", Description: "Mentor chat"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DashboardScreen) View(width, height int) string {
	p := d.manager.Profile()
	if p == nil {
		return ""
	}

	cw := components.ContentWidth(width)
	inner := cw - 6

	var sections []string

	// Goal card with roadmap progress.
	progress := roadmapProgress(p.CareerGoal, p.CompletedCourses)
	goalBody := components.StatRow("Career goal", string(p.CareerGoal), inner) + "\n" +
		components.StatRow("Learning pace", string(p.LearningPace), inner) + "\n" +
		components.StatRow("Daily availability", fmt.Sprintf("%dh", p.DailyAvailability), inner) + "\n\n" +
		components.NewProgressBar("Roadmap", float64(progress)/100, true, inner).View()
	sections = append(sections, components.TitledCard(
		fmt.Sprintf("Hey %s 👋", p.Name), goalBody, cw))

	// Today's schedule preview.
	sections = append(sections, components.TitledCard(
		"Today", d.schedulePreview(inner), cw))

	// Daily tips, when the mentor is reachable.
	if d.tips != "" {
		sections = append(sections, components.TitledCard(
			"Mentor tips", components.Wrap(d.tips, inner), cw))
	} else if d.mentor != nil && !d.tipsErr {
		sections = append(sections, components.TitledCard(
			"Mentor tips", theme.Hint.Render("Fetching today's tips..."), cw))
	}

	sections = append(sections, d.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (d *DashboardScreen) schedulePreview(width int) string {
	all := d.manager.Tasks().Sorted()
	if len(all) == 0 {
		return theme.Hint.Render("No tasks yet. Open the schedule to plan your day.")
	}

	shown := all
	if len(shown) > 3 {
		shown = shown[:3]
	}

	var lines []string
	for _, t := range shown {
		mark := "○"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if t.Completed {
			mark = "●"
			style = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			mark, t.StartTime, style.Render(t.Title)))
	}
	if rest := len(all) - len(shown); rest > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("…and %d more", rest)))
	}
	return strings.Join(lines, "\n")
}

// roadmapProgress maps completed enrollments onto a 0-100 scale against
// the goal domain's course track.
func roadmapProgress(goal catalog.CareerRole, completed []string) int {
	track := catalog.CoursesByCategory(goal)
	if len(track) == 0 {
		return 0
	}
	done := 0
	seen := map[string]bool{}
	for _, id := range completed {
		if seen[id] {
			continue
		}
		seen[id] = true
		if c := catalog.CourseByID(id); c != nil && c.Category == goal {
			done++
		}
	}
	pct := done * 100 / len(track)
	if pct > 100 {
		pct = 100
	}
	return pct
}
