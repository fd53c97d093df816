// Package courses renders the searchable course library with
// enrollment.
package courses

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/catalog"
	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/router"
	"github.com/edupath/pathfinder/internal/screen"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/ui/components"
	"github.com/edupath/pathfinder/internal/ui/layout"
	"github.com/edupath/pathfinder/internal/ui/theme"
)

const pageSize = 10

// CoursesScreen is the course library: type-to-search plus a paged
// result list.
type CoursesScreen struct {
	manager   *session.Manager
	search    components.TextInput
	searching bool
	results   []catalog.RecommendedCourse
	selected  int
	offset    int
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)

// New creates a CoursesScreen showing the full catalog.
func New(manager *session.Manager) *CoursesScreen {
	search := components.NewTextInput("Search by title, provider, or domain", false, 60)
	search.Model.Blur()

	return &CoursesScreen{
		manager: manager,
		search:  search,
		results: catalog.SearchCourses(""),
	}
}

func (c *CoursesScreen) Title() string {
	return "Course Library"
}

func (c *CoursesScreen) Init() tea.Cmd {
	return nil
}

func (c *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if c.searching {
		switch kmsg.String() {
		case "enter", "esc", "down":
			c.searching = false
			c.search.Model.Blur()
			return c, nil
		}
		var cmd tea.Cmd
		c.search, cmd = c.search.Update(msg)
		c.results = catalog.SearchCourses(c.search.Value())
		c.selected = 0
		c.offset = 0
		return c, cmd
	}

	switch kmsg.String() {
	case "/":
		c.searching = true
		return c, c.search.Model.Focus()
	case "up", "k":
		if c.selected > 0 {
			c.selected--
			if c.selected < c.offset {
				c.offset = c.selected
			}
		}
	case "down", "j":
		if c.selected < len(c.results)-1 {
			c.selected++
			if c.selected >= c.offset+pageSize {
				c.offset = c.selected - pageSize + 1
			}
		}
	case "enter":
		if c.selected < len(c.results) {
			return c, router.Dispatch(session.Enroll{CourseID: c.results[c.selected].ID})
		}
	case "esc":
		if c.manager.LoggedIn() {
			return c, router.Dispatch(session.Navigate{View: nav.ViewDashboard})
		}
		return c, router.Dispatch(session.Navigate{View: nav.ViewExplore})
	}

	return c, nil
}

func (c *CoursesScreen) KeyHints() []layout.KeyHint {
	if c.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Cancel search"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Enroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CoursesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	enrolled := map[string]bool{}
	if p := c.manager.Profile(); p != nil {
		for _, id := range p.CompletedCourses {
			enrolled[id] = true
		}
	}

	var b strings.Builder
	b.WriteString(c.search.View() + "\n\n")

	if len(c.results) == 0 {
		b.WriteString(theme.Hint.Render("No courses match your search."))
	} else {
		end := c.offset + pageSize
		if end > len(c.results) {
			end = len(c.results)
		}
		for i := c.offset; i < end; i++ {
			b.WriteString(c.renderCourse(i, enrolled[c.results[i].ID]) + "\n")
		}
		b.WriteString("\n" + theme.Hint.Render(
			fmt.Sprintf("%d-%d of %d courses", c.offset+1, end, len(c.results))))
	}

	card := components.TitledCard("Recommended courses", b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (c *CoursesScreen) renderCourse(i int, enrolled bool) string {
	course := c.results[i]

	price := lipgloss.NewStyle().Foreground(theme.Success).Render("FREE")
	if !course.IsFree {
		price = lipgloss.NewStyle().Foreground(theme.Accent).Render("PAID")
	}

	mark := " "
	if enrolled {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}

	line := fmt.Sprintf("%s %-38s %-10s %s ★%.2f",
		mark, truncate(course.Title, 38), course.Provider, price, course.Rating)

	if i == c.selected && !c.searching {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
