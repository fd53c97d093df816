// Package schedule renders the daily planner: the session task list
// plus an inline form for adding entries.
package schedule

import (
	"fmt"
	"regexp"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/router"
	"github.com/edupath/pathfinder/internal/screen"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/tasks"
	"github.com/edupath/pathfinder/internal/ui/components"
	"github.com/edupath/pathfinder/internal/ui/layout"
	"github.com/edupath/pathfinder/internal/ui/theme"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const (
	fieldTitle = iota
	fieldType
	fieldPriority
	fieldStart
	fieldEnd
	fieldCount
)

// ScheduleScreen shows and edits the day's tasks.
type ScheduleScreen struct {
	manager  *session.Manager
	selected int

	adding   bool
	focused  int
	title    components.TextInput
	typ      components.Picker
	priority components.Picker
	start    components.TextInput
	end      components.TextInput
	formErr  string
}

var _ screen.Screen = (*ScheduleScreen)(nil)
var _ screen.KeyHintProvider = (*ScheduleScreen)(nil)

// New creates a ScheduleScreen.
func New(manager *session.Manager) *ScheduleScreen {
	return &ScheduleScreen{manager: manager}
}

func (s *ScheduleScreen) Title() string {
	return "Schedule"
}

func (s *ScheduleScreen) Init() tea.Cmd {
	return nil
}

func (s *ScheduleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.adding {
		return s.updateForm(kmsg)
	}
	return s.updateList(kmsg)
}

func (s *ScheduleScreen) updateList(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sorted := s.manager.Tasks().Sorted()

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(sorted)-1 {
			s.selected++
		}
	case "enter", " ":
		if s.selected < len(sorted) {
			return s, router.Dispatch(session.ToggleTask{ID: sorted[s.selected].ID})
		}
	case "d", "x":
		if s.selected < len(sorted) {
			id := sorted[s.selected].ID
			if s.selected == len(sorted)-1 && s.selected > 0 {
				s.selected--
			}
			return s, router.Dispatch(session.RemoveTask{ID: id})
		}
	case "a":
		s.openForm()
		return s, s.title.Model.Focus()
	case "g":
		return s, router.Dispatch(session.GenerateSchedule{})
	case "esc":
		if s.manager.LoggedIn() {
			return s, router.Dispatch(session.Navigate{View: nav.ViewDashboard})
		}
		return s, router.Dispatch(session.Navigate{View: nav.ViewExplore})
	}

	return s, nil
}

func (s *ScheduleScreen) openForm() {
	s.adding = true
	s.focused = fieldTitle
	s.formErr = ""
	s.title = components.NewTextInput("Task title", false, 60)
	s.typ = components.NewPicker("Type", typeOptions(), string(tasks.TypePersonal))
	s.priority = components.NewPicker("Priority", priorityOptions(), string(tasks.PriorityMedium))
	s.start = components.NewTextInput("HH:MM", false, 5)
	s.start.Model.Blur()
	s.end = components.NewTextInput("HH:MM", false, 5)
	s.end.Model.Blur()
}

func (s *ScheduleScreen) updateForm(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.adding = false
		return s, nil

	case "enter":
		return s.submitForm()

	case "tab", "down":
		return s, s.focusField((s.focused + 1) % fieldCount)

	case "shift+tab", "up":
		return s, s.focusField((s.focused + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	switch s.focused {
	case fieldTitle:
		s.title, cmd = s.title.Update(kmsg)
	case fieldType:
		s.typ, cmd = s.typ.Update(kmsg)
	case fieldPriority:
		s.priority, cmd = s.priority.Update(kmsg)
	case fieldStart:
		s.start, cmd = s.start.Update(kmsg)
	case fieldEnd:
		s.end, cmd = s.end.Update(kmsg)
	}
	return s, cmd
}

func (s *ScheduleScreen) focusField(i int) tea.Cmd {
	s.focused = i
	s.title.Model.Blur()
	s.start.Model.Blur()
	s.end.Model.Blur()
	s.typ.Focused = false
	s.priority.Focused = false

	switch i {
	case fieldTitle:
		return s.title.Model.Focus()
	case fieldType:
		s.typ.Focused = true
	case fieldPriority:
		s.priority.Focused = true
	case fieldStart:
		return s.start.Model.Focus()
	case fieldEnd:
		return s.end.Model.Focus()
	}
	return nil
}

func (s *ScheduleScreen) submitForm() (screen.Screen, tea.Cmd) {
	title := strings.TrimSpace(s.title.Value())
	start := strings.TrimSpace(s.start.Value())
	end := strings.TrimSpace(s.end.Value())

	switch {
	case title == "":
		s.formErr = "Title is required."
	case !timePattern.MatchString(start):
		s.formErr = "Start time must be HH:MM (24h)."
	case !timePattern.MatchString(end):
		s.formErr = "End time must be HH:MM (24h)."
	case end <= start:
		s.formErr = "End time must be after start time."
	default:
		s.adding = false
		return s, router.Dispatch(session.AddTask{Task: tasks.Task{
			Title:     title,
			Type:      tasks.Type(s.typ.Value()),
			Priority:  tasks.Priority(s.priority.Value()),
			StartTime: start,
			EndTime:   end,
		}})
	}
	return s, nil
}

func (s *ScheduleScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save task"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add"},
		{Key: "G", Description: "Generate day"},
		{Key: "Enter", Description: "Toggle"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ScheduleScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var card string
	if s.adding {
		card = s.formView(cw)
	} else {
		card = s.listView(cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *ScheduleScreen) listView(cw int) string {
	sorted := s.manager.Tasks().Sorted()

	if len(sorted) == 0 {
		body := theme.Hint.Render("Nothing planned yet.\n\nPress A to add a task, or G to generate a full day.")
		return components.TitledCard("Today's plan", body, cw)
	}

	var lines []string
	done := 0
	for i, t := range sorted {
		if t.Completed {
			done++
		}
		lines = append(lines, s.renderTask(i, t))
	}

	summary := fmt.Sprintf("%d of %d done", done, len(sorted))
	body := strings.Join(lines, "\n") + "\n\n" + theme.Hint.Render(summary)
	return components.TitledCard("Today's plan", body, cw)
}

func (s *ScheduleScreen) renderTask(i int, t tasks.Task) string {
	mark := "○"
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if t.Completed {
		mark = "●"
		titleStyle = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
	}

	badge := ""
	if t.Generated() {
		badge = lipgloss.NewStyle().Foreground(theme.Secondary).Render(" ⚡")
	}

	line := fmt.Sprintf("%s %s-%s  %s %s%s",
		mark, t.StartTime, t.EndTime,
		priorityGlyph(t.Priority),
		titleStyle.Render(t.Title),
		badge)

	if i == s.selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ ") + line
	}
	return "  " + line
}

func (s *ScheduleScreen) formView(cw int) string {
	var b strings.Builder

	b.WriteString(s.title.View() + "\n\n")
	b.WriteString(s.typ.View() + "\n")
	b.WriteString(s.priority.View() + "\n\n")
	b.WriteString("Start " + s.start.View() + "\n")
	b.WriteString("End   " + s.end.View() + "\n")

	if s.formErr != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.formErr))
	}

	return components.TitledCard("New task", b.String(), cw)
}

func priorityGlyph(p tasks.Priority) string {
	switch p {
	case tasks.PriorityHigh:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("!")
	case tasks.PriorityMedium:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("·")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
	}
}

func typeOptions() []string {
	types := tasks.Types()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func priorityOptions() []string {
	priorities := tasks.Priorities()
	out := make([]string, len(priorities))
	for i, p := range priorities {
		out[i] = string(p)
	}
	return out
}
