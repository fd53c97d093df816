// Package chat renders the mentor chat overlay. It is managed by the
// app model directly rather than the router, so it can open on top of
// any view.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/llm"
	"github.com/edupath/pathfinder/internal/mentor"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/ui/components"
	"github.com/edupath/pathfinder/internal/ui/theme"
)

const greeting = "Hi! I'm your EduPath Mentor. Ask me anything about your roadmap, courses, or study habits."

type replyMsg struct {
	text string
}

// Model is the chat overlay state. One request is outstanding at a
// time; the input is locked while the mentor is thinking.
type Model struct {
	manager *session.Manager
	mentor  *mentor.Service
	input   components.TextInput
	history []mentor.Turn
	pending bool
}

// New creates the chat overlay.
func New(manager *session.Manager, mentorSvc *mentor.Service) *Model {
	input := components.NewTextInput("Ask your mentor...", false, 200)
	return &Model{
		manager: manager,
		mentor:  mentorSvc,
		input:   input,
	}
}

// Focus readies the input when the overlay opens.
func (m *Model) Focus() tea.Cmd {
	return m.input.Model.Focus()
}

// Pending reports whether a mentor reply is in flight.
func (m *Model) Pending() bool {
	return m.pending
}

// Update handles overlay messages. The caller owns open/close keys.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case replyMsg:
		m.pending = false
		m.history = append(m.history, mentor.Turn{
			Role:    llm.RoleAssistant,
			Content: msg.text,
		})
		return nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m.send()
		}
		if m.pending {
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	return nil
}

func (m *Model) send() tea.Cmd {
	if m.pending || m.mentor == nil {
		return nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}

	history := append([]mentor.Turn(nil), m.history...)
	m.history = append(m.history, mentor.Turn{Role: llm.RoleUser, Content: text})
	m.input.Model.SetValue("")
	m.pending = true

	goal := ""
	if p := m.manager.Profile(); p != nil {
		goal = string(p.CareerGoal)
	}

	svc := m.mentor
	return func() tea.Msg {
		reply := svc.Chat(context.Background(), goal, history, text)
		return replyMsg{text: reply}
	}
}

// View renders the chat panel.
func (m *Model) View(width, height int) string {
	cw := components.ContentWidth(width)
	inner := cw - 6

	var lines []string
	lines = append(lines, theme.Hint.Render(components.Wrap(greeting, inner)))
	lines = append(lines, "")

	// Show as much recent history as fits.
	maxLines := height - 10
	if maxLines < 4 {
		maxLines = 4
	}
	rendered := m.renderHistory(inner)
	if len(rendered) > maxLines {
		rendered = rendered[len(rendered)-maxLines:]
	}
	lines = append(lines, rendered...)

	if m.pending {
		lines = append(lines, theme.Hint.Render("Mentor is thinking..."))
	}

	lines = append(lines, "")
	lines = append(lines, m.input.View())

	card := components.TitledCard("Mentor chat", strings.Join(lines, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (m *Model) renderHistory(width int) []string {
	var out []string
	for _, t := range m.history {
		switch t.Role {
		case llm.RoleUser:
			out = append(out, lipgloss.NewStyle().
				Foreground(theme.Accent).Bold(true).Render("You: ")+components.Wrap(t.Content, width))
		default:
			out = append(out, lipgloss.NewStyle().
				Foreground(theme.Primary).Bold(true).Render("Mentor: ")+components.Wrap(t.Content, width))
		}
		out = append(out, "")
	}
	return out
}
