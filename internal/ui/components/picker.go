package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/ui/theme"
)

// Picker is a horizontal single-choice selector, used in forms to pick
// one of a small closed set (learning pace, task type, priority).
type Picker struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker pre-selected on the option matching
// current, or the first option when current is not in the set.
func NewPicker(label string, options []string, current string) Picker {
	selected := 0
	for i, o := range options {
		if o == current {
			selected = i
			break
		}
	}
	return Picker{
		Label:    label,
		Options:  options,
		Selected: selected,
	}
}

// Update handles left/right cycling while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// Value returns the selected option.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders the picker as a row of options with the selection
// highlighted.
func (p Picker) View() string {
	var s string
	if p.Label != "" {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if p.Focused {
			labelStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		}
		s += labelStyle.Render(p.Label) + "  "
	}

	for i, opt := range p.Options {
		if i > 0 {
			s += "  "
		}
		switch {
		case i == p.Selected && p.Focused:
			s += lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" " + opt + " ")
		case i == p.Selected:
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("[" + opt + "]")
		default:
			s += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(" " + opt + " ")
		}
	}

	return s
}
