package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for card sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for outer padding
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 2).
		Render(content)
}

// TitledCard renders a card with a highlighted title line above the body.
func TitledCard(title, content string, cw int) string {
	head := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(title)
	return Card(head+"\n\n"+content, cw)
}

// StatRow renders a label/value pair aligned within the given width.
func StatRow(label, value string, width int) string {
	l := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	v := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)

	gap := width - lipgloss.Width(l) - lipgloss.Width(v)
	if gap < 1 {
		gap = 1
	}
	return l + strings.Repeat(" ", gap) + v
}

// BarChart renders horizontal bars for labeled values scaled to the
// largest value. Used for the year-over-year market stats.
func BarChart(labels []string, values []int, width int) string {
	if len(labels) == 0 || len(labels) != len(values) {
		return ""
	}

	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	barWidth := width - labelWidth - 8
	if barWidth < 4 {
		barWidth = 4
	}

	var lines []string
	for i, l := range labels {
		filled := values[i] * barWidth / max
		if filled < 1 && values[i] > 0 {
			filled = 1
		}

		bar := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().
				Foreground(theme.Border).
				Render(strings.Repeat("░", barWidth-filled))

		line := fmt.Sprintf("%-*s  %s %d", labelWidth, l, bar, values[i])
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	}

	return strings.Join(lines, "\n")
}

// Wrap breaks text at word boundaries to fit the given width,
// preserving existing paragraph breaks.
func Wrap(s string, width int) string {
	if width < 16 {
		width = 16
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
