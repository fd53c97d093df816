// Package landing renders the entry screen shown to signed-out users.
package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/router"
	"github.com/edupath/pathfinder/internal/screen"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/ui/layout"
	"github.com/edupath/pathfinder/internal/ui/theme"
)

const bannerArt = `
 ██████╗  █████╗ ████████╗██╗  ██╗███████╗██╗███╗   ██╗██████╗ ███████╗██████╗
 ██╔══██╗██╔══██╗╚══██╔══╝██║  ██║██╔════╝██║████╗  ██║██╔══██╗██╔════╝██╔══██╗
 ██████╔╝███████║   ██║   ███████║█████╗  ██║██╔██╗ ██║██║  ██║█████╗  ██████╔╝
 ██╔═══╝ ██╔══██║   ██║   ██╔══██║██╔══╝  ██║██║╚██╗██║██║  ██║██╔══╝  ██╔══██╗
 ██║     ██║  ██║   ██║   ██║  ██║██║     ██║██║ ╚████║██████╔╝███████╗██║  ██║
 ╚═╝     ╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝     ╚═╝╚═╝  ╚═══╝╚═════╝ ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "P A T H F I N D E R"

// RenderBanner returns the banner styled in the primary color, with a
// compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 84 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// LandingScreen is the marketing front page: banner, tagline, and two
// ways in (explore as guest, or sign in).
type LandingScreen struct{}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates a LandingScreen.
func New() *LandingScreen {
	return &LandingScreen{}
}

func (l *LandingScreen) Title() string {
	return ""
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "enter":
		return l, router.Dispatch(session.Start{})
	case "s":
		return l, router.Dispatch(session.OpenLogin{})
	}

	return l, nil
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Explore careers"},
		{Key: "S", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Find your path. Plan your day. Land the role.")
	sections = append(sections, tagline)

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Career guidance, course picks, and an AI mentor for students.")
	sections = append(sections, sub)

	sections = append(sections, "")
	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press Enter to start exploring")
	sections = append(sections, hint)

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
