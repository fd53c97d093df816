package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edupath/pathfinder/internal/mentor"
	"github.com/edupath/pathfinder/internal/nav"
	"github.com/edupath/pathfinder/internal/router"
	"github.com/edupath/pathfinder/internal/screen"
	"github.com/edupath/pathfinder/internal/screens/auth"
	"github.com/edupath/pathfinder/internal/screens/chat"
	"github.com/edupath/pathfinder/internal/screens/courses"
	"github.com/edupath/pathfinder/internal/screens/dashboard"
	"github.com/edupath/pathfinder/internal/screens/domaindetail"
	"github.com/edupath/pathfinder/internal/screens/explore"
	"github.com/edupath/pathfinder/internal/screens/landing"
	"github.com/edupath/pathfinder/internal/screens/schedule"
	"github.com/edupath/pathfinder/internal/screens/settings"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/ui/layout"
)

// Options carries the app's collaborators. Mentor may be nil when no
// LLM provider is configured; AI features degrade gracefully.
type Options struct {
	Manager *session.Manager
	Mentor  *mentor.Service
}

// AppModel is the root Bubble Tea model. It owns the dispatch loop:
// screens emit actions, the session manager applies them, and the
// router re-syncs the active screen to the resolved view tag.
type AppModel struct {
	manager *session.Manager
	mentor  *mentor.Service
	router  *router.Router

	chat     *chat.Model
	chatOpen bool

	notice string
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	m := opts.Manager
	factory := screenFactory(m, opts.Mentor)

	return AppModel{
		manager: m,
		mentor:  opts.Mentor,
		router:  router.New(factory, m.ActiveView()),
		chat:    chat.New(m, opts.Mentor),
	}
}

// screenFactory builds the screen for each view tag. The auth fallback
// for protected views happens before this is called, so every tag maps
// directly to its screen.
func screenFactory(m *session.Manager, mentorSvc *mentor.Service) router.Factory {
	return func(v nav.View) screen.Screen {
		switch v {
		case nav.ViewLanding:
			return landing.New()
		case nav.ViewAuth:
			return auth.New()
		case nav.ViewDashboard:
			return dashboard.New(m, mentorSvc)
		case nav.ViewExplore:
			return explore.New(m, mentorSvc)
		case nav.ViewDomainDetail:
			return domaindetail.New(m)
		case nav.ViewCourses:
			return courses.New(m)
		case nav.ViewSchedule:
			return schedule.New(m)
		case nav.ViewSettings:
			return settings.New(m)
		default:
			return landing.New()
		}
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.DispatchMsg:
		m.manager.Dispatch(context.Background(), msg.Action)
		if w := m.manager.TakeWarning(); w != "" {
			m.notice = w
		} else {
			m.notice = ""
		}
		return m, m.router.Sync(m.manager.ActiveView())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			if m.mentor != nil && m.manager.LoggedIn() {
				m.chatOpen = !m.chatOpen
				if m.chatOpen {
					return m, m.chat.Focus()
				}
			}
			return m, nil
		case "esc":
			if m.chatOpen {
				m.chatOpen = false
				return m, nil
			}
		}

		if m.chatOpen {
			return m, m.chat.Update(msg)
		}
		return m, m.router.Update(msg)
	}

	// Async results (mentor replies, tips, suggestions) go to both
	// the overlay and the active screen; each ignores what it does
	// not recognize.
	cmds := []tea.Cmd{m.chat.Update(msg), m.router.Update(msg)}
	return m, tea.Batch(cmds...)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if m.chatOpen {
		title = "Mentor Chat"
	} else if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	userName := ""
	if p := m.manager.Profile(); p != nil {
		userName = p.Name
	}

	header := layout.RenderHeader(title, userName, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.notice, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.chatOpen {
		content = m.chat.View(m.width, contentHeight)
	} else {
		content = m.router.Render(m.width, contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints() []layout.KeyHint {
	if m.chatOpen {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Close chat"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	if provider, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return provider.KeyHints()
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
