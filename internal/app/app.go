package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/reshuffle/admin/internal/router"
	"github.com/reshuffle/admin/internal/screen"
	"github.com/reshuffle/admin/internal/screens/home"
	"github.com/reshuffle/admin/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Home home.Deps

	// Endpoint is shown in the header.
	Endpoint string

	// Open, when set, is pushed above the home screen at startup.
	Open screen.Screen
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	endpoint string
	width    int
	height   int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Home)
	r := router.New(homeScreen)
	if opts.Open != nil {
		r = router.New(homeScreen, opts.Open)
	}
	return AppModel{
		router:   r,
		endpoint: opts.Endpoint,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.endpoint, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits. Screens
// still on the stack are closed on return.
func Run(opts Options) error {
	m := newAppModel(opts)
	defer m.router.CloseAll()

	_, err := tea.NewProgram(m).Run()
	return err
}
