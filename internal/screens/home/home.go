package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/reshuffle/admin/internal/cascade"
	"github.com/reshuffle/admin/internal/router"
	"github.com/reshuffle/admin/internal/screen"
	"github.com/reshuffle/admin/internal/screens/form"
	"github.com/reshuffle/admin/internal/screens/history"
	"github.com/reshuffle/admin/internal/store"
	"github.com/reshuffle/admin/internal/ui/components"
	"github.com/reshuffle/admin/internal/ui/theme"
	"github.com/reshuffle/admin/internal/validation"
)

// Deps are the collaborators the screens opened from home need.
type Deps struct {
	Fetcher   validation.Fetcher
	EventRepo store.EventRepo
	Options   []cascade.ControllerOption
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	push := func(s screen.Screen) tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}

	items := []components.MenuItem{
		{Label: "Add part", Detail: "subject → title → answer type → tasks", Action: func() tea.Cmd {
			return push(form.NewPart(deps.Fetcher, form.PartParams{}, deps.Options...))
		}},
		{Label: "Add task", Detail: "part → position", Action: func() tea.Cmd {
			return push(form.NewTask(deps.Fetcher, form.TaskParams{}, deps.Options...))
		}},
		{Label: "Fetch history", Disabled: deps.EventRepo == nil, Action: func() tea.Cmd {
			return push(history.New(deps.EventRepo))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Reshuffle admin"),
		theme.Hint.Render("Dependent fields follow the validation endpoints"),
		"",
		h.menu.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(content))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
