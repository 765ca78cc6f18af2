package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/reshuffle/admin/internal/router"
	"github.com/reshuffle/admin/internal/screen"
	"github.com/reshuffle/admin/internal/store"
	"github.com/reshuffle/admin/internal/ui/layout"
	"github.com/reshuffle/admin/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Events []store.FetchEvent
	Err    error
}

// HistoryScreen lists recent validation fetches.
type HistoryScreen struct {
	eventRepo  store.EventRepo
	events     []store.FetchEvent
	selected   int
	expanded   map[int]bool
	failedOnly bool
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo, failed := s.eventRepo, s.failedOnly
	return func() tea.Msg {
		events, err := repo.RecentFetches(context.Background(), store.QueryOpts{Limit: pageSize, Failed: failed})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Fetch history"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "f", Description: "Failed only"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		case "f":
			s.failedOnly = !s.failedOnly
			s.selected = 0
			s.expanded = make(map[int]bool)
			s.loaded = false
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		text := "No fetches recorded yet."
		if s.failedOnly {
			text = "No failed fetches."
		}
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\n  " + text)
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.events {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		result := theme.Ok.Render("ok")
		if !ev.Success {
			result = theme.Failed.Render("failed")
		}

		line := fmt.Sprintf("%s%s  %-4s %s  %5dms  ",
			prefix, ev.Timestamp.Local().Format("Jan 02 15:04:05"), ev.Endpoint, parentOf(ev), ev.LatencyMs)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)+result))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := "    request " + ev.RequestID
			if ev.Error != "" {
				detail += "\n    " + ev.Error
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// parentOf describes the parent value a fetch was made for.
func parentOf(ev store.FetchEvent) string {
	if ev.Endpoint == "task" {
		return "part=" + orDash(ev.PartID)
	}
	s := "subject=" + orDash(ev.SubjectID)
	if ev.PartID != "" {
		s += " part=" + ev.PartID
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
