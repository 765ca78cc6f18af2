package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/reshuffle/admin/internal/ui/theme"
)

// SelectOption is one entry of a Select.
type SelectOption struct {
	Key  string
	Name string
}

// Select is a single-line choice selector. Left and right cycle through
// the options.
type Select struct {
	Options  []SelectOption
	Selected int
	Focused  bool
	Disabled bool
}

// NewSelect creates an empty selector.
func NewSelect() Select {
	return Select{}
}

// SetOptions replaces the options and selects key. An unknown key
// selects the first option.
func (s *Select) SetOptions(opts []SelectOption, key string) {
	s.Options = opts
	s.Selected = 0
	for i, o := range opts {
		if o.Key == key {
			s.Selected = i
			break
		}
	}
}

// Value returns the key of the selected option.
func (s Select) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected].Key
}

// Update handles keyboard navigation.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if s.Disabled || len(s.Options) == 0 {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Selected > 0 {
			s.Selected--
		}
	case "right", "l", "space":
		if s.Selected < len(s.Options)-1 {
			s.Selected++
		}
	}

	return s, nil
}

// View renders the selected option between arrows.
func (s Select) View() string {
	name := ""
	if s.Selected >= 0 && s.Selected < len(s.Options) {
		name = s.Options[s.Selected].Name
	}
	if s.Disabled {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + name)
	}

	left, right := " ", " "
	if s.Focused {
		if s.Selected > 0 {
			left = "‹"
		}
		if s.Selected < len(s.Options)-1 {
			right = "›"
		}
	}
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if s.Focused {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return left + " " + style.Render(name) + " " + right
}
