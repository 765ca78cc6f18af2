package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, close to the admin site's blues
var (
	Primary   = lipgloss.Color("#79AEC8") // Admin Blue
	Secondary = lipgloss.Color("#417690") // Deep Blue
	Accent    = lipgloss.Color("#F5DD5D") // Header Yellow
	Success   = lipgloss.Color("#70BF2B") // Green
	Error     = lipgloss.Color("#BA2121") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim).
			Faint(true)

	Failed = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Ok = lipgloss.NewStyle().
		Foreground(Success)
)

// Form fields
var (
	FieldLabel = lipgloss.NewStyle().
			Foreground(Text).
			Width(34)

	FieldLabelFocused = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				Width(34)

	FieldLabelDisabled = lipgloss.NewStyle().
				Foreground(TextDim).
				Width(34)
)
