package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Warning   = lipgloss.Color("#EAB308") // Amber
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary).
		Padding(0, 1)

	Cell = lipgloss.NewStyle().
		Padding(0, 1)
)

// Answer feedback
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Prompt = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// StageStyle colors a learning stage name.
func StageStyle(stage string) lipgloss.Style {
	switch stage {
	case "know":
		return lipgloss.NewStyle().Foreground(Success)
	case "recognize":
		return lipgloss.NewStyle().Foreground(Warning)
	default:
		return lipgloss.NewStyle().Foreground(Secondary)
	}
}

// StatusStyle colors a review status (new, due, scheduled).
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "due":
		return lipgloss.NewStyle().Foreground(Accent).Bold(true)
	case "scheduled":
		return lipgloss.NewStyle().Foreground(TextDim)
	default:
		return lipgloss.NewStyle().Foreground(Secondary)
	}
}

// RarityStyle colors a gem rarity.
func RarityStyle(rarity string) lipgloss.Style {
	switch rarity {
	case "legendary":
		return lipgloss.NewStyle().Foreground(Accent).Bold(true)
	case "epic":
		return lipgloss.NewStyle().Foreground(Primary).Bold(true)
	case "rare":
		return lipgloss.NewStyle().Foreground(Secondary)
	default:
		return lipgloss.NewStyle().Foreground(TextDim)
	}
}
