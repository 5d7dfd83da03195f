package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashquest/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show live
// session figures in the header.
type StatusProvider interface {
	Status() layout.Status
}

// ReplaceMsg asks the app to swap the active screen for another.
type ReplaceMsg struct {
	Screen Screen
}

// Replace returns a command that swaps the active screen.
func Replace(s Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceMsg{Screen: s} }
}
