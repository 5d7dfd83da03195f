package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashquest/internal/screen"
	"github.com/abhisek/flashquest/internal/screens/study"
	"github.com/abhisek/flashquest/internal/ui/layout"
)

// Options holds the dependencies for an interactive study run.
type Options struct {
	Service   study.Service
	LearnerID string
	DeckRef   string
}

// AppModel is the root Bubble Tea model. It frames the active screen with
// a header and footer.
type AppModel struct {
	active screen.Screen
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the study screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		active: study.New(opts.Service, opts.LearnerID, opts.DeckRef),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ReplaceMsg:
		m.active = msg.Screen
		return m, m.active.Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	updated, cmd := m.active.Update(msg)
	m.active = updated
	return m, cmd
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

	var status *layout.Status
	if sp, ok := m.active.(screen.StatusProvider); ok {
		st := sp.Status()
		status = &st
	}
	header := layout.RenderHeader(m.active.Title(), status, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if kp, ok := m.active.(screen.KeyHintProvider); ok {
		footerHints = append(kp.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.active.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until the learner quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
