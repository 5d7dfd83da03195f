package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashquest/internal/gems"
	"github.com/abhisek/flashquest/internal/screen"
	"github.com/abhisek/flashquest/internal/session"
	"github.com/abhisek/flashquest/internal/ui/layout"
	"github.com/abhisek/flashquest/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	deckName string
	summary  *session.Summary
	gems     []gems.GemAward
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(deckName string, summary *session.Summary, earned []gems.GemAward) *SummaryScreen {
	return &SummaryScreen{deckName: deckName, summary: summary, gems: earned}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	if sum.TotalCards == 0 {
		b.WriteString(center(theme.Title.Render("Nothing to study in " + s.deckName)))
		b.WriteString("\n\n")
		b.WriteString(center(theme.Subtitle.Render("All cards are scheduled for later. Come back soon!")))
		return b.String()
	}

	b.WriteString(center(theme.Title.Render("Session complete!")))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(theme.Subtitle.Render(fmt.Sprintf("%s  ·  %d:%02d", s.deckName, mins, secs))))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Body.Render(fmt.Sprintf(
		"Cards: %d/%d        Correct: %d        Accuracy: %.0f%%        Best streak: %d",
		sum.Answered, sum.TotalCards, sum.Correct, sum.Accuracy*100, sum.BestStreak))))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint.Render(fmt.Sprintf("%d new, %d review", sum.NewCards, sum.Reviews))))
	b.WriteString("\n")

	if len(s.gems) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(center(theme.Subtitle.Render("Gems")))
		b.WriteString("\n")
		b.WriteString(center(divider))
		b.WriteString("\n\n")

		for _, gem := range s.gems {
			line := fmt.Sprintf("  %s %s %s Gem: %s",
				gem.Type.Icon(),
				gem.Rarity.DisplayName(),
				gem.Type.DisplayName(),
				gem.Reason)
			b.WriteString(center(theme.RarityStyle(string(gem.Rarity)).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
