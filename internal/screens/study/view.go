package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashquest/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.sess == nil || s.card == nil {
		return renderLoading(width)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}

	var b strings.Builder
	b.WriteString(s.renderCardHeader(width))

	switch s.phase {
	case phaseQuestion:
		b.WriteString(centered(width, theme.Body).Render("Answer: " + s.input.View()))
	case phaseReveal:
		b.WriteString(centered(width, theme.Body).Render("Answer: " + s.input.View()))
		b.WriteString("\n\n")
		b.WriteString(s.renderDefinition(width))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint).Render(
			"Enter to accept, Y if you knew it, N if you didn't, or grade 0-5"))
	case phaseFeedback:
		b.WriteString(s.renderFeedback(width))
	}
	return b.String()
}

// renderCardHeader renders the stage line and the term being asked.
func (s *StudyScreen) renderCardHeader(width int) string {
	c := s.card

	var b strings.Builder
	status := "new"
	if !c.New {
		status = "review"
	}
	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Card %d of %d", s.answered+1, s.sess.Plan.Len()))
	tag := theme.StageStyle(string(c.Stage)).Render(string(c.Stage)) + " " +
		theme.Hint.Render(status)

	line := info
	if pad := width - lipgloss.Width(info) - lipgloss.Width(tag) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + tag
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(centered(width, theme.Title).Render(c.Term))
	b.WriteString("\n\n")
	return b.String()
}

func (s *StudyScreen) renderDefinition(width int) string {
	verdict := centered(width, theme.Incorrect).Render("Not quite")
	if s.typedCorrect {
		verdict = centered(width, theme.Correct).Render("Correct!")
	}
	def := theme.Card.Width(min(width-8, 70)).Render(s.card.Definition)
	return verdict + "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, def)
}

// renderFeedback shows how the answer moved the card's schedule.
func (s *StudyScreen) renderFeedback(width int) string {
	res := s.result
	if res == nil {
		return ""
	}

	var b strings.Builder
	if res.Correct {
		b.WriteString(centered(width, theme.Correct).Render("Got it!"))
	} else {
		b.WriteString(centered(width, theme.Incorrect).Render("You'll see this one again soon"))
	}
	b.WriteString("\n\n")

	sched := res.Schedule
	b.WriteString(centered(width, theme.Subtitle).Render(fmt.Sprintf(
		"Next review in %s  ·  ease %.2f  ·  stage %s",
		formatMinutes(sched.NextIntervalMinutes), sched.EaseFactor, res.Stage)))
	b.WriteString("\n\n")

	for _, g := range res.Gems {
		line := fmt.Sprintf("%s %s %s Gem: %s",
			g.Type.Icon(), g.Rarity.DisplayName(), g.Type.DisplayName(), g.Reason)
		b.WriteString(centered(width, theme.RarityStyle(string(g.Rarity))).Render(line))
		b.WriteString("\n")
	}
	if len(res.Gems) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(centered(width, theme.Hint).Render("Press any key to continue..."))
	return b.String()
}

func formatMinutes(m float64) string {
	switch {
	case m >= 1440:
		return fmt.Sprintf("%.1f days", m/1440)
	case m >= 60:
		return fmt.Sprintf("%.1f hours", m/60)
	default:
		return fmt.Sprintf("%.0f min", m)
	}
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, theme.Body.Bold(true)).Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Subtitle).Render("Your answers so far are saved."))
	b.WriteString("\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Success)).Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary)).Render("[N] No, keep going"))
	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return centered(width, theme.Subtitle).Render("\n\n\n  Preparing your session...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return centered(width, lipgloss.NewStyle().Foreground(theme.Error)).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to exit.", errMsg))
}

func centered(width int, style lipgloss.Style) lipgloss.Style {
	return style.Width(width).Align(lipgloss.Center)
}
