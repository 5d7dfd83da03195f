package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashquest/internal/ui/theme"
)

const (
	filledGlyph = "█"
	emptyGlyph  = "░"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Ratio builds a progress bar for done out of total.
func Ratio(label string, done, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	return NewProgressBar(label, pct, true, width)
}

// BarWidth returns the number of cells used by the bar itself.
func (p ProgressBar) BarWidth() int {
	labelWidth := 0
	if p.Label != "" {
		labelWidth = lipgloss.Width(p.Label) + 2
	}
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}
	return barWidth
}

// Filled returns the number of filled cells.
func (p ProgressBar) Filled() int {
	barWidth := p.BarWidth()
	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label) + "  ")
	}

	filled := p.Filled()
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(filledGlyph, filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(emptyGlyph, p.BarWidth()-filled)))

	if p.ShowPercent {
		pct := int(p.Percent * 100)
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d%%", pct)))
	}

	return b.String()
}
