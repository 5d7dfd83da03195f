package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestProgressBar_Filled(t *testing.T) {
	bar := Ratio("Known", 1, 4, 30)

	// 30 - len("Known")-2 - 6 for the percent.
	assert.Equal(t, 17, bar.BarWidth())
	assert.Equal(t, 4, bar.Filled())
	assert.Contains(t, bar.View(), "25%")
	assert.LessOrEqual(t, lipgloss.Width(bar.View()), 30)
}

func TestProgressBar_EmptyDeck(t *testing.T) {
	bar := Ratio("", 0, 0, 20)
	assert.Equal(t, 0, bar.Filled())
	assert.Contains(t, bar.View(), "0%")
}

func TestProgressBar_Clamps(t *testing.T) {
	over := NewProgressBar("", 1.5, true, 10)
	assert.Equal(t, over.BarWidth(), over.Filled())
	assert.Contains(t, over.View(), "100%")

	under := NewProgressBar("", -0.5, false, 10)
	assert.Equal(t, 0, under.Filled())
}

func TestProgressBar_MinimumWidth(t *testing.T) {
	bar := NewProgressBar("a very long label", 0.5, true, 5)
	assert.Equal(t, 4, bar.BarWidth())
}

func TestTable_RendersHeadersAndRows(t *testing.T) {
	out := Table([]string{"Term", "Stage"}, [][]string{
		{"hola", "learn"},
		{"adios", "know"},
	})
	for _, s := range []string{"Term", "Stage", "hola", "adios", "know"} {
		assert.Contains(t, out, s)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abc…", Truncate("abcdef", 4))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
	assert.Equal(t, 4, lipgloss.Width(Truncate("abcdefgh", 4)))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("  Uno ", "uno"))
	assert.True(t, Matches("one", " ONE"))
	assert.False(t, Matches("", ""))
	assert.False(t, Matches("   ", "uno"))
	assert.False(t, Matches("dos", "uno"))
}

func TestTextInput_IgnoresInputAfterSubmit(t *testing.T) {
	ti := NewTextInput("answer", 0)
	ti.Model.SetValue("uno")
	ti.Submit(true)

	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, "uno", ti.Value())
	assert.True(t, ti.Submitted())
	assert.Contains(t, ti.View(), "✓")
}
