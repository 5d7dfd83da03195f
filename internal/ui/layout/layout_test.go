package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(59, 40))
	assert.True(t, IsTooSmall(100, 15))
	assert.False(t, IsTooSmall(60, 16))
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Study", &Status{Answered: 3, Total: 10, Streak: 2, Gems: 1}, 80)
	assert.Contains(t, h, "flashquest")
	assert.Contains(t, h, "Study")
	assert.Contains(t, h, "3/10")
	assert.Equal(t, 80, lipgloss.Width(h))

	plain := RenderHeader("Summary", nil, 80)
	assert.NotContains(t, plain, "⚡")
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Quit"}}, 70)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Quit")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Study", nil, 60)
	footer := RenderFooter(nil, 60)
	frame := RenderFrame(header, "body", footer, 60, 20)

	assert.Equal(t, 20, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "body"))
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(40, 10)
	assert.Contains(t, msg, "Terminal too small!")
	assert.Contains(t, msg, "40 x 10")
}
