package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageStyle(t *testing.T) {
	assert.Equal(t, Success, StageStyle("know").GetForeground())
	assert.Equal(t, Warning, StageStyle("recognize").GetForeground())
	assert.Equal(t, Secondary, StageStyle("learn").GetForeground())
	assert.Equal(t, Secondary, StageStyle("").GetForeground())
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, Accent, StatusStyle("due").GetForeground())
	assert.True(t, StatusStyle("due").GetBold())
	assert.Equal(t, TextDim, StatusStyle("scheduled").GetForeground())
	assert.Equal(t, Secondary, StatusStyle("new").GetForeground())
}

func TestRarityStyle(t *testing.T) {
	assert.Equal(t, Accent, RarityStyle("legendary").GetForeground())
	assert.Equal(t, Primary, RarityStyle("epic").GetForeground())
	assert.Equal(t, Secondary, RarityStyle("rare").GetForeground())
	assert.Equal(t, TextDim, RarityStyle("common").GetForeground())
}
