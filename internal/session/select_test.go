package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSessionCards(t *testing.T) {
	cards := []string{"a", "b", "c", "d"}

	tests := []struct {
		name  string
		cards []string
		cap   int
		want  []string
	}{
		{"empty pool", nil, 10, []string{}},
		{"empty pool zero cap", []string{}, 0, []string{}},
		{"zero cap", cards, 0, []string{}},
		{"negative cap", cards, -3, []string{}},
		{"prefix", cards, 2, []string{"a", "b"}},
		{"cap equals length", cards, 4, []string{"a", "b", "c", "d"}},
		{"cap above length", cards, 50, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectSessionCards(tt.cards, tt.cap)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectSessionCards_DoesNotReorder(t *testing.T) {
	cards := []SessionCard{
		{CardID: "z", Stage: StageKnow},
		{CardID: "a", Stage: StageLearn},
		{CardID: "m", Stage: StageRecognize},
	}
	got := SelectSessionCards(cards, 3)
	assert.Equal(t, cards, got)
}

func TestPickDailyNewLimit(t *testing.T) {
	tests := []struct {
		totalNew, cap, want int
	}{
		{0, 20, 0},
		{5, 20, 5},
		{20, 20, 20},
		{50, 20, 20},
		{50, 0, 0},
		{50, -4, 0},
		{-2, 10, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PickDailyNewLimit(tt.totalNew, tt.cap), "PickDailyNewLimit(%d, %d)", tt.totalNew, tt.cap)
	}
}

func TestPickDailyNewLimit_MonotonicAndBounded(t *testing.T) {
	for totalNew := -3; totalNew <= 30; totalNew++ {
		prev := PickDailyNewLimit(totalNew, -5)
		for c := -5; c <= 40; c++ {
			got := PickDailyNewLimit(totalNew, c)
			assert.GreaterOrEqual(t, got, prev, "not monotonic at totalNew=%d cap=%d", totalNew, c)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, max(totalNew, 0))
			assert.LessOrEqual(t, got, max(c, 0))
			assert.Equal(t, got, PickDailyNewLimit(got, c), "not idempotent")
			prev = got
		}
	}
}
