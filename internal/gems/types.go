package gems

import "time"

// GemType identifies the category of achievement.
type GemType string

const (
	GemMastery GemType = "mastery" // a card reached the know stage
	GemStreak  GemType = "streak"  // consecutive correct answers
	GemSession GemType = "session" // a finished session
)

// AllGemTypes returns all gem types in display order.
func AllGemTypes() []GemType {
	return []GemType{GemMastery, GemStreak, GemSession}
}

// DisplayName returns a human-readable label for the gem type.
func (t GemType) DisplayName() string {
	switch t {
	case GemMastery:
		return "Mastery"
	case GemStreak:
		return "Streak"
	case GemSession:
		return "Session"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the gem type.
func (t GemType) Icon() string {
	switch t {
	case GemMastery:
		return "💎"
	case GemStreak:
		return "⚡"
	case GemSession:
		return "🏆"
	default:
		return "✦"
	}
}

// GemAward represents a single gem earned.
type GemAward struct {
	Type      GemType
	Rarity    Rarity
	LearnerID string
	SessionID string
	CardID    string // set for mastery gems only
	Reason    string // e.g. "10 correct in a row!"
	AwardedAt time.Time
}
