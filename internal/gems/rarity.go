package gems

import "strings"

// Rarity represents how hard a gem was to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// ParseRarity maps a stored rarity name back to a Rarity, defaulting to common.
func ParseRarity(s string) Rarity {
	for _, r := range AllRarities() {
		if string(r) == s {
			return r
		}
	}
	return RarityCommon
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// Rank orders rarities from 0 (common) to 3 (legendary).
func (r Rarity) Rank() int {
	for i, x := range AllRarities() {
		if x == r {
			return i
		}
	}
	return 0
}

// tier pairs a minimum score with the rarity it earns.
type tier[T int | float64] struct {
	min    T
	rarity Rarity
}

var streakTiers = []tier[int]{
	{20, RarityLegendary},
	{15, RarityEpic},
	{10, RarityRare},
}

var sessionTiers = []tier[float64]{
	{0.90, RarityLegendary},
	{0.75, RarityEpic},
	{0.50, RarityRare},
}

// masteryTiers grade a mastered card by the share of its deck now known.
var masteryTiers = []tier[float64]{
	{1.0, RarityLegendary},
	{0.75, RarityEpic},
	{0.50, RarityRare},
}

func rate[T int | float64](tiers []tier[T], v T) Rarity {
	for _, t := range tiers {
		if v >= t.min {
			return t.rarity
		}
	}
	return RarityCommon
}

// StreakRarity returns the rarity for a given streak length.
func StreakRarity(length int) Rarity {
	return rate(streakTiers, length)
}

// SessionRarity returns the rarity for a given session accuracy (0.0-1.0).
func SessionRarity(accuracy float64) Rarity {
	return rate(sessionTiers, accuracy)
}

// MasteryRarity returns the rarity for mastering a card when known of total
// cards in its deck are at the know stage.
func MasteryRarity(known, total int) Rarity {
	if total <= 0 {
		return RarityCommon
	}
	return rate(masteryTiers, float64(known)/float64(total))
}
