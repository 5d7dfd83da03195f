package session

import "time"

// Stage is the coarse learning bucket a card sits in. It drives session
// ordering only; the scheduler never reads it.
type Stage string

const (
	StageLearn     Stage = "learn"
	StageRecognize Stage = "recognize"
	StageKnow      Stage = "know"
)

// AllStages returns the stages in session priority order.
func AllStages() []Stage {
	return []Stage{StageLearn, StageRecognize, StageKnow}
}

// ParseStage converts a stored stage string, defaulting to StageLearn.
func ParseStage(s string) Stage {
	switch Stage(s) {
	case StageRecognize:
		return StageRecognize
	case StageKnow:
		return StageKnow
	default:
		return StageLearn
	}
}

// rank returns the bucket position of a stage.
func (s Stage) rank() int {
	switch s {
	case StageRecognize:
		return 1
	case StageKnow:
		return 2
	default:
		return 0
	}
}

// SessionCard is a card as seen by the session planner.
type SessionCard struct {
	CardID     string
	Term       string
	Definition string
	Stage      Stage
	DueAt      *time.Time // nil when the card has never been scheduled
	New        bool       // true when the learner has no progress on the card
}

// Plan is the ordered list of cards for one study session.
type Plan struct {
	Cards       []SessionCard
	NewCount    int
	ReviewCount int
}

// Len returns the number of cards in the plan.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Cards)
}

// Default session limits, matching the learner settings defaults.
const (
	DefaultDailyNewLimit      = 20
	DefaultReviewSessionLimit = 100
	DefaultSessionCap         = 20
)
