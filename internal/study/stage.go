package study

import "github.com/abhisek/flashquest/internal/session"

// KnowRepetitions is the repetition count at which a card is known. It is
// the first rung of the minimum-interval ladder that spans a full day.
const KnowRepetitions = 4

// NextStage returns the stage a card moves to after an answer.
func NextStage(failed bool, repetitions int) session.Stage {
	switch {
	case failed:
		return session.StageLearn
	case repetitions >= KnowRepetitions:
		return session.StageKnow
	default:
		return session.StageRecognize
	}
}
