package session

import "time"

// Summary holds the data shown when a game ends.
type Summary struct {
	SessionID  string
	Duration   time.Duration
	TotalCards int
	Answered   int
	Correct    int
	Incorrect  int
	BestStreak int
	Accuracy   float64
	NewCards   int
	Reviews    int
}

// BuildSummary creates a Summary from the session state.
func BuildSummary(state *SessionState) *Summary {
	state.mu.Lock()
	defer state.mu.Unlock()

	return &Summary{
		SessionID:  state.ID,
		Duration:   state.Stats.TotalTime,
		TotalCards: len(state.Plan.Cards),
		Answered:   state.Stats.Answered(),
		Correct:    state.Stats.Correct,
		Incorrect:  state.Stats.Incorrect,
		BestStreak: state.Stats.BestStreak,
		Accuracy:   state.Stats.Accuracy(),
		NewCards:   state.Plan.NewCount,
		Reviews:    state.Plan.ReviewCount,
	}
}
