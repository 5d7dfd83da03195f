package session

import "time"

// GameStats tracks answers within one game session.
type GameStats struct {
	Correct    int
	Incorrect  int
	Streak     int
	BestStreak int
	TotalTime  time.Duration
}

// Record adds an answer and returns the current streak.
func (gs *GameStats) Record(correct bool) int {
	if correct {
		gs.Correct++
		gs.Streak++
		if gs.Streak > gs.BestStreak {
			gs.BestStreak = gs.Streak
		}
	} else {
		gs.Incorrect++
		gs.Streak = 0
	}
	return gs.Streak
}

// Answered returns the number of answers recorded.
func (gs *GameStats) Answered() int {
	return gs.Correct + gs.Incorrect
}

// Accuracy returns Correct / Answered, or 0 before any answer.
func (gs *GameStats) Accuracy() float64 {
	if gs.Answered() == 0 {
		return 0
	}
	return float64(gs.Correct) / float64(gs.Answered())
}
