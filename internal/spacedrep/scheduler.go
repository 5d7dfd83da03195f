package spacedrep

import (
	"math"
	"time"
)

// ScheduleNextReview applies one review outcome to a card's prior state and
// returns the new state with its next due time. A nil prior means the card
// has never been reviewed (see DefaultProgressState).
//
// The function is pure: it reads nothing but its arguments and is safe for
// concurrent use. Inputs are trusted; grade and confidence are used at face
// value even when out of range.
func ScheduleNextReview(now time.Time, prior *ProgressState, outcome ReviewOutcome) ScheduleResult {
	state := DefaultProgressState()
	if prior != nil {
		state = *prior
	}

	if outcome.ResponseMs != nil {
		state.ResponseMsAvg = math.Round(rolling(state.ResponseMsAvg, *outcome.ResponseMs))
	}
	if outcome.Confidence != nil {
		state.ConfidenceAvg = rolling(state.ConfidenceAvg, *outcome.Confidence)
	}

	ef := state.EaseFactor

	if outcome.Failed() {
		state.Repetitions = 0
		state.IntervalMinutes = FailureInterval(state.IntervalMinutes)
	} else {
		state.Repetitions++
		switch state.Repetitions {
		case 1:
			state.IntervalMinutes = FirstIntervalMinutes
		case 2:
			state.IntervalMinutes = SecondIntervalMinutes
		default:
			// Growth compounds on the ease factor held before this review.
			state.IntervalMinutes = math.Round(state.IntervalMinutes * ef)
		}
	}

	ef += SM2EaseDelta(outcome.Grade)
	if outcome.ResponseMs != nil {
		ef -= LatencyPenalty(*outcome.ResponseMs)
	}
	if outcome.Confidence != nil {
		ef += ClampConfidenceReward(*outcome.Confidence)
	}
	state.EaseFactor = ClampEaseFactor(ef)

	if floor, ok := MinIntervalFor(state.Repetitions); ok {
		state.IntervalMinutes = math.Max(state.IntervalMinutes, floor)
	}

	grade := outcome.Grade
	state.LastGrade = &grade
	if outcome.ResponseMs != nil {
		ms := *outcome.ResponseMs
		state.LastResponseMs = &ms
	}

	due := DueAt(now, state.IntervalMinutes)
	return ScheduleResult{
		ProgressState:       state,
		NextIntervalMinutes: state.IntervalMinutes,
		NextDueAt:           due,
		NextDueAtISO:        due.UTC().Format(time.RFC3339Nano),
	}
}

// DueAt returns now plus minutes. Whole days go on the UTC calendar and
// only the remainder through time.Duration, so intervals past Duration's
// ~292 year range still land in the future. Intervals beyond MaxDueMinutes
// saturate there.
func DueAt(now time.Time, minutes float64) time.Time {
	if minutes > MaxDueMinutes {
		minutes = MaxDueMinutes
	}
	days := math.Floor(minutes / MinutesPerDay)
	rest := minutes - days*MinutesPerDay
	return now.UTC().
		AddDate(0, 0, int(days)).
		Add(time.Duration(rest * float64(time.Minute))).
		In(now.Location())
}
