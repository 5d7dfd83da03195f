package spacedrep

import "time"

// ProgressState is the mastery record for one (learner, card) pair.
type ProgressState struct {
	EaseFactor      float64  `json:"ease_factor"`
	Repetitions     int      `json:"repetitions"`
	IntervalMinutes float64  `json:"interval_minutes"`
	LastGrade       *int     `json:"last_grade,omitempty"`
	LastResponseMs  *float64 `json:"last_response_ms,omitempty"`
	ResponseMsAvg   float64  `json:"response_ms_avg"`
	ConfidenceAvg   float64  `json:"confidence_avg"`
}

// DefaultProgressState returns the state assumed for a card that has never
// been reviewed. A nil *ProgressState passed to ScheduleNextReview means
// exactly this.
func DefaultProgressState() ProgressState {
	return ProgressState{EaseFactor: DefaultEaseFactor}
}

// ReviewOutcome is a single answer to a card. Grade runs from 0 (total
// failure) to 5 (effortless recall); anything below PassGrade is a failure.
// ResponseMs and Confidence are optional soft signals.
type ReviewOutcome struct {
	Grade      int      `json:"grade"`
	ResponseMs *float64 `json:"response_ms,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Failed reports whether the outcome counts as a failed recall.
func (o ReviewOutcome) Failed() bool {
	return o.Grade < PassGrade
}

// ScheduleResult is the updated state plus the next presentation time.
type ScheduleResult struct {
	ProgressState
	NextIntervalMinutes float64   `json:"next_interval_minutes"`
	NextDueAt           time.Time `json:"-"`
	NextDueAtISO        string    `json:"next_due_at"`
}

// ReviewStatus describes a card's scheduling status for display.
type ReviewStatus string

const (
	StatusNew       ReviewStatus = "new"
	StatusDue       ReviewStatus = "due"
	StatusScheduled ReviewStatus = "scheduled"
)

// IsDue returns true if a card is eligible for presentation at now.
// A nil due time means the card was never scheduled.
func IsDue(dueAt *time.Time, now time.Time) bool {
	if dueAt == nil {
		return true
	}
	return !now.Before(*dueAt)
}

// Status returns the review status for UI display.
func Status(dueAt *time.Time, now time.Time) ReviewStatus {
	switch {
	case dueAt == nil:
		return StatusNew
	case IsDue(dueAt, now):
		return StatusDue
	default:
		return StatusScheduled
	}
}

// MinutesUntilDue returns the whole minutes until the card is due, rounded
// up. Returns 0 if already due. Works on whole seconds so far-off due times
// do not saturate time.Duration.
func MinutesUntilDue(dueAt *time.Time, now time.Time) int64 {
	if IsDue(dueAt, now) {
		return 0
	}
	secs := dueAt.Unix() - now.Unix()
	if dueAt.Nanosecond() > now.Nanosecond() {
		secs++
	}
	m := secs / 60
	if secs%60 != 0 {
		m++
	}
	return m
}
