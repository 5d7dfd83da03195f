package session

import (
	"sync"
	"time"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseActive SessionPhase = iota // Serving cards
	PhaseEnded                      // All cards answered or finished early
)

// SessionState tracks the runtime state of one study session.
type SessionState struct {
	// ID is the UUID for this session.
	ID string

	LearnerID string
	DeckID    string

	// Plan is the card list built at start.
	Plan *Plan

	// CurrentIndex is the index into Plan.Cards of the card being shown.
	CurrentIndex int

	// Stats accumulates correct/incorrect counts and streaks.
	Stats GameStats

	// Answered records which cards have been answered in this session.
	Answered map[string]bool

	StartTime time.Time
	Phase     SessionPhase

	mu sync.Mutex
}

// NewSessionState creates a session over plan, starting at now.
func NewSessionState(id, learnerID, deckID string, plan *Plan, now time.Time) *SessionState {
	if plan == nil {
		plan = &Plan{}
	}
	phase := PhaseActive
	if len(plan.Cards) == 0 {
		phase = PhaseEnded
	}
	return &SessionState{
		ID:        id,
		LearnerID: learnerID,
		DeckID:    deckID,
		Plan:      plan,
		Answered:  make(map[string]bool),
		StartTime: now,
		Phase:     phase,
	}
}

// Contains reports whether cardID is part of the session plan.
func (s *SessionState) Contains(cardID string) bool {
	for _, c := range s.Plan.Cards {
		if c.CardID == cardID {
			return true
		}
	}
	return false
}

// CurrentCard returns the card being shown, or nil once the session ended.
func (s *SessionState) CurrentCard() *SessionCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Phase == PhaseEnded || s.CurrentIndex >= len(s.Plan.Cards) {
		return nil
	}
	return &s.Plan.Cards[s.CurrentIndex]
}

// RecordAnswer records an answer for cardID and moves past it. It returns
// the streak after the answer and whether the answer counted. Only the first
// answer to a card counts toward the stats.
func (s *SessionState) RecordAnswer(cardID string, correct bool) (streak int, counted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Answered[cardID] {
		return s.Stats.Streak, false
	}
	s.Answered[cardID] = true
	streak = s.Stats.Record(correct)

	for s.CurrentIndex < len(s.Plan.Cards) && s.Answered[s.Plan.Cards[s.CurrentIndex].CardID] {
		s.CurrentIndex++
	}
	if s.CurrentIndex >= len(s.Plan.Cards) {
		s.Phase = PhaseEnded
	}
	return streak, true
}

// Finish ends the session and fixes its total time.
func (s *SessionState) Finish(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Phase = PhaseEnded
	s.Stats.TotalTime = now.Sub(s.StartTime)
}
