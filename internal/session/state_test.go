package session

import (
	"testing"
	"time"
)

func threeCardPlan() *Plan {
	return &Plan{
		Cards: []SessionCard{
			{CardID: "a", Stage: StageLearn, New: true},
			{CardID: "b", Stage: StageLearn},
			{CardID: "c", Stage: StageKnow},
		},
		NewCount:    1,
		ReviewCount: 2,
	}
}

func TestNewSessionState_EmptyPlanIsEnded(t *testing.T) {
	s := NewSessionState("s1", "learner", "deck", nil, now)
	if s.Phase != PhaseEnded {
		t.Errorf("Phase = %v, want PhaseEnded", s.Phase)
	}
	if s.CurrentCard() != nil {
		t.Error("expected no current card")
	}
}

func TestSessionState_RecordAnswer_Advances(t *testing.T) {
	s := NewSessionState("s1", "learner", "deck", threeCardPlan(), now)

	if got := s.CurrentCard(); got == nil || got.CardID != "a" {
		t.Fatalf("CurrentCard = %v, want a", got)
	}

	s.RecordAnswer("a", true)
	if got := s.CurrentCard(); got == nil || got.CardID != "b" {
		t.Fatalf("CurrentCard = %v, want b", got)
	}

	// Answering out of order skips over answered cards once reached.
	s.RecordAnswer("c", true)
	if got := s.CurrentCard(); got == nil || got.CardID != "b" {
		t.Fatalf("CurrentCard = %v, want b", got)
	}

	streak, counted := s.RecordAnswer("b", true)
	if !counted {
		t.Error("expected first answer to b to count")
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}
	if s.Phase != PhaseEnded {
		t.Errorf("Phase = %v, want PhaseEnded", s.Phase)
	}
}

func TestSessionState_RecordAnswer_DuplicateCountsOnce(t *testing.T) {
	s := NewSessionState("s1", "learner", "deck", threeCardPlan(), now)

	s.RecordAnswer("a", false)
	if _, counted := s.RecordAnswer("a", true); counted {
		t.Error("expected repeat answer not to count")
	}

	if s.Stats.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", s.Stats.Answered())
	}
	if s.Stats.Incorrect != 1 {
		t.Errorf("Incorrect = %d, want 1", s.Stats.Incorrect)
	}
}

func TestSessionState_Contains(t *testing.T) {
	s := NewSessionState("s1", "learner", "deck", threeCardPlan(), now)
	if !s.Contains("b") {
		t.Error("expected plan to contain b")
	}
	if s.Contains("zzz") {
		t.Error("expected plan not to contain zzz")
	}
}

func TestBuildSummary(t *testing.T) {
	s := NewSessionState("s1", "learner", "deck", threeCardPlan(), now)
	s.RecordAnswer("a", true)
	s.RecordAnswer("b", false)
	s.Finish(now.Add(95 * time.Second))

	sum := BuildSummary(s)

	if sum.SessionID != "s1" {
		t.Errorf("SessionID = %q, want s1", sum.SessionID)
	}
	if sum.TotalCards != 3 || sum.Answered != 2 {
		t.Errorf("TotalCards/Answered = %d/%d, want 3/2", sum.TotalCards, sum.Answered)
	}
	if sum.Accuracy != 0.5 {
		t.Errorf("Accuracy = %f, want 0.5", sum.Accuracy)
	}
	if sum.Duration != 95*time.Second {
		t.Errorf("Duration = %v, want 95s", sum.Duration)
	}
	if sum.NewCards != 1 || sum.Reviews != 2 {
		t.Errorf("NewCards/Reviews = %d/%d, want 1/2", sum.NewCards, sum.Reviews)
	}
	if sum.BestStreak != 1 {
		t.Errorf("BestStreak = %d, want 1", sum.BestStreak)
	}
}
