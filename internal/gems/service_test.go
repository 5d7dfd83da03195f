package gems

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/flashquest/internal/store"
)

// mockRecorder implements Recorder for gems tests.
type mockRecorder struct {
	gemEvents []store.GemEventData
	counts    map[string]int
	total     int
	err       error
}

func (m *mockRecorder) AppendGemEvent(_ context.Context, data store.GemEventData) error {
	if m.err != nil {
		return m.err
	}
	m.gemEvents = append(m.gemEvents, data)
	return nil
}

func (m *mockRecorder) GemCounts(_ context.Context, _ string) (map[string]int, int, error) {
	return m.counts, m.total, m.err
}

func newTestService() (*Service, *mockRecorder) {
	repo := &mockRecorder{
		counts: map[string]int{"mastery": 3, "streak": 2},
		total:  5,
	}
	return NewService(repo), repo
}

func TestAwardMastery(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardMastery(ctx, "learner", "sess-1", "card-1", "hola", 3, 4)

	if award.Type != GemMastery {
		t.Errorf("Type = %q, want %q", award.Type, GemMastery)
	}
	if award.Rarity != RarityEpic {
		t.Errorf("Rarity = %q, want %q (3 of 4 known)", award.Rarity, RarityEpic)
	}
	if award.CardID != "card-1" {
		t.Errorf("CardID = %q, want card-1", award.CardID)
	}
	if award.AwardedAt.IsZero() {
		t.Error("AwardedAt not set")
	}
	if len(repo.gemEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.gemEvents))
	}
	if repo.gemEvents[0].GemType != "mastery" || repo.gemEvents[0].LearnerID != "learner" {
		t.Errorf("persisted = %+v", repo.gemEvents[0])
	}
}

func TestAwardStreak(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardStreak(ctx, "learner", "sess-4", 10)

	if award.Type != GemStreak {
		t.Errorf("Type = %q, want %q", award.Type, GemStreak)
	}
	if award.Rarity != RarityRare {
		t.Errorf("Rarity = %q, want %q", award.Rarity, RarityRare)
	}
	if award.Reason != "10 correct in a row!" {
		t.Errorf("Reason = %q", award.Reason)
	}
	if len(repo.gemEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.gemEvents))
	}
	if repo.gemEvents[0].SessionID != "sess-4" {
		t.Errorf("persisted session = %q, want sess-4", repo.gemEvents[0].SessionID)
	}
}

func TestAwardSession(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	award := svc.AwardSession(ctx, "learner", "sess-5", 0.85)

	if award.Type != GemSession {
		t.Errorf("Type = %q, want %q", award.Type, GemSession)
	}
	if award.Rarity != RarityEpic {
		t.Errorf("Rarity = %q, want %q (85%% accuracy)", award.Rarity, RarityEpic)
	}
	if award.Reason != "Session complete (85% accuracy)" {
		t.Errorf("Reason = %q", award.Reason)
	}
	if len(repo.gemEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.gemEvents))
	}
}

func TestCounts(t *testing.T) {
	svc, _ := newTestService()

	counts, total, err := svc.Counts(context.Background(), "learner")
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if counts[GemMastery] != 3 || counts[GemStreak] != 2 {
		t.Errorf("counts = %v", counts)
	}
}

func TestPersist_NilRecorder(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	// Should not panic with nil recorder.
	award := svc.AwardStreak(ctx, "learner", "sess-1", 5)
	if award == nil {
		t.Error("expected non-nil award even with nil recorder")
	}
	_, total, err := svc.Counts(ctx, "learner")
	if err != nil || total != 0 {
		t.Errorf("Counts = %d, %v; want 0, nil", total, err)
	}
}

func TestPersist_ErrorStillAwards(t *testing.T) {
	repo := &mockRecorder{err: errors.New("disk full")}
	svc := NewService(repo)

	award := svc.AwardSession(context.Background(), "learner", "sess-1", 1.0)
	if award == nil || award.Rarity != RarityLegendary {
		t.Errorf("award = %+v, want legendary session gem", award)
	}
	if _, _, err := svc.Counts(context.Background(), "learner"); err == nil {
		t.Error("expected Counts to surface the recorder error")
	}
}
