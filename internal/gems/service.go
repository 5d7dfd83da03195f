package gems

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/abhisek/flashquest/internal/store"
)

// Recorder is the slice of store.EventRepo the gem service needs.
type Recorder interface {
	AppendGemEvent(ctx context.Context, data store.GemEventData) error
	GemCounts(ctx context.Context, learnerID string) (map[string]int, int, error)
}

// Service awards gems and records them in the event log.
type Service struct {
	events Recorder
	now    func() time.Time
}

// NewService creates a gem service. A nil recorder keeps awards in memory only.
func NewService(events Recorder) *Service {
	return &Service{events: events, now: time.Now}
}

// AwardMastery awards a gem for a card reaching the know stage. known and
// total describe the deck after the card was mastered.
func (s *Service) AwardMastery(ctx context.Context, learnerID, sessionID, cardID, term string, known, total int) *GemAward {
	return s.award(ctx, &GemAward{
		Type:      GemMastery,
		Rarity:    MasteryRarity(known, total),
		LearnerID: learnerID,
		SessionID: sessionID,
		CardID:    cardID,
		Reason:    fmt.Sprintf("Mastered %q", term),
	})
}

// AwardStreak awards a streak gem for consecutive correct answers.
func (s *Service) AwardStreak(ctx context.Context, learnerID, sessionID string, streakLength int) *GemAward {
	return s.award(ctx, &GemAward{
		Type:      GemStreak,
		Rarity:    StreakRarity(streakLength),
		LearnerID: learnerID,
		SessionID: sessionID,
		Reason:    fmt.Sprintf("%d correct in a row!", streakLength),
	})
}

// AwardSession awards a session-completion gem.
func (s *Service) AwardSession(ctx context.Context, learnerID, sessionID string, accuracy float64) *GemAward {
	return s.award(ctx, &GemAward{
		Type:      GemSession,
		Rarity:    SessionRarity(accuracy),
		LearnerID: learnerID,
		SessionID: sessionID,
		Reason:    fmt.Sprintf("Session complete (%.0f%% accuracy)", accuracy*100),
	})
}

// Counts returns the learner's gem counts by type and the total.
func (s *Service) Counts(ctx context.Context, learnerID string) (map[GemType]int, int, error) {
	if s.events == nil {
		return map[GemType]int{}, 0, nil
	}
	raw, total, err := s.events.GemCounts(ctx, learnerID)
	if err != nil {
		return nil, 0, fmt.Errorf("gem counts: %w", err)
	}
	counts := make(map[GemType]int, len(raw))
	for k, v := range raw {
		counts[GemType(k)] = v
	}
	return counts, total, nil
}

func (s *Service) award(ctx context.Context, a *GemAward) *GemAward {
	a.AwardedAt = s.now()
	s.persist(ctx, a)
	return a
}

// persist is best effort: a lost gem must not fail the answer that earned it.
func (s *Service) persist(ctx context.Context, a *GemAward) {
	if s.events == nil {
		return
	}
	err := s.events.AppendGemEvent(ctx, store.GemEventData{
		LearnerID: a.LearnerID,
		SessionID: a.SessionID,
		GemType:   string(a.Type),
		Rarity:    string(a.Rarity),
		Reason:    a.Reason,
	})
	if err != nil {
		log.Printf("gems: persist %s gem: %v", a.Type, err)
	}
}
