package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/flashquest/internal/session"
	"github.com/abhisek/flashquest/internal/spacedrep"
	"github.com/abhisek/flashquest/internal/store"
)

// DeckStats summarizes a learner's progress through one deck.
type DeckStats struct {
	Deck    store.Deck
	Total   int
	New     int
	Due     int
	ByStage map[session.Stage]int
	// NextDue is the earliest due time among scheduled cards, if any.
	NextDue *time.Time
}

// DeckStats computes stage counts and due counts for a deck. deckRef may
// be a deck ID or name.
func (s *Service) DeckStats(ctx context.Context, learnerID, deckRef string) (*DeckStats, error) {
	deck, err := s.repos.Decks.GetDeck(ctx, deckRef)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, deckRef)
		}
		return nil, fmt.Errorf("deck stats: %w", err)
	}
	cards, err := s.sessionCards(ctx, learnerID, deck.ID)
	if err != nil {
		return nil, fmt.Errorf("deck stats: %w", err)
	}

	now := s.now()
	st := &DeckStats{
		Deck:    *deck,
		Total:   len(cards),
		ByStage: make(map[session.Stage]int, len(session.AllStages())),
	}
	for _, c := range cards {
		if c.New {
			st.New++
			continue
		}
		st.ByStage[c.Stage]++
		switch spacedrep.Status(c.DueAt, now) {
		case spacedrep.StatusDue:
			st.Due++
		case spacedrep.StatusScheduled:
			if st.NextDue == nil || c.DueAt.Before(*st.NextDue) {
				d := *c.DueAt
				st.NextDue = &d
			}
		}
	}
	return st, nil
}
