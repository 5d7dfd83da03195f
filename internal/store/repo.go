package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/flashquest/internal/spacedrep"
)

// ErrNotFound is returned when a deck or card lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	LearnerID string    // restrict to one learner ("" = all)
	From      time.Time // timestamp >= From
}

// Deck is a named collection of cards.
type Deck struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Card is a single term/definition pair in a deck.
type Card struct {
	ID         string
	DeckID     string
	Term       string
	Definition string
	Position   int
	CreatedAt  time.Time
}

// Progress is a learner's scheduling state for one card.
type Progress struct {
	LearnerID string
	CardID    string
	DeckID    string
	Stage     string
	State     spacedrep.ProgressState
	DueAt     *time.Time
	UpdatedAt time.Time
}

// Settings holds a learner's session limits.
type Settings struct {
	LearnerID          string
	DailyNewLimit      int
	ReviewSessionLimit int
}

// DefaultSettings returns the limits used when a learner has saved none.
func DefaultSettings(learnerID string) Settings {
	return Settings{
		LearnerID:          learnerID,
		DailyNewLimit:      20,
		ReviewSessionLimit: 100,
	}
}

// ReviewEventData captures one scheduled answer.
type ReviewEventData struct {
	SessionID       string
	LearnerID       string
	CardID          string
	DeckID          string
	Grade           int
	Correct         bool
	FirstReview     bool
	ResponseMs      *float64
	Confidence      *float64
	EaseFactor      float64
	Repetitions     int
	IntervalMinutes float64
	DueAt           time.Time
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	LearnerID      string
	DeckID         string
	Action         string // "start" or "end"
	CardsPlanned   int
	NewCards       int
	CardsAnswered  int
	CorrectAnswers int
	BestStreak     int
	DurationSecs   int
}

// SessionSummaryRecord is a finished session as read back from the log.
type SessionSummaryRecord struct {
	SessionID      string
	LearnerID      string
	DeckID         string
	Timestamp      time.Time
	CardsAnswered  int
	CorrectAnswers int
	BestStreak     int
	DurationSecs   int
	GemCount       int
}

// GemEventData captures an awarded gem.
type GemEventData struct {
	LearnerID string
	SessionID string
	GemType   string
	Rarity    string
	Reason    string
}

// GemEventRecord is a gem event read back from the log.
type GemEventRecord struct {
	GemEventData
	Sequence  int64
	Timestamp time.Time
}

// DeckRepo manages decks.
type DeckRepo interface {
	CreateDeck(ctx context.Context, name, description string) (*Deck, error)
	// GetDeck looks a deck up by ID or by name.
	GetDeck(ctx context.Context, idOrName string) (*Deck, error)
	ListDecks(ctx context.Context) ([]Deck, error)
	// UpdateDeck renames a deck and replaces its description.
	UpdateDeck(ctx context.Context, id, name, description string) error
	// DeleteDeck removes the deck along with its cards and progress.
	DeleteDeck(ctx context.Context, id string) error
}

// CardRepo manages cards within decks.
type CardRepo interface {
	AddCard(ctx context.Context, deckID, term, definition string) (*Card, error)
	GetCard(ctx context.Context, id string) (*Card, error)
	// ListCards returns a deck's cards in insertion order.
	ListCards(ctx context.Context, deckID string) ([]Card, error)
	DeleteCard(ctx context.Context, id string) error
}

// ProgressRepo manages per-learner card progress.
type ProgressRepo interface {
	// Get returns nil, nil when the learner has never reviewed the card.
	Get(ctx context.Context, learnerID, cardID string) (*Progress, error)
	// Upsert writes the row keyed on (learner, card).
	Upsert(ctx context.Context, p *Progress) error
	ListForDeck(ctx context.Context, learnerID, deckID string) ([]Progress, error)
	// DeleteForLearner removes all of a learner's progress and returns the row count.
	DeleteForLearner(ctx context.Context, learnerID string) (int64, error)
}

// SettingsRepo manages learner settings.
type SettingsRepo interface {
	// Get returns DefaultSettings when nothing has been saved.
	Get(ctx context.Context, learnerID string) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendGemEvent(ctx context.Context, data GemEventData) error

	// CountNewCardsSince counts first reviews by the learner at or after since.
	CountNewCardsSince(ctx context.Context, learnerID string, since time.Time) (int, error)

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryGemEvents returns gem events, newest first.
	QueryGemEvents(ctx context.Context, opts QueryOpts) ([]GemEventRecord, error)

	// GemCounts returns gem counts by type and the total.
	GemCounts(ctx context.Context, learnerID string) (map[string]int, int, error)
}
