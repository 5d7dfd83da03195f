package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Each event type lives in its own table, so per-table row
// IDs can't establish cross-type ordering. This shared counter assigns a
// single increasing sequence to every event regardless of type, enabling:
//
//   - Cross-type ordering (was the gem awarded before or after the review?)
//   - Append-only guarantees (events are never reordered)
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	s  *Store
}

// newSequenceCounter seeds the single counter row if it is missing.
func newSequenceCounter(ctx context.Context, s *Store) (*sequenceCounter, error) {
	seed := s.builder().Insert(globalSequenceTable).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.ConflictColumns("id"), entsql.DoNothing())
	if _, err := s.exec(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{s: s}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.s.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo.
type eventRepo struct {
	s *Store
}

// appendEvent inserts one event row with a fresh ID, sequence and timestamp.
func (r *eventRepo) appendEvent(ctx context.Context, table string, columns []string, values []any) error {
	seqNum, err := r.s.seq.Next(ctx)
	if err != nil {
		return err
	}

	insert := r.s.builder().Insert(table).
		Columns(append([]string{"id", "sequence", "timestamp"}, columns...)...).
		Values(append([]any{uuid.NewString(), seqNum, time.Now().UTC()}, values...)...)
	if _, err := r.s.exec(ctx, insert); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	return nil
}

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	return r.appendEvent(ctx, reviewEventsTable,
		[]string{
			"session_id", "learner_id", "card_id", "deck_id", "grade", "correct",
			"first_review", "response_ms", "confidence", "ease_factor",
			"repetitions", "interval_minutes", "due_at",
		},
		[]any{
			data.SessionID, data.LearnerID, data.CardID, data.DeckID, data.Grade, data.Correct,
			data.FirstReview, nullFloat(data.ResponseMs), nullFloat(data.Confidence), data.EaseFactor,
			data.Repetitions, data.IntervalMinutes, data.DueAt.UTC(),
		})
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	return r.appendEvent(ctx, sessionEventsTable,
		[]string{
			"session_id", "learner_id", "deck_id", "action", "cards_planned", "new_cards",
			"cards_answered", "correct_answers", "best_streak", "duration_secs",
		},
		[]any{
			data.SessionID, data.LearnerID, data.DeckID, data.Action, data.CardsPlanned, data.NewCards,
			data.CardsAnswered, data.CorrectAnswers, data.BestStreak, data.DurationSecs,
		})
}

func (r *eventRepo) AppendGemEvent(ctx context.Context, data GemEventData) error {
	return r.appendEvent(ctx, gemEventsTable,
		[]string{"learner_id", "session_id", "gem_type", "rarity", "reason"},
		[]any{data.LearnerID, data.SessionID, data.GemType, data.Rarity, data.Reason})
}

func (r *eventRepo) CountNewCardsSince(ctx context.Context, learnerID string, since time.Time) (int, error) {
	q := r.s.builder().Select(entsql.Count("*")).
		From(entsql.Table(reviewEventsTable)).
		Where(entsql.And(
			entsql.EQ("learner_id", learnerID),
			entsql.EQ("first_review", true),
			entsql.GTE("timestamp", since.UTC()),
		))

	var n int
	if err := r.s.queryRow(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count new cards: %w", err)
	}
	return n, nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	q := r.s.builder().
		Select("session_id", "learner_id", "deck_id", "timestamp",
			"cards_answered", "correct_answers", "best_streak", "duration_secs").
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.EQ("action", "end")).
		OrderBy(entsql.Desc("sequence"))
	if opts.LearnerID != "" {
		q.Where(entsql.EQ("learner_id", opts.LearnerID))
	}
	if !opts.From.IsZero() {
		q.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if opts.Limit > 0 {
		q.Limit(opts.Limit)
	}

	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	var records []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		if err := rows.Scan(&rec.SessionID, &rec.LearnerID, &rec.DeckID, &rec.Timestamp,
			&rec.CardsAnswered, &rec.CorrectAnswers, &rec.BestStreak, &rec.DurationSecs); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		records = append(records, rec)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	// Count gems for each session once the rows are released.
	for i := range records {
		cq := r.s.builder().Select(entsql.Count("*")).
			From(entsql.Table(gemEventsTable)).
			Where(entsql.EQ("session_id", records[i].SessionID))
		if err := r.s.queryRow(ctx, cq).Scan(&records[i].GemCount); err != nil {
			return nil, fmt.Errorf("count session gems: %w", err)
		}
	}
	return records, nil
}

func (r *eventRepo) QueryGemEvents(ctx context.Context, opts QueryOpts) ([]GemEventRecord, error) {
	q := r.s.builder().
		Select("learner_id", "session_id", "gem_type", "rarity", "reason", "sequence", "timestamp").
		From(entsql.Table(gemEventsTable)).
		OrderBy(entsql.Desc("sequence"))
	if opts.LearnerID != "" {
		q.Where(entsql.EQ("learner_id", opts.LearnerID))
	}
	if !opts.From.IsZero() {
		q.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if opts.Limit > 0 {
		q.Limit(opts.Limit)
	}

	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query gem events: %w", err)
	}
	var records []GemEventRecord
	for rows.Next() {
		var rec GemEventRecord
		if err := rows.Scan(&rec.LearnerID, &rec.SessionID, &rec.GemType, &rec.Rarity,
			&rec.Reason, &rec.Sequence, &rec.Timestamp); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan gem event: %w", err)
		}
		records = append(records, rec)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("query gem events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) GemCounts(ctx context.Context, learnerID string) (map[string]int, int, error) {
	q := r.s.builder().
		Select("gem_type", entsql.Count("*")).
		From(entsql.Table(gemEventsTable)).
		GroupBy("gem_type")
	if learnerID != "" {
		q.Where(entsql.EQ("learner_id", learnerID))
	}

	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("query gem counts: %w", err)
	}
	byType := make(map[string]int)
	total := 0
	for rows.Next() {
		var (
			gemType string
			n       int
		)
		if err := rows.Scan(&gemType, &n); err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("scan gem count: %w", err)
		}
		byType[gemType] = n
		total += n
	}
	if err := closeRows(rows); err != nil {
		return nil, 0, fmt.Errorf("query gem counts: %w", err)
	}
	return byType, total, nil
}

// closeRows closes rows and reports any iteration error.
func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
