package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var progressColumns = []string{
	"learner_id", "card_id", "deck_id", "stage", "ease_factor", "repetitions",
	"interval_minutes", "last_grade", "last_response_ms", "response_ms_avg",
	"confidence_avg", "due_at", "updated_at",
}

// progressRepo implements ProgressRepo.
type progressRepo struct {
	s *Store
}

func (r *progressRepo) Get(ctx context.Context, learnerID, cardID string) (*Progress, error) {
	q := r.s.builder().Select(progressColumns...).
		From(entsql.Table(progressTable)).
		Where(entsql.And(
			entsql.EQ("learner_id", learnerID),
			entsql.EQ("card_id", cardID),
		))

	p, err := scanProgress(r.s.queryRow(ctx, q))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

func (r *progressRepo) Upsert(ctx context.Context, p *Progress) error {
	st := p.State
	var lastGrade sql.NullInt64
	if st.LastGrade != nil {
		lastGrade = sql.NullInt64{Int64: int64(*st.LastGrade), Valid: true}
	}
	var dueAt sql.NullTime
	if p.DueAt != nil {
		dueAt = sql.NullTime{Time: p.DueAt.UTC(), Valid: true}
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	insert := r.s.builder().Insert(progressTable).
		Columns(append([]string{"id"}, progressColumns...)...).
		Values(
			uuid.NewString(), p.LearnerID, p.CardID, p.DeckID, p.Stage, st.EaseFactor, st.Repetitions,
			st.IntervalMinutes, lastGrade, nullFloat(st.LastResponseMs), st.ResponseMsAvg,
			st.ConfidenceAvg, dueAt, updatedAt.UTC(),
		).
		OnConflict(
			entsql.ConflictColumns("learner_id", "card_id"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				// Keep the row's original id; everything else takes the new values.
				for _, c := range progressColumns[2:] {
					u.SetExcluded(c)
				}
			}),
		)
	if _, err := r.s.exec(ctx, insert); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

func (r *progressRepo) ListForDeck(ctx context.Context, learnerID, deckID string) ([]Progress, error) {
	q := r.s.builder().Select(progressColumns...).
		From(entsql.Table(progressTable)).
		Where(entsql.And(
			entsql.EQ("learner_id", learnerID),
			entsql.EQ("deck_id", deckID),
		))

	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	var out []Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, *p)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return out, nil
}

func (r *progressRepo) DeleteForLearner(ctx context.Context, learnerID string) (int64, error) {
	res, err := r.s.exec(ctx, r.s.builder().Delete(progressTable).Where(entsql.EQ("learner_id", learnerID)))
	if err != nil {
		return 0, fmt.Errorf("delete progress: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete progress: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanProgress reads one row selected with progressColumns.
func scanProgress(row scanner) (*Progress, error) {
	var (
		p              Progress
		lastGrade      sql.NullInt64
		lastResponseMs sql.NullFloat64
		dueAt          sql.NullTime
	)
	err := row.Scan(
		&p.LearnerID, &p.CardID, &p.DeckID, &p.Stage, &p.State.EaseFactor, &p.State.Repetitions,
		&p.State.IntervalMinutes, &lastGrade, &lastResponseMs, &p.State.ResponseMsAvg,
		&p.State.ConfidenceAvg, &dueAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastGrade.Valid {
		g := int(lastGrade.Int64)
		p.State.LastGrade = &g
	}
	if lastResponseMs.Valid {
		ms := lastResponseMs.Float64
		p.State.LastResponseMs = &ms
	}
	if dueAt.Valid {
		d := dueAt.Time
		p.DueAt = &d
	}
	return &p, nil
}

// settingsRepo implements SettingsRepo.
type settingsRepo struct {
	s *Store
}

func (r *settingsRepo) Get(ctx context.Context, learnerID string) (Settings, error) {
	q := r.s.builder().Select("daily_new_limit", "review_session_limit").
		From(entsql.Table(settingsTable)).
		Where(entsql.EQ("learner_id", learnerID))

	st := Settings{LearnerID: learnerID}
	err := r.s.queryRow(ctx, q).Scan(&st.DailyNewLimit, &st.ReviewSessionLimit)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultSettings(learnerID), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return st, nil
}

func (r *settingsRepo) Save(ctx context.Context, st Settings) error {
	insert := r.s.builder().Insert(settingsTable).
		Columns("learner_id", "daily_new_limit", "review_session_limit", "updated_at").
		Values(st.LearnerID, st.DailyNewLimit, st.ReviewSessionLimit, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("learner_id"),
			entsql.ResolveWithNewValues(),
		)
	if _, err := r.s.exec(ctx, insert); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
