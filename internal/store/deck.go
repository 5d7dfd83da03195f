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

// deckRepo implements DeckRepo.
type deckRepo struct {
	s *Store
}

func (r *deckRepo) CreateDeck(ctx context.Context, name, description string) (*Deck, error) {
	d := &Deck{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	insert := r.s.builder().Insert(decksTable).
		Columns("id", "name", "description", "created_at").
		Values(d.ID, d.Name, d.Description, d.CreatedAt)
	if _, err := r.s.exec(ctx, insert); err != nil {
		return nil, fmt.Errorf("create deck %q: %w", name, err)
	}
	return d, nil
}

func (r *deckRepo) GetDeck(ctx context.Context, idOrName string) (*Deck, error) {
	q := r.s.builder().
		Select("id", "name", "description", "created_at").
		From(entsql.Table(decksTable)).
		Where(entsql.Or(
			entsql.EQ("id", idOrName),
			entsql.EQ("name", idOrName),
		)).
		Limit(1)

	var d Deck
	err := r.s.queryRow(ctx, q).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("deck %q: %w", idOrName, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return &d, nil
}

func (r *deckRepo) ListDecks(ctx context.Context) ([]Deck, error) {
	q := r.s.builder().
		Select("id", "name", "description", "created_at").
		From(entsql.Table(decksTable)).
		OrderBy("name")

	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	var decks []Deck
	for rows.Next() {
		var d Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, d)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

func (r *deckRepo) UpdateDeck(ctx context.Context, id, name, description string) error {
	update := r.s.builder().Update(decksTable).
		Set("name", name).
		Set("description", description).
		Where(entsql.EQ("id", id))
	res, err := r.s.exec(ctx, update)
	if err != nil {
		return fmt.Errorf("update deck %q: %w", name, err)
	}
	return requireAffected(res, "deck", id)
}

func (r *deckRepo) DeleteDeck(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, r.s.builder().Delete(decksTable).Where(entsql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	return requireAffected(res, "deck", id)
}

// cardRepo implements CardRepo.
type cardRepo struct {
	s *Store
}

func (r *cardRepo) AddCard(ctx context.Context, deckID, term, definition string) (*Card, error) {
	// Position is the next slot in the deck so ListCards keeps insertion order.
	pq := r.s.builder().Select(entsql.Count("*")).
		From(entsql.Table(cardsTable)).
		Where(entsql.EQ("deck_id", deckID))
	var pos int
	if err := r.s.queryRow(ctx, pq).Scan(&pos); err != nil {
		return nil, fmt.Errorf("next card position: %w", err)
	}

	c := &Card{
		ID:         uuid.NewString(),
		DeckID:     deckID,
		Term:       term,
		Definition: definition,
		Position:   pos,
		CreatedAt:  time.Now().UTC(),
	}
	insert := r.s.builder().Insert(cardsTable).
		Columns("id", "deck_id", "term", "definition", "position", "created_at").
		Values(c.ID, c.DeckID, c.Term, c.Definition, c.Position, c.CreatedAt)
	if _, err := r.s.exec(ctx, insert); err != nil {
		return nil, fmt.Errorf("add card: %w", err)
	}
	return c, nil
}

func (r *cardRepo) GetCard(ctx context.Context, id string) (*Card, error) {
	q := r.s.builder().
		Select("id", "deck_id", "term", "definition", "position", "created_at").
		From(entsql.Table(cardsTable)).
		Where(entsql.EQ("id", id))

	var c Card
	err := r.s.queryRow(ctx, q).Scan(&c.ID, &c.DeckID, &c.Term, &c.Definition, &c.Position, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return &c, nil
}

func (r *cardRepo) ListCards(ctx context.Context, deckID string) ([]Card, error) {
	q := r.s.builder().
		Select("id", "deck_id", "term", "definition", "position", "created_at").
		From(entsql.Table(cardsTable)).
		Where(entsql.EQ("deck_id", deckID)).
		OrderBy("position", "created_at")

	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	var cards []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Term, &c.Definition, &c.Position, &c.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepo) DeleteCard(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, r.s.builder().Delete(cardsTable).Where(entsql.EQ("id", id)))
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return requireAffected(res, "card", id)
}

// requireAffected maps a zero-row delete to ErrNotFound.
func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %q: rows affected: %w", kind, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}
	return nil
}
