package session

import (
	"sort"
	"time"
)

// Limits bounds a session plan.
type Limits struct {
	// DailyNewLimit caps never-seen cards introduced per day.
	DailyNewLimit int
	// ReviewLimit caps previously seen cards considered for one session.
	ReviewLimit int
	// SessionCap caps the final session length.
	SessionCap int
	// DueOnly drops seen cards that are not yet due.
	DueOnly bool
}

// DefaultLimits returns the limits used when a learner has no settings.
func DefaultLimits() Limits {
	return Limits{
		DailyNewLimit: DefaultDailyNewLimit,
		ReviewLimit:   DefaultReviewSessionLimit,
		SessionCap:    DefaultSessionCap,
	}
}

// Planner builds session plans from a deck's cards.
type Planner struct {
	Limits Limits
}

// NewPlanner creates a Planner with the given limits.
func NewPlanner(limits Limits) *Planner {
	return &Planner{Limits: limits}
}

// BuildPlan picks the cards for one session. introducedToday is the number
// of new cards the learner already started today; it counts against
// DailyNewLimit. New cards are admitted in input order.
func (p *Planner) BuildPlan(cards []SessionCard, introducedToday int, now time.Time) *Plan {
	var fresh, seen []SessionCard
	for _, c := range cards {
		switch {
		case c.New:
			fresh = append(fresh, c)
		case p.Limits.DueOnly && c.DueAt != nil && now.Before(*c.DueAt):
			// Not due yet.
		default:
			seen = append(seen, c)
		}
	}

	admit := PickDailyNewLimit(len(fresh), p.Limits.DailyNewLimit-introducedToday)
	fresh = fresh[:admit]
	seen = SelectSessionCards(OrderCards(seen), p.Limits.ReviewLimit)

	pool := make([]SessionCard, 0, len(seen)+len(fresh))
	pool = append(pool, seen...)
	pool = append(pool, fresh...)

	plan := &Plan{Cards: SelectSessionCards(OrderCards(pool), p.Limits.SessionCap)}
	for _, c := range plan.Cards {
		if c.New {
			plan.NewCount++
		} else {
			plan.ReviewCount++
		}
	}
	return plan
}

// OrderCards returns a copy of cards sorted learn → recognize → know, and
// by due time within each stage. Cards with no due time go last in their
// stage. Ties keep their input order.
func OrderCards(cards []SessionCard) []SessionCard {
	ordered := make([]SessionCard, len(cards))
	copy(ordered, cards)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Stage.rank() != b.Stage.rank() {
			return a.Stage.rank() < b.Stage.rank()
		}
		switch {
		case a.DueAt == nil:
			return false
		case b.DueAt == nil:
			return true
		default:
			return a.DueAt.Before(*b.DueAt)
		}
	})
	return ordered
}
