package study

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/flashquest/internal/gems"
	"github.com/abhisek/flashquest/internal/session"
	"github.com/abhisek/flashquest/internal/spacedrep"
	"github.com/abhisek/flashquest/internal/store"
)

// Repos bundles the store repositories the service reads and writes.
type Repos struct {
	Decks    store.DeckRepo
	Cards    store.CardRepo
	Progress store.ProgressRepo
	Settings store.SettingsRepo
	Events   store.EventRepo
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithGems enables gem awards.
func WithGems(g *gems.Service) Option {
	return func(s *Service) { s.gems = g }
}

// WithSessionCap sets the maximum session length.
func WithSessionCap(n int) Option {
	return func(s *Service) { s.sessionCap = n }
}

// WithDailyNewLimit overrides the learner's saved daily new-card limit.
// A negative n keeps the saved value.
func WithDailyNewLimit(n int) Option {
	return func(s *Service) { s.dailyNewOverride = n }
}

// WithDueOnly leaves seen cards out of plans until they are due.
func WithDueOnly(on bool) Option {
	return func(s *Service) { s.dueOnly = on }
}

// Service runs study sessions: it plans them, schedules answers and
// records the results.
type Service struct {
	repos Repos
	gems  *gems.Service
	now   func() time.Time

	sessionCap       int
	dailyNewOverride int
	dueOnly          bool

	locks *keyedMutex

	mu       sync.Mutex
	sessions map[string]*session.SessionState
}

// NewService creates a study service over the given repositories.
func NewService(repos Repos, opts ...Option) *Service {
	s := &Service{
		repos:            repos,
		now:              time.Now,
		sessionCap:       session.DefaultSessionCap,
		dailyNewOverride: -1,
		locks:            newKeyedMutex(),
		sessions:         make(map[string]*session.SessionState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session is a planned study session.
type Session struct {
	ID              string
	LearnerID       string
	Deck            store.Deck
	Plan            *session.Plan
	Limits          session.Limits
	IntroducedToday int
	StartedAt       time.Time
}

// Answer is one learner response to a card.
type Answer struct {
	// SessionID ties the answer to a running session. Empty for a
	// stand-alone review.
	SessionID  string
	LearnerID  string
	CardID     string
	Grade      int
	ResponseMs *float64
	Confidence *float64
}

// GradedAnswer builds an Answer from a right/wrong response, deriving the
// grade and confidence the way the game does.
func GradedAnswer(sessionID, learnerID, cardID string, correct bool, responseMs, confidence *float64) Answer {
	grade, conf := spacedrep.GradeFromAnswer(correct, confidence)
	return Answer{
		SessionID:  sessionID,
		LearnerID:  learnerID,
		CardID:     cardID,
		Grade:      grade,
		ResponseMs: responseMs,
		Confidence: &conf,
	}
}

// AnswerResult reports what an answer changed.
type AnswerResult struct {
	Card     store.Card
	Correct  bool
	Previous *spacedrep.ProgressState // nil on a card's first review
	Schedule spacedrep.ScheduleResult
	Stage    session.Stage
	// Streak is the session streak after the answer (0 outside a session).
	Streak       int
	Gems         []gems.GemAward
	SessionEnded bool
}

// Validate checks the answer's ranges. The scheduler itself trusts its
// input, so this is the only gate.
func (a Answer) Validate() error {
	if a.Grade < 0 || a.Grade > 5 {
		return fmt.Errorf("%w: got %d", ErrInvalidGrade, a.Grade)
	}
	if c := a.Confidence; c != nil && (math.IsNaN(*c) || *c < 0 || *c > 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidConfidence, *c)
	}
	if r := a.ResponseMs; r != nil && (math.IsNaN(*r) || math.IsInf(*r, 0)) {
		return fmt.Errorf("%w: got %v", ErrInvalidResponseTime, *r)
	}
	return nil
}

// PlanSession computes the session a learner would get right now without
// starting it. The returned Session has no ID.
func (s *Service) PlanSession(ctx context.Context, learnerID, deckRef string) (*Session, error) {
	deck, err := s.repos.Decks.GetDeck(ctx, deckRef)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, deckRef)
		}
		return nil, fmt.Errorf("plan session: %w", err)
	}

	candidates, err := s.sessionCards(ctx, learnerID, deck.ID)
	if err != nil {
		return nil, fmt.Errorf("plan session: %w", err)
	}

	now := s.now()
	introduced, err := s.repos.Events.CountNewCardsSince(ctx, learnerID, startOfDay(now))
	if err != nil {
		return nil, fmt.Errorf("plan session: %w", err)
	}

	limits, err := s.limitsFor(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("plan session: %w", err)
	}

	return &Session{
		LearnerID:       learnerID,
		Deck:            *deck,
		Plan:            session.NewPlanner(limits).BuildPlan(candidates, introduced, now),
		Limits:          limits,
		IntroducedToday: introduced,
		StartedAt:       now,
	}, nil
}

// BuildSession plans a session over a deck for a learner and starts it.
// deckRef may be a deck ID or name.
func (s *Service) BuildSession(ctx context.Context, learnerID, deckRef string) (*Session, error) {
	sess, err := s.PlanSession(ctx, learnerID, deckRef)
	if err != nil {
		return nil, err
	}

	sess.ID = uuid.NewString()
	state := session.NewSessionState(sess.ID, learnerID, sess.Deck.ID, sess.Plan, sess.StartedAt)

	err = s.repos.Events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    sess.ID,
		LearnerID:    learnerID,
		DeckID:       sess.Deck.ID,
		Action:       "start",
		CardsPlanned: sess.Plan.Len(),
		NewCards:     sess.Plan.NewCount,
	})
	if err != nil {
		return nil, fmt.Errorf("build session: %w", err)
	}

	s.mu.Lock()
	s.sessions[sess.ID] = state
	s.mu.Unlock()

	return sess, nil
}

// sessionCards joins a deck's cards with the learner's progress.
func (s *Service) sessionCards(ctx context.Context, learnerID, deckID string) ([]session.SessionCard, error) {
	cards, err := s.repos.Cards.ListCards(ctx, deckID)
	if err != nil {
		return nil, err
	}
	progress, err := s.repos.Progress.ListForDeck(ctx, learnerID, deckID)
	if err != nil {
		return nil, err
	}
	byCard := make(map[string]store.Progress, len(progress))
	for _, p := range progress {
		byCard[p.CardID] = p
	}

	out := make([]session.SessionCard, 0, len(cards))
	for _, c := range cards {
		sc := session.SessionCard{
			CardID:     c.ID,
			Term:       c.Term,
			Definition: c.Definition,
			Stage:      session.StageLearn,
			New:        true,
		}
		if p, ok := byCard[c.ID]; ok {
			sc.Stage = session.ParseStage(p.Stage)
			sc.DueAt = p.DueAt
			sc.New = false
		}
		out = append(out, sc)
	}
	return out, nil
}

func (s *Service) limitsFor(ctx context.Context, learnerID string) (session.Limits, error) {
	settings, err := s.repos.Settings.Get(ctx, learnerID)
	if err != nil {
		return session.Limits{}, err
	}
	limits := session.Limits{
		DailyNewLimit: settings.DailyNewLimit,
		ReviewLimit:   settings.ReviewSessionLimit,
		SessionCap:    s.sessionCap,
		DueOnly:       s.dueOnly,
	}
	if s.dailyNewOverride >= 0 {
		limits.DailyNewLimit = s.dailyNewOverride
	}
	return limits, nil
}

// SubmitAnswer schedules the answered card and records the review.
// Answers for the same learner and card are applied one at a time.
func (s *Service) SubmitAnswer(ctx context.Context, a Answer) (*AnswerResult, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	var state *session.SessionState
	if a.SessionID != "" {
		state = s.lookupSession(a.SessionID)
		if state == nil {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, a.SessionID)
		}
		if !state.Contains(a.CardID) {
			return nil, fmt.Errorf("%w: %s", ErrCardNotInSession, a.CardID)
		}
	}

	card, err := s.repos.Cards.GetCard(ctx, a.CardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCardNotFound, a.CardID)
		}
		return nil, fmt.Errorf("submit answer: %w", err)
	}

	res, prior, err := s.applyReview(ctx, a, card)
	if err != nil {
		return nil, err
	}

	if state != nil {
		streak, counted := state.RecordAnswer(card.ID, res.Correct)
		res.Streak = streak
		res.SessionEnded = state.CurrentCard() == nil
		if counted && s.gems != nil && gems.IsStreakMilestone(streak) {
			g := s.gems.AwardStreak(ctx, a.LearnerID, a.SessionID, streak)
			res.Gems = append(res.Gems, *g)
		}
	}

	if res.Stage == session.StageKnow && (prior == nil || session.ParseStage(prior.Stage) != session.StageKnow) {
		if g := s.awardMastery(ctx, a, card); g != nil {
			res.Gems = append(res.Gems, *g)
		}
	}
	return res, nil
}

// applyReview runs the scheduler and persists the new progress row and the
// review event under the (learner, card) lock.
func (s *Service) applyReview(ctx context.Context, a Answer, card *store.Card) (*AnswerResult, *store.Progress, error) {
	unlock := s.locks.Lock(progressKey(a.LearnerID, card.ID))
	defer unlock()

	prior, err := s.repos.Progress.Get(ctx, a.LearnerID, card.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("submit answer: %w", err)
	}
	var priorState *spacedrep.ProgressState
	if prior != nil {
		st := prior.State
		priorState = &st
	}

	outcome := spacedrep.ReviewOutcome{
		Grade:      a.Grade,
		ResponseMs: a.ResponseMs,
		Confidence: a.Confidence,
	}
	now := s.now()
	sched := spacedrep.ScheduleNextReview(now, priorState, outcome)
	stage := NextStage(outcome.Failed(), sched.Repetitions)

	due := sched.NextDueAt
	err = s.repos.Progress.Upsert(ctx, &store.Progress{
		LearnerID: a.LearnerID,
		CardID:    card.ID,
		DeckID:    card.DeckID,
		Stage:     string(stage),
		State:     sched.ProgressState,
		DueAt:     &due,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("submit answer: %w", err)
	}

	err = s.repos.Events.AppendReviewEvent(ctx, store.ReviewEventData{
		SessionID:       a.SessionID,
		LearnerID:       a.LearnerID,
		CardID:          card.ID,
		DeckID:          card.DeckID,
		Grade:           a.Grade,
		Correct:         !outcome.Failed(),
		FirstReview:     prior == nil,
		ResponseMs:      a.ResponseMs,
		Confidence:      a.Confidence,
		EaseFactor:      sched.EaseFactor,
		Repetitions:     sched.Repetitions,
		IntervalMinutes: sched.NextIntervalMinutes,
		DueAt:           sched.NextDueAt,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("submit answer: %w", err)
	}

	return &AnswerResult{
		Card:     *card,
		Correct:  !outcome.Failed(),
		Previous: priorState,
		Schedule: sched,
		Stage:    stage,
	}, prior, nil
}

func (s *Service) awardMastery(ctx context.Context, a Answer, card *store.Card) *gems.GemAward {
	if s.gems == nil {
		return nil
	}
	stats, err := s.DeckStats(ctx, a.LearnerID, card.DeckID)
	if err != nil {
		return nil
	}
	return s.gems.AwardMastery(ctx, a.LearnerID, a.SessionID, card.ID, card.Term,
		stats.ByStage[session.StageKnow], stats.Total)
}

// Summary is a finished session with the session gem it earned, if any.
type Summary struct {
	session.Summary
	Gem *gems.GemAward
}

// FinishSession ends a session, records it and awards the session gem.
func (s *Service) FinishSession(ctx context.Context, sessionID string) (*Summary, error) {
	s.mu.Lock()
	state, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	state.Finish(s.now())
	summary := session.BuildSummary(state)

	err := s.repos.Events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      sessionID,
		LearnerID:      state.LearnerID,
		DeckID:         state.DeckID,
		Action:         "end",
		CardsPlanned:   summary.TotalCards,
		NewCards:       summary.NewCards,
		CardsAnswered:  summary.Answered,
		CorrectAnswers: summary.Correct,
		BestStreak:     summary.BestStreak,
		DurationSecs:   int(summary.Duration.Seconds()),
	})
	if err != nil {
		return nil, fmt.Errorf("finish session: %w", err)
	}

	out := &Summary{Summary: *summary}
	if s.gems != nil && summary.Answered > 0 {
		out.Gem = s.gems.AwardSession(ctx, state.LearnerID, sessionID, summary.Accuracy)
	}
	return out, nil
}

// CurrentCard returns the next unanswered card of a running session, or
// nil once every planned card has been answered.
func (s *Service) CurrentCard(sessionID string) (*session.SessionCard, error) {
	state := s.lookupSession(sessionID)
	if state == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return state.CurrentCard(), nil
}

func (s *Service) lookupSession(id string) *session.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// ResetLearner deletes all of a learner's progress.
func (s *Service) ResetLearner(ctx context.Context, learnerID string) (int64, error) {
	n, err := s.repos.Progress.DeleteForLearner(ctx, learnerID)
	if err != nil {
		return 0, fmt.Errorf("reset learner: %w", err)
	}
	return n, nil
}

// Settings returns the learner's saved session limits, or the defaults
// when none were saved.
func (s *Service) Settings(ctx context.Context, learnerID string) (store.Settings, error) {
	st, err := s.repos.Settings.Get(ctx, learnerID)
	if err != nil {
		return store.Settings{}, fmt.Errorf("settings: %w", err)
	}
	return st, nil
}

// UpdateSettings changes the learner's saved limits. Nil values keep the
// current setting.
func (s *Service) UpdateSettings(ctx context.Context, learnerID string, dailyNew, reviewLimit *int) (store.Settings, error) {
	st, err := s.Settings(ctx, learnerID)
	if err != nil {
		return store.Settings{}, err
	}
	if dailyNew != nil {
		st.DailyNewLimit = *dailyNew
	}
	if reviewLimit != nil {
		st.ReviewSessionLimit = *reviewLimit
	}
	if st.DailyNewLimit < 0 || st.ReviewSessionLimit < 0 {
		return store.Settings{}, fmt.Errorf("%w: daily new %d, review limit %d",
			ErrInvalidSettings, st.DailyNewLimit, st.ReviewSessionLimit)
	}
	if err := s.repos.Settings.Save(ctx, st); err != nil {
		return store.Settings{}, fmt.Errorf("update settings: %w", err)
	}
	return st, nil
}

// startOfDay returns local midnight of t's day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
