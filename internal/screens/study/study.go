package study

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashquest/internal/gems"
	"github.com/abhisek/flashquest/internal/screen"
	"github.com/abhisek/flashquest/internal/screens/summary"
	"github.com/abhisek/flashquest/internal/session"
	svc "github.com/abhisek/flashquest/internal/study"
	"github.com/abhisek/flashquest/internal/ui/components"
	"github.com/abhisek/flashquest/internal/ui/layout"
)

// Service is the part of the study service the screen drives.
type Service interface {
	BuildSession(ctx context.Context, learnerID, deckRef string) (*svc.Session, error)
	CurrentCard(sessionID string) (*session.SessionCard, error)
	SubmitAnswer(ctx context.Context, a svc.Answer) (*svc.AnswerResult, error)
	FinishSession(ctx context.Context, sessionID string) (*svc.Summary, error)
}

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseReveal
	phaseFeedback
	phaseEnding
)

// StudyScreen runs one study session: it shows each planned card's term,
// takes the learner's answer, reveals the definition and records a grade.
type StudyScreen struct {
	service   Service
	learnerID string
	deckRef   string
	now       func() time.Time

	sess  *svc.Session
	card  *session.SessionCard
	input components.TextInput
	phase phase

	quitConfirm   bool
	typedCorrect  bool
	responseMs    float64
	questionStart time.Time

	result   *svc.AnswerResult
	answered int
	streak   int
	earned   []gems.GemAward
	errMsg   string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.StatusProvider = (*StudyScreen)(nil)

// New creates a study screen for a learner and deck.
func New(service Service, learnerID, deckRef string) *StudyScreen {
	return &StudyScreen{
		service:   service,
		learnerID: learnerID,
		deckRef:   deckRef,
		now:       time.Now,
		input:     newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("Type the definition, or Enter to reveal...", 200)
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initSession(),
		s.input.Init(),
	)
}

func (s *StudyScreen) Title() string {
	if s.sess != nil {
		return s.sess.Deck.Name
	}
	return "Study"
}

func (s *StudyScreen) Status() layout.Status {
	st := layout.Status{Answered: s.answered, Streak: s.streak, Gems: len(s.earned)}
	if s.sess != nil {
		st.Total = s.sess.Plan.Len()
	}
	return st
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseReveal:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Accept"},
			{Key: "Y/N", Description: "Knew it / Didn't"},
			{Key: "0-5", Description: "Grade"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return nil
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseQuestion && !s.quitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// initSession plans and starts the session.
func (s *StudyScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		sess, err := s.service.BuildSession(context.Background(), s.learnerID, s.deckRef)
		return sessionInitMsg{Session: sess, Err: err}
	}
}

func (s *StudyScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.sess = msg.Session
	return s, s.nextCard()
}

// nextCard moves to the session's next unanswered card, or ends the
// session when none is left.
func (s *StudyScreen) nextCard() tea.Cmd {
	card, err := s.service.CurrentCard(s.sess.ID)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if card == nil {
		return func() tea.Msg { return sessionEndMsg{} }
	}

	s.card = card
	s.result = nil
	s.typedCorrect = false
	s.input = newAnswerInput()
	s.questionStart = s.now()
	s.phase = phaseQuestion
	return s.input.Init()
}

func (s *StudyScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.result != nil && s.result.SessionEnded {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s, s.nextCard()
}

func (s *StudyScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.phase == phaseEnding {
		return s, tea.Quit
	}
	s.phase = phaseEnding

	sum, err := s.service.FinishSession(context.Background(), s.sess.ID)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	earned := append([]gems.GemAward(nil), s.earned...)
	if sum.Gem != nil {
		earned = append(earned, *sum.Gem)
	}
	return s, screen.Replace(summary.New(s.sess.Deck.Name, &sum.Summary, earned))
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key quits.
	if s.errMsg != "" {
		return s, tea.Quit
	}
	if s.sess == nil {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.phase {
	case phaseQuestion:
		switch key {
		case "esc":
			s.quitConfirm = true
			return s, nil
		case "enter":
			s.reveal()
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseReveal:
		switch key {
		case "esc":
			s.quitConfirm = true
			return s, nil
		case "enter":
			return s.submit(s.gradedAnswer(s.typedCorrect))
		case "y", "Y":
			return s.submit(s.gradedAnswer(true))
		case "n", "N":
			return s.submit(s.gradedAnswer(false))
		case "0", "1", "2", "3", "4", "5":
			ms := s.responseMs
			return s.submit(svc.Answer{
				SessionID:  s.sess.ID,
				LearnerID:  s.learnerID,
				CardID:     s.card.CardID,
				Grade:      int(key[0] - '0'),
				ResponseMs: &ms,
			})
		}

	case phaseFeedback:
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	return s, nil
}

// reveal shows the definition and checks the typed answer against it.
func (s *StudyScreen) reveal() {
	s.responseMs = float64(s.now().Sub(s.questionStart).Milliseconds())
	s.typedCorrect = components.Matches(s.input.Value(), s.card.Definition)
	s.input.Submit(s.typedCorrect)
	s.phase = phaseReveal
}

func (s *StudyScreen) gradedAnswer(correct bool) svc.Answer {
	ms := s.responseMs
	return svc.GradedAnswer(s.sess.ID, s.learnerID, s.card.CardID, correct, &ms, nil)
}

// submit schedules the answer and shows the outcome.
func (s *StudyScreen) submit(a svc.Answer) (screen.Screen, tea.Cmd) {
	res, err := s.service.SubmitAnswer(context.Background(), a)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.result = res
	s.answered++
	s.streak = res.Streak
	s.earned = append(s.earned, res.Gems...)
	s.phase = phaseFeedback
	return s, nil
}
