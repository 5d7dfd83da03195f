package study

import (
	svc "github.com/abhisek/flashquest/internal/study"
)

// sessionInitMsg is sent when the session plan has been built.
type sessionInitMsg struct {
	Session *svc.Session
	Err     error
}

// feedbackDoneMsg is sent when the learner dismisses the feedback view.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
