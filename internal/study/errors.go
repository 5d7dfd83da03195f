package study

import "errors"

var (
	// ErrInvalidGrade is returned when a grade is outside [0, 5].
	ErrInvalidGrade = errors.New("study: grade must be between 0 and 5")
	// ErrInvalidConfidence is returned when a confidence is outside [0, 1].
	ErrInvalidConfidence = errors.New("study: confidence must be between 0 and 1")
	// ErrInvalidResponseTime is returned for a non-finite response time.
	ErrInvalidResponseTime = errors.New("study: response time must be finite")
	// ErrSessionNotFound is returned for an unknown or finished session ID.
	ErrSessionNotFound = errors.New("study: session not found")
	// ErrCardNotFound is returned when the answered card does not exist.
	ErrCardNotFound = errors.New("study: card not found")
	// ErrDeckNotFound is returned when the requested deck does not exist.
	ErrDeckNotFound = errors.New("study: deck not found")
	// ErrCardNotInSession is returned when a session answer names a card
	// that was not planned for it.
	ErrCardNotInSession = errors.New("study: card is not part of the session")
	// ErrInvalidSettings is returned when a saved limit is negative.
	ErrInvalidSettings = errors.New("study: limits must not be negative")
)
