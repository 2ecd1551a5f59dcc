package wizard

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a wizard session has expired or
// never existed.
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// ErrSubmissionInFlight guards against re-entrant submit calls: an
// in-flight submission is not cancellable, so further wizard actions
// are refused until it settles.
var ErrSubmissionInFlight = errors.New("booking submission already in flight")

// TransitionError is a refused wizard action: the current stage's
// precondition is unmet or the requested selection is not selectable.
// It never crosses the submission boundary.
type TransitionError struct {
	Stage  Stage
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("wizard transition refused at %s: %s", e.Stage, e.Reason)
}

func refuse(stage Stage, format string, args ...interface{}) error {
	return &TransitionError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}

// Submission failure codes.
const (
	SubmissionCodeSlotTaken   = "slot_taken"
	SubmissionCodePersistence = "persistence"
)

// SubmissionError is a retryable failure from the booking submission
// boundary. The wizard stays in Confirmation so the caller can retry
// with the same draft or back up and change date/time.
type SubmissionError struct {
	Code string
	Err  error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("booking submission failed (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("booking submission failed (%s)", e.Code)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
