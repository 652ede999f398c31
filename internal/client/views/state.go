package views

import (
	"errors"

	"github.com/dmitrijs2005/teebay/internal/client/client"
)

var (
	ErrActionDisabled = errors.New("action is not available for this product")
	ErrNotReviewed    = errors.New("product can only be submitted from the review step")
	ErrNoProduct      = errors.New("no product loaded")
	ErrNoDialog       = errors.New("no dialog is open")
)

// Phase is the lifecycle of a fetch (Idle, Loading, Success|Error) or of a
// mutation (Idle, Submitting, Success|Error).
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSubmitting
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Status tracks one fetch or mutation.
type Status struct {
	Phase Phase
	Err   error
}

func (s *Status) begin(p Phase) {
	s.Phase, s.Err = p, nil
}

// end records the outcome and returns err unchanged.
func (s *Status) end(err error) error {
	if err != nil {
		s.Phase, s.Err = PhaseError, err
		return err
	}
	s.Phase = PhaseSuccess
	return nil
}

// Busy reports whether a request is in flight.
func (s Status) Busy() bool {
	return s.Phase == PhaseLoading || s.Phase == PhaseSubmitting
}

// Message is the text to show for a failed status.
func (s Status) Message() string {
	if s.Err == nil {
		return ""
	}
	return client.Message(s.Err)
}

// Dismiss clears a shown error.
func (s *Status) Dismiss() {
	if s.Phase == PhaseError {
		s.Phase, s.Err = PhaseIdle, nil
	}
}
