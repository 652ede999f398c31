package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/dmitrijs2005/teebay/internal/netx"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// OperationError is returned by every Client method. Message is the text to
// show the user; Err is matched with errors.Is (ErrUnavailable,
// ErrUnauthorized, context errors).
type OperationError struct {
	Op      string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error { return e.Err }

const graphqlErrPrefix = "graphql: "

var authMarkers = []string{
	"unauthorized",
	"unauthenticated",
	"not authenticated",
	"invalid token",
	"jwt expired",
}

func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &OperationError{Op: op, Message: "request cancelled", Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, netx.ErrBadStatus) {
		return &OperationError{Op: op, Message: "server unavailable", Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}

	msg := strings.TrimPrefix(err.Error(), graphqlErrPrefix)
	lower := strings.ToLower(msg)
	for _, m := range authMarkers {
		if strings.Contains(lower, m) {
			return &OperationError{Op: op, Message: msg, Err: ErrUnauthorized}
		}
	}

	return &OperationError{Op: op, Message: msg, Err: err}
}

// Message returns the user-facing text of err: the server message of an
// OperationError, or err.Error() otherwise.
func Message(err error) string {
	var opErr *OperationError
	if errors.As(err, &opErr) && opErr.Message != "" {
		return opErr.Message
	}
	return err.Error()
}
