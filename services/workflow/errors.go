package workflow

import (
	"errors"
	"fmt"

	"infinity8/gateway"
)

// ValidationError is a local, pre-network rejection (bad date, empty or
// gapped selection). It never reaches the booking service.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// RejectionError is the booking service declining a request. The message
// is the upstream text verbatim; the authoritative rules live upstream and
// must not be reinterpreted here.
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// TransportError is an unreachable collaborator or a malformed response.
// Callers surface a generic "please try again" message.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("collaborator unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

var (
	// ErrAuthenticationRequired gates submit for anonymous callers. No
	// network call is made; the caller redirects to sign-in.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrSubmissionInFlight rejects a re-entrant submit while one is
	// already running (double-click guard).
	ErrSubmissionInFlight = errors.New("a booking submission is already in progress")
	// ErrSessionNotFound means the workflow session expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")
)

// mapCollaboratorError folds gateway failures into the workflow taxonomy.
func mapCollaboratorError(err error) error {
	var upstream *gateway.UpstreamError
	if errors.As(err, &upstream) {
		return &RejectionError{Status: upstream.Status, Message: upstream.Detail}
	}
	var transport *gateway.TransportError
	if errors.As(err, &transport) {
		return &TransportError{Err: transport.Err}
	}
	return &TransportError{Err: err}
}
