package gateway

import "fmt"

// UpstreamError is a core API rejection. Detail carries the upstream
// message verbatim; it must reach the user without local reinterpretation.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream rejected request (%d): %s", e.Status, e.Detail)
}

// TransportError covers an unreachable upstream or a malformed response.
// No diagnostic detail is available to surface beyond "try again".
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
