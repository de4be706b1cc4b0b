package deepgram

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the deepgram package. Callers match them with
// errors.Is to distinguish failure classes without parsing messages.
var (
	// ErrAuth is returned when the API rejects the request for
	// authentication or billing reasons (HTTP 401, 402, 403).
	ErrAuth = errors.New("deepgram: authentication or billing rejected")

	// ErrNetwork is returned when the request never produced an HTTP
	// response (connection failure, timeout, cancelled context).
	ErrNetwork = errors.New("deepgram: network failure")

	// ErrNoTranscript is returned by Normalize when no extraction strategy
	// finds usable segment data in the response.
	ErrNoTranscript = errors.New("deepgram: no usable transcript in response")
)

// APIError is returned for unexpected non-success HTTP statuses
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deepgram: http %d: %s", e.StatusCode, e.Body)
}
