package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrEmptyResponse means the server answered 200 with no generated text.
var ErrEmptyResponse = errors.New("empty response from server")

// StatusError is a non-200 answer from the server.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ollama returned status %d", e.Code)
}

// IsTimeout reports whether err is a request that ran out of time.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

// IsUnreachable reports whether err is a transport-level failure
// (connection refused, DNS failure) rather than a timeout or a bad status.
func IsUnreachable(err error) bool {
	if IsTimeout(err) {
		return false
	}
	var uerr *url.Error
	return errors.As(err, &uerr)
}

// IsStatus extracts a StatusError if err carries one.
func IsStatus(err error) (*StatusError, bool) {
	var serr *StatusError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}
