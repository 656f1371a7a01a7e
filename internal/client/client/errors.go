package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrMalformedResponse = errors.New("malformed response")
)

// RejectedError is returned when the backend answers with a non-2xx status.
// Message is the text extracted from the body and is empty when the body had
// no recognisable message.
type RejectedError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request rejected: status %d", e.StatusCode)
	}
	return fmt.Sprintf("request rejected: status %d: %s", e.StatusCode, e.Message)
}
