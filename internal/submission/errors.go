package submission

import (
	"errors"
	"fmt"
)

// FAILURE_MESSAGE is the only text ever shown for a failed request.
const FAILURE_MESSAGE = "Failed to analyze comments"

var (
	ErrEmptyInput        = errors.New("nothing staged for the active input mode")
	ErrSubmissionPending = errors.New("a submission is already in flight")
	ErrUnknownMode       = errors.New("unknown input mode")
)

type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1
	KindServer
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// RequestError keeps the reason a request failed for logging and
// diagnostics. Users only ever see FAILURE_MESSAGE.
type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.Kind == KindServer:
		return fmt.Sprintf("%s error: status %d", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s error", e.Kind)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
