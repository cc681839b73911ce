package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies why a request failed.
type Kind int

const (
	// KindNetwork means the request never completed: connection refused,
	// DNS failure, reset, or a request that could not be built.
	KindNetwork Kind = iota + 1
	// KindTimeout means the request was aborted client side, either because
	// the timeout elapsed or because the caller cancelled it.
	KindTimeout
	// KindHTTP means the server answered with a non-2xx status.
	KindHTTP
	// KindDecode means a 2xx body could not be decoded.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the only error type returned by Do.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error `json:"-"`
}

// Sentinels for errors.Is. An HTTP sentinel with a zero Status matches any
// status.
var (
	ErrNetwork = &Error{Kind: KindNetwork}
	ErrTimeout = &Error{Kind: KindTimeout}
	ErrHTTP    = &Error{Kind: KindHTTP}
	ErrDecode  = &Error{Kind: KindDecode}
)

func (e *Error) Error() string {
	msg := e.Message
	if e.Kind == KindHTTP {
		return fmt.Sprintf("api: http %d: %s", e.Status, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("api: %s error: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("api: %s error: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Status == 0 || t.Status == e.Status)
}

// StatusIs reports whether err is an HTTP error with the given status.
func StatusIs(err error, status int) bool {
	return errors.Is(err, &Error{Kind: KindHTTP, Status: status})
}

// AsError extracts the classified error from err.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// newHTTPError takes the message from the body's "error" field, then its
// "message" field, and falls back to "HTTP <status>".
func newHTTPError(status int, body []byte) *Error {
	msg := fmt.Sprintf("HTTP %d", status)
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			msg = payload.Error
		case payload.Message != "":
			msg = payload.Message
		}
	}
	return &Error{Kind: KindHTTP, Status: status, Message: msg}
}
