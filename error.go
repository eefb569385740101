package bfetch

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Payload holds the additional context attached to a [ReducerError], for example the offending "request" or
// "response".
type Payload map[string]any

// ReducerError is raised by the built-in reducers when their contract is violated.
type ReducerError struct {
	msg     string
	payload Payload
}

// NewReducerError inits a new reducer error with a message and an optional payload.
func NewReducerError(msg string, payload Payload) *ReducerError {
	return &ReducerError{msg: msg, payload: lo.Assign(payload)}
}

func (e *ReducerError) Error() string { return e.msg }

// Message returns the human readable message.
func (e *ReducerError) Message() string { return e.msg }

// Payload returns the additional context the error was created with.
func (e *ReducerError) Payload() Payload { return e.payload }

// Request returns the "request" payload field, if there is one.
func (e *ReducerError) Request() (Request, bool) {
	r, ok := e.payload["request"].(Request)
	return r, ok
}

// Response returns the "response" payload field, if there is one.
func (e *ReducerError) Response() (Response, bool) {
	r, ok := e.payload["response"].(Response)
	return r, ok
}

// AsReducerError uses errors.As to unwrap any error and look for a *ReducerError.
func AsReducerError(err error) (*ReducerError, bool) {
	var rerr *ReducerError
	ok := errors.As(err, &rerr)
	return rerr, ok
}
