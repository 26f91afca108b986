// Package loader tracks the lifecycle of one asynchronous request.
//
// The tracker is a tagged-variant reducer, not a guarded state machine: every
// intent is accepted from every state. A view that fires a new request while an
// older one is still in flight uses Begin/Resolve so that only the latest
// request's outcome is applied.
package loader

import "errors"

// Status is the renderable phase of a request.
type Status int

const (
	StatusInitial Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "initial"
	}
}

// errUnknown replaces a nil failure detail so a Failure always has a message.
var errUnknown = errors.New("unknown error")

// State is the current status plus the payload or failure that goes with it.
// Result is only set when Status is StatusSuccess and Err only when Status is
// StatusFailure.
type State[T any] struct {
	Status Status
	Result T
	Err    error
}

// Value returns the result and whether the state holds one.
func (s State[T]) Value() (T, bool) {
	return s.Result, s.Status == StatusSuccess
}

// Message returns the failure text, or "" outside StatusFailure.
func (s State[T]) Message() string {
	if s.Status != StatusFailure || s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

type intentKind int

const (
	intentLoading intentKind = iota
	intentSuccess
	intentFailure
)

// Intent is one instruction for the reducer. Build it with Loading, Success or
// Failure.
type Intent[T any] struct {
	kind    intentKind
	payload T
	err     error
}

// Loading moves any state to StatusLoading.
func Loading[T any]() Intent[T] {
	return Intent[T]{kind: intentLoading}
}

// Success moves any state to StatusSuccess with v as the result.
func Success[T any](v T) Intent[T] {
	return Intent[T]{kind: intentSuccess, payload: v}
}

// Failure moves any state to StatusFailure with err as the detail.
func Failure[T any](err error) Intent[T] {
	if err == nil {
		err = errUnknown
	}
	return Intent[T]{kind: intentFailure, err: err}
}

// Reduce applies in to s. The prior state is never consulted.
func Reduce[T any](_ State[T], in Intent[T]) State[T] {
	switch in.kind {
	case intentSuccess:
		return State[T]{Status: StatusSuccess, Result: in.payload}
	case intentFailure:
		err := in.err
		if err == nil {
			err = errUnknown
		}
		return State[T]{Status: StatusFailure, Err: err}
	default:
		return State[T]{Status: StatusLoading}
	}
}
