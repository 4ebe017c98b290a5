package paillier

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status mirrors the status taxonomy of a Paillier counter operation: every
// exported call either succeeds with StatusOK or fails with exactly one of
// these reasons.
type Status int

const (
	// StatusOK indicates the operation completed and its outputs are valid.
	StatusOK Status = iota
	// StatusParam indicates a null or out-of-range argument.
	StatusParam
	// StatusMem indicates a big-integer or slice allocation failed. Part of
	// spec.md §7's status taxonomy; Go has no allocation-failure return
	// path (an out-of-memory allocation panics rather than erroring), so no
	// call in this package ever constructs one.
	StatusMem
	// StatusCrypto indicates an RNG draw or modular-arithmetic step failed.
	StatusCrypto
	// StatusOS indicates the system entropy source was unavailable.
	StatusOS
	// StatusData indicates malformed serialized input.
	StatusData
	// StatusOverflow indicates a decrypted value exceeds a uint64.
	StatusOverflow
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusParam:
		return "PARAM"
	case StatusMem:
		return "MEM"
	case StatusCrypto:
		return "CRYPTO"
	case StatusOS:
		return "OS"
	case StatusData:
		return "DATA"
	case StatusOverflow:
		return "OVERFLOW"
	default:
		return "UNKNOWN"
	}
}

// StatusError is the error type returned by every exported operation in this
// package that can fail. It carries the failure Status alongside whatever
// underlying cause produced it, so callers that only care about the broad
// failure category can switch on Status while callers that want the detail
// can still Unwrap to it.
type StatusError struct {
	Status Status
	cause  error
}

func (e *StatusError) Error() string {
	if e.cause == nil {
		return e.Status.String()
	}
	return e.Status.String() + ": " + e.cause.Error()
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *StatusError) Unwrap() error {
	return e.cause
}

// newStatusError builds a StatusError, wrapping cause with pkg/errors so a
// stack trace is attached the first time a failure is observed. msg, when
// non-empty, is the wrap context: it is prefixed to the cause's own message,
// or stands alone when there is no cause.
func newStatusError(status Status, cause error, msg string) *StatusError {
	var wrapped error
	switch {
	case cause == nil && msg == "":
		wrapped = errors.New(status.String())
	case cause == nil:
		wrapped = errors.New(msg)
	case msg == "":
		wrapped = errors.WithStack(cause)
	default:
		wrapped = errors.Wrap(cause, msg)
	}
	return &StatusError{Status: status, cause: wrapped}
}

func paramError(format string, args ...interface{}) *StatusError {
	return newStatusError(StatusParam, nil, fmt.Sprintf(format, args...))
}

func cryptoError(cause error, format string, args ...interface{}) *StatusError {
	return newStatusError(StatusCrypto, cause, fmt.Sprintf(format, args...))
}

func osError(cause error, format string, args ...interface{}) *StatusError {
	return newStatusError(StatusOS, cause, fmt.Sprintf(format, args...))
}

func dataError(cause error, format string, args ...interface{}) *StatusError {
	return newStatusError(StatusData, cause, fmt.Sprintf(format, args...))
}

func overflowError(format string, args ...interface{}) *StatusError {
	return newStatusError(StatusOverflow, nil, fmt.Sprintf(format, args...))
}
