package epc

import "github.com/pkg/errors"

// Status is the three-valued outcome of any codec operation. It mirrors the
// status codes a caller needs to branch on; Go callers normally just check
// err != nil and use StatusOf when the distinction between a malformed
// request and an unrepresentable serial actually matters.
type Status int

const (
	// StatusOK indicates success.
	StatusOK Status = iota
	// StatusInvalidArgument indicates a malformed URI, wrong digit
	// character or count, unknown header, wrong binary length, an
	// out-of-range filter value, or any other structural violation.
	StatusInvalidArgument
	// StatusInvalidSerial indicates a field that was structurally valid
	// as an element string is not representable under the currently
	// selected scheme (wrong alphabet, too long, or numerically too
	// large for the scheme's bit width).
	StatusInvalidSerial
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "Ok"
	case StatusInvalidArgument:
		return "InvalidArgument"
	case StatusInvalidSerial:
		return "InvalidSerial"
	default:
		return "Unknown"
	}
}

// CodecError pairs a Status with the underlying cause. It's the only error
// type this package returns; every fallible function's error, when non-nil,
// can be type-asserted to *CodecError.
type CodecError struct {
	status Status
	cause  error
}

func (e *CodecError) Error() string {
	return e.status.String() + ": " + e.cause.Error()
}

// Status reports the CodecError's status.
func (e *CodecError) Status() Status {
	return e.status
}

// Cause returns the underlying error, for compatibility with
// github.com/pkg/errors.Cause.
func (e *CodecError) Cause() error {
	return e.cause
}

func invalidArgument(format string, args ...interface{}) error {
	return &CodecError{status: StatusInvalidArgument, cause: errors.Errorf(format, args...)}
}

func invalidSerial(format string, args ...interface{}) error {
	return &CodecError{status: StatusInvalidSerial, cause: errors.Errorf(format, args...)}
}

func wrapInvalidArgument(err error, format string, args ...interface{}) error {
	return &CodecError{status: StatusInvalidArgument, cause: errors.Wrapf(err, format, args...)}
}

// StatusOf reports the Status carried by err. A nil error is StatusOK; any
// error that isn't a *CodecError is treated as StatusInvalidArgument, since
// every operation in this package that can fail for another reason already
// wraps it in one.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	if ce, ok := err.(*CodecError); ok {
		return ce.status
	}
	return StatusInvalidArgument
}
