// Package errors provides error types and utilities for netsweep.
// It extends the standard errors package with context wrapping and
// classification helpers for the network failures a probe can hit.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// Sentinel errors for common failure scenarios
var (
	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrNotFound indicates a requested resource (binary, interface, prober) was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrConnectionFailed indicates a socket could not be opened or written
	ErrConnectionFailed = errors.New("connection failed")

	// ErrPermissionDenied indicates the process lacks the privilege to open the socket
	ErrPermissionDenied = errors.New("permission denied")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	conn, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0")
//	if err != nil {
//	    return errors.Wrap(err, "open raw socket")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsTimeout reports whether the error is a timeout: the ErrTimeout sentinel,
// an expired context deadline or a net.Error that reports Timeout().
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if Is(err, ErrTimeout) || Is(err, context.DeadlineExceeded) || Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return As(err, &ne) && ne.Timeout()
}

// IsNotFound reports whether the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsConnectionFailed reports whether the error is a connection failed error
func IsConnectionFailed(err error) bool {
	return Is(err, ErrConnectionFailed)
}

// IsPermissionDenied reports whether the error means the socket needs more privilege
// (EPERM/EACCES from the kernel or the ErrPermissionDenied sentinel).
func IsPermissionDenied(err error) bool {
	if err == nil {
		return false
	}
	return Is(err, ErrPermissionDenied) ||
		Is(err, os.ErrPermission) ||
		Is(err, syscall.EPERM) ||
		Is(err, syscall.EACCES)
}
