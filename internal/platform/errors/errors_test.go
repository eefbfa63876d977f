package errors

import (
	"context"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"netsweep/internal/testutil"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		baseErr := New("base error")
		wrapped := Wrap(baseErr, "additional context")

		testutil.AssertNotNil(t, wrapped, "wrapped error should not be nil")
		testutil.AssertTrue(t, Is(wrapped, baseErr), "should be able to unwrap to base error")
		testutil.AssertEqual(t, wrapped.Error(), "additional context: base error", "error message should include context")
	})

	t.Run("returns nil when wrapping nil", func(t *testing.T) {
		wrapped := Wrap(nil, "context")
		testutil.AssertTrue(t, wrapped == nil, "wrapping nil should return nil")
	})

	t.Run("multiple wraps preserve chain", func(t *testing.T) {
		baseErr := New("base")
		wrapped2 := Wrap(Wrap(baseErr, "layer 1"), "layer 2")

		testutil.AssertTrue(t, Is(wrapped2, baseErr), "should unwrap to base error")
		testutil.AssertEqual(t, wrapped2.Error(), "layer 2: layer 1: base", "should show full chain")
	})
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrConnectionFailed, "send echo to %s", "10.0.0.1")

	testutil.AssertTrue(t, Is(wrapped, ErrConnectionFailed), "should unwrap to sentinel")
	testutil.AssertEqual(t, wrapped.Error(), "send echo to 10.0.0.1: connection failed", "formatted message")
	testutil.AssertTrue(t, Wrapf(nil, "ctx %d", 1) == nil, "wrapping nil should return nil")
}

func TestAs(t *testing.T) {
	t.Run("finds wrapped error type", func(t *testing.T) {
		baseErr := &wrappedError{msg: "test", cause: ErrTimeout}
		wrapped := Wrap(baseErr, "outer")

		var target *wrappedError
		found := As(wrapped, &target)

		testutil.AssertTrue(t, found, "should find wrappedError type")
		// As finds the first matching type in the chain, which is the outer wrapper
		testutil.AssertEqual(t, target.msg, "outer", "should match wrapper error")
	})

	t.Run("returns false for different type", func(t *testing.T) {
		var target *wrappedError
		testutil.AssertFalse(t, As(New("test"), &target), "should not find wrappedError type")
	})
}

func TestUnwrap(t *testing.T) {
	baseErr := New("base")
	testutil.AssertEqual(t, Unwrap(Wrap(baseErr, "context")), baseErr, "should unwrap to base error")
	testutil.AssertTrue(t, Unwrap(New("plain")) == nil, "should return nil for non-wrapped error")
}

func TestJoin(t *testing.T) {
	joined := Join(ErrPermissionDenied, nil, ErrNotFound)

	testutil.AssertTrue(t, Is(joined, ErrPermissionDenied), "joined keeps first error")
	testutil.AssertTrue(t, Is(joined, ErrNotFound), "joined keeps second error")
	testutil.AssertTrue(t, Join(nil, nil) == nil, "joining only nils returns nil")
}

type fakeNetError struct{ timeout bool }

func (e fakeNetError) Error() string   { return "fake net error" }
func (e fakeNetError) Timeout() bool   { return e.timeout }
func (e fakeNetError) Temporary() bool { return false }

var _ net.Error = fakeNetError{}

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct timeout error", ErrTimeout, true},
		{"wrapped timeout error", Wrap(ErrTimeout, "context"), true},
		{"context deadline", context.DeadlineExceeded, true},
		{"read deadline", fmt.Errorf("read ip4: %w", os.ErrDeadlineExceeded), true},
		{"net error timeout", &net.OpError{Op: "read", Err: fakeNetError{timeout: true}}, true},
		{"net error without timeout", fakeNetError{timeout: false}, false},
		{"different error", ErrNotFound, false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsTimeout(tt.err), tt.want, "IsTimeout result should match")
		})
	}
}

func TestIsPermissionDenied(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sentinel", ErrPermissionDenied, true},
		{"EPERM from socket", &net.OpError{Op: "listen", Net: "ip4:icmp", Err: os.NewSyscallError("socket", syscall.EPERM)}, true},
		{"EACCES", Wrap(syscall.EACCES, "open"), true},
		{"os.ErrPermission", os.ErrPermission, true},
		{"other", ErrConnectionFailed, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsPermissionDenied(tt.err), tt.want, "IsPermissionDenied result should match")
		})
	}
}

func TestSentinelHelpers(t *testing.T) {
	testutil.AssertTrue(t, IsNotFound(Wrap(ErrNotFound, "ping binary")), "IsNotFound wrapped")
	testutil.AssertTrue(t, IsInvalidInput(Wrap(ErrInvalidInput, "prefix")), "IsInvalidInput wrapped")
	testutil.AssertTrue(t, IsConnectionFailed(Wrap(ErrConnectionFailed, "write")), "IsConnectionFailed wrapped")
	testutil.AssertFalse(t, IsNotFound(ErrTimeout), "IsNotFound on other sentinel")
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrTimeout", ErrTimeout, "operation timed out"},
		{"ErrNotFound", ErrNotFound, "resource not found"},
		{"ErrInvalidInput", ErrInvalidInput, "invalid input"},
		{"ErrConnectionFailed", ErrConnectionFailed, "connection failed"},
		{"ErrPermissionDenied", ErrPermissionDenied, "permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.err.Error(), tt.want, "error message should match")
		})
	}
}
