package errors

import (
	stderr "errors"
	"fmt"
	"time"
)

// Failure kinds used as the log field and metric tag for session start failures.
const (
	KindTimeout               = "timeout"
	KindMalformed             = "malformed"
	KindReportedFailure       = "reported_failure"
	KindTerminalLaunch        = "terminal_launch"
	KindConnection            = "connection"
	KindUnexpectedTermination = "unexpected_termination"
	KindUnknown               = "unknown"
)

// HandshakeTimeoutError indicates that the session file did not appear within the allotted time.
type HandshakeTimeoutError struct {
	Path    string
	Timeout time.Duration
}

// Error is an implementation of the error interface.
func (e *HandshakeTimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for session file %q", e.Timeout, e.Path)
}

// HandshakeMalformedError indicates that the session file could not be interpreted.
type HandshakeMalformedError struct {
	Path string
	Err  error
}

// Error is an implementation of the error interface.
func (e *HandshakeMalformedError) Error() string {
	return fmt.Sprintf("malformed session file %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *HandshakeMalformedError) Unwrap() error {
	return e.Err
}

// HandshakeFailedError carries the reason reported by the language server when it failed to start.
type HandshakeFailedError struct {
	Reason string
}

// Error is an implementation of the error interface.
func (e *HandshakeFailedError) Error() string {
	return fmt.Sprintf("language server reported a startup failure: %s", e.Reason)
}

// TerminalLaunchError indicates that the host terminal could not be opened.
type TerminalLaunchError struct {
	Err error
}

// Error is an implementation of the error interface.
func (e *TerminalLaunchError) Error() string {
	return fmt.Sprintf("launching terminal: %v", e.Err)
}

// Unwrap returns the underlying launch failure.
func (e *TerminalLaunchError) Unwrap() error {
	return e.Err
}

// ConnectionError indicates that the socket to the language server could not be established.
type ConnectionError struct {
	Port int
	Err  error
}

// Error is an implementation of the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to language service on port %d: %v", e.Port, e.Err)
}

// Unwrap returns the underlying dial failure.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// UnexpectedTerminationError indicates that the server process exited, or its terminal failed, while the session was still wanted.
type UnexpectedTerminationError struct {
	Code   int
	Signal string
	// Err is set when the terminal of the process reported an error instead of an exit.
	Err error
}

// Error is an implementation of the error interface.
func (e *UnexpectedTerminationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("language server process failed: %v", e.Err)
	}
	return fmt.Sprintf("language server exited unexpectedly: code %d, signal %q", e.Code, e.Signal)
}

// Unwrap returns the terminal error, if any.
func (e *UnexpectedTerminationError) Unwrap() error {
	return e.Err
}

// IsHandshakeFailure reports whether the error came out of the session file handshake.
func IsHandshakeFailure(e error) bool {
	switch FailureKind(e) {
	case KindTimeout, KindMalformed, KindReportedFailure:
		return true
	}
	return false
}

// IsSessionStartFailure reports whether the error is one of the typed session start failures.
func IsSessionStartFailure(e error) bool {
	return FailureKind(e) != KindUnknown
}

// FailureKind classifies a session failure for logging and metrics.
func FailureKind(e error) string {
	var (
		timeout     *HandshakeTimeoutError
		malformed   *HandshakeMalformedError
		reported    *HandshakeFailedError
		launch      *TerminalLaunchError
		connection  *ConnectionError
		termination *UnexpectedTerminationError
	)

	switch {
	case stderr.As(e, &timeout):
		return KindTimeout
	case stderr.As(e, &malformed):
		return KindMalformed
	case stderr.As(e, &reported):
		return KindReportedFailure
	case stderr.As(e, &launch):
		return KindTerminalLaunch
	case stderr.As(e, &connection):
		return KindConnection
	case stderr.As(e, &termination):
		return KindUnexpectedTermination
	}
	return KindUnknown
}
