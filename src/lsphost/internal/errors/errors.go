package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ErrTerminalProviderUnavailable reports that the host never supplied a terminal provider.
	ErrTerminalProviderUnavailable = New("no terminal provider is available")
	// ErrSessionDisposed reports that an operation was attempted on a disposed session.
	ErrSessionDisposed = New("session has been disposed")
)

// IsDisposed reports whether the error was caused by disposal of the session.
func IsDisposed(e error) bool {
	return stderr.Is(e, ErrSessionDisposed)
}
