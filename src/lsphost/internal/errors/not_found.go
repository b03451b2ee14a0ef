package errors

import (
	stderr "errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// UUIDNotFoundError is a service domain error for not found.
type UUIDNotFoundError struct {
	UUID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *UUIDNotFoundError) Error() string {
	return fmt.Sprintf("UUID %q not found", n.UUID)
}

// NotFoundUUID returns an UUID and true if UUIDNotFoundError is part of the
// error chain.
func NotFoundUUID(e error) (_ uuid.UUID, ok bool) {
	var nf *UUIDNotFoundError
	if !stderr.As(e, &nf) {
		return uuid.Nil, false
	}
	return nf.UUID, true
}

// NoSessionFoundError indicates that a session cannot be found within the context.
type NoSessionFoundError struct{}

// Error is an implementation of the error interface.
func (n *NoSessionFoundError) Error() string {
	return "No session found in context"
}

// NoActiveSessionError indicates that no language server session can serve a request.
type NoActiveSessionError struct{}

// Error is an implementation of the error interface.
func (n *NoActiveSessionError) Error() string {
	return "No language server is available"
}

// NoActiveEditorError indicates that an editor command arrived while no text editor was active.
type NoActiveEditorError struct{}

// Error is an implementation of the error interface.
func (n *NoActiveEditorError) Error() string {
	return "No active text editor"
}

// UnsupportedError indicates that the host cannot perform the requested variant of an operation.
type UnsupportedError struct {
	Method string
	Reason string
}

// Error is an implementation of the error interface.
func (u *UnsupportedError) Error() string {
	return u.Reason
}

// IsUnsupported reports whether UnsupportedError is part of the error chain.
func IsUnsupported(e error) bool {
	var u *UnsupportedError
	return stderr.As(e, &u)
}
