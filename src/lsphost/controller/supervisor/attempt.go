package supervisor

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"github.com/uber/lsp-session-host/src/lsphost/internal/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// attempt owns every resource acquired by one Start call.
type attempt struct {
	id     uuid.UUID
	ctx    context.Context
	cancel context.CancelCauseFunc
	logger *zap.SugaredLogger

	mu       sync.Mutex
	closed   bool
	cleanups []func() error
	terminal editorhost.Terminal
	session  *entity.Session
}

func newAttempt(ctx context.Context, id uuid.UUID, logger *zap.SugaredLogger) *attempt {
	attemptCtx, cancel := context.WithCancelCause(ctx)
	return &attempt{
		id:     id,
		ctx:    attemptCtx,
		cancel: cancel,
		logger: logger,
	}
}

// onTeardown registers fn to run when the attempt is torn down. Cleanups run in reverse order of registration.
// If the attempt is already torn down, fn runs immediately and an ErrSessionDisposed error is returned.
func (a *attempt) onTeardown(fn func() error) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return multierr.Append(errors.ErrSessionDisposed, fn())
	}
	a.cleanups = append(a.cleanups, fn)
	a.mu.Unlock()
	return nil
}

func (a *attempt) setTerminal(t editorhost.Terminal) error {
	a.mu.Lock()
	if !a.closed {
		a.terminal = t
	}
	a.mu.Unlock()
	return a.onTeardown(t.Dispose)
}

func (a *attempt) setSession(s *entity.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = s
}

func (a *attempt) currentTerminal() editorhost.Terminal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.terminal
}

// err prefers the cancellation cause of the attempt over the error returned by an interrupted operation.
func (a *attempt) err(err error) error {
	if a.ctx.Err() != nil {
		if cause := context.Cause(a.ctx); cause != nil {
			return cause
		}
	}
	return err
}

// teardown cancels in-flight waits and releases every resource of the attempt. Only the first call does any work.
func (a *attempt) teardown() error {
	a.cancel(errors.ErrSessionDisposed)

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	cleanups := a.cleanups
	a.cleanups = nil
	a.terminal = nil
	a.mu.Unlock()

	var err error
	for i := len(cleanups) - 1; i >= 0; i-- {
		err = multierr.Append(err, cleanups[i]())
	}
	return err
}
