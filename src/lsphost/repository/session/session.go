package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"github.com/uber/lsp-session-host/src/lsphost/internal/errors"
	"github.com/uber/lsp-session-host/src/lsphost/mapper"
	"github.com/uber/lsp-session-host/src/lsphost/model"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=sessionmock/session_mock.go -package=sessionmock . Repository

const _gaugeActiveSessions = "active_sessions"

// Target selects the session a request is sent to.
// An explicit Session wins over a Document, which wins over the active session.
type Target struct {
	Session  *entity.Session
	Document uri.URI
}

// Repository tracks connected language server sessions, the active one among them, and the terminal provider used to launch them.
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// SetActiveServer stores the session and makes it the target of untargeted requests. The last call wins.
	SetActiveServer(ctx context.Context, s *entity.Session) error
	ActiveServer(ctx context.Context) (*entity.Session, error)
	// Remove forgets the session, clearing the active session if it is the one removed.
	Remove(ctx context.Context, id uuid.UUID) error
	SessionCount(ctx context.Context) (int, error)
	SendRequest(ctx context.Context, method string, params interface{}, result interface{}, target Target) error

	// ProvideTerminalProvider announces the host's terminal provider. Only the first announcement is kept.
	ProvideTerminalProvider(tp editorhost.TerminalProvider)
	// AwaitTerminalProvider blocks until a terminal provider has been announced or ctx is done.
	AwaitTerminalProvider(ctx context.Context) (editorhost.TerminalProvider, error)
	TerminalProvider() (editorhost.TerminalProvider, bool)
}

// Params are the dependencies of the Repository.
type Params struct {
	fx.In

	Stats    tally.Scope
	Logger   *zap.SugaredLogger
	Resolver editorhost.ServerResolver `optional:"true"`
}

type repository struct {
	mu       sync.Mutex
	memstore map[uuid.UUID]*model.Session
	active   uuid.UUID

	provider      editorhost.TerminalProvider
	providerReady chan struct{}

	resolver editorhost.ServerResolver
	stats    tally.Scope
	logger   *zap.SugaredLogger
}

// New returns a repository to an in-memory Session data store.
func New(p Params) Repository {
	return &repository{
		memstore:      make(map[uuid.UUID]*model.Session),
		providerReady: make(chan struct{}),
		resolver:      p.Resolver,
		stats:         p.Stats,
		logger:        p.Logger,
	}
}

// Get returns the Session associated with the given id.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.memstore[id]
	if !ok {
		return nil, &errors.UUIDNotFoundError{UUID: id}
	}
	return mapper.ModelToSession(s), nil
}

func (r *repository) SetActiveServer(ctx context.Context, s *entity.Session) error {
	if s == nil {
		return errors.New("can't save nil session")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.memstore[s.UUID] = mapper.SessionToModel(s)
	r.active = s.UUID
	r.stats.Gauge(_gaugeActiveSessions).Update(float64(len(r.memstore)))
	r.logger.Infow("active language server changed", zap.Stringer("uuid", s.UUID), zap.Int("port", s.Details.LanguageServicePort))
	return nil
}

func (r *repository) ActiveServer(ctx context.Context) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.memstore[r.active]
	if r.active == uuid.Nil || !ok {
		return nil, &errors.NoActiveSessionError{}
	}
	return mapper.ModelToSession(s), nil
}

func (r *repository) Remove(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memstore, id)
	if r.active == id {
		r.active = uuid.Nil
	}
	r.stats.Gauge(_gaugeActiveSessions).Update(float64(len(r.memstore)))
	return nil
}

// SessionCount returns the total count of connected sessions.
func (r *repository) SessionCount(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.memstore), nil
}

func (r *repository) SendRequest(ctx context.Context, method string, params interface{}, result interface{}, target Target) error {
	s, err := r.resolve(ctx, target)
	if err != nil {
		return err
	}
	if s.Conn == nil {
		return fmt.Errorf("session %s has no connection", s.UUID)
	}

	if _, err := s.Conn.Call(ctx, method, params, result); err != nil {
		return fmt.Errorf("sending %s: %w", method, err)
	}
	return nil
}

func (r *repository) resolve(ctx context.Context, target Target) (*entity.Session, error) {
	if target.Session != nil {
		return target.Session, nil
	}

	if target.Document != "" && r.resolver != nil {
		s, err := r.resolver.SessionForDocument(ctx, target.Document)
		if err != nil {
			r.logger.Warnw("resolving session for document", "document", string(target.Document), zap.Error(err))
		} else if s != nil {
			return s, nil
		}
	}

	return r.ActiveServer(ctx)
}

func (r *repository) ProvideTerminalProvider(tp editorhost.TerminalProvider) {
	if tp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.provider != nil {
		r.logger.Warn("terminal provider already set, ignoring later provider")
		return
	}
	r.provider = tp
	close(r.providerReady)
}

func (r *repository) AwaitTerminalProvider(ctx context.Context) (editorhost.TerminalProvider, error) {
	select {
	case <-r.providerReady:
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.provider, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", errors.ErrTerminalProviderUnavailable, ctx.Err())
	}
}

func (r *repository) TerminalProvider() (editorhost.TerminalProvider, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.provider, r.provider != nil
}
