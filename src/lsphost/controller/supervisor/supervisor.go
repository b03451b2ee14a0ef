// Package supervisor launches the language server inside a host terminal and supervises the resulting session.
package supervisor

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"github.com/uber/lsp-session-host/src/lsphost/internal/clock"
	"github.com/uber/lsp-session-host/src/lsphost/internal/errors"
	"github.com/uber/lsp-session-host/src/lsphost/internal/jsonrpcfx"
	"github.com/uber/lsp-session-host/src/lsphost/internal/logfilewriter"
	"github.com/uber/lsp-session-host/src/lsphost/internal/platform"
	"github.com/uber/lsp-session-host/src/lsphost/internal/serverprocess"
	"github.com/uber/lsp-session-host/src/lsphost/internal/sessionfile"
	"github.com/uber/lsp-session-host/src/lsphost/mapper"
	"github.com/uber/lsp-session-host/src/lsphost/repository/session"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=supervisormock/supervisor_mock.go -package=supervisormock . Controller

const (
	// Metric names
	_counterSessionStart          = "session_start"
	_counterUnexpectedTermination = "unexpected_termination"
	_timerHandshakeDuration       = "handshake_duration"

	_resultConnected = "connected"

	_restartPrompt = "The PowerShell session has terminated unexpectedly. Restart it?"
	_restartYes    = "Yes"
	_restartNo     = "No"
)

// Controller supervises a single language server session.
type Controller interface {
	// Start launches the language server and returns once the session is connected.
	Start(ctx context.Context) (*entity.Session, error)
	// Restart disposes the current session and starts a new one.
	Restart(ctx context.Context) (*entity.Session, error)
	// Dispose releases every resource of the current session. It is safe to call more than once.
	Dispose(ctx context.Context) error
	State() entity.SessionState
	ShowConsole(preserveFocus bool)
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Config      config.Provider
	Lifecycle   fx.Lifecycle
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
	Clock       clock.Clock
	Host        editorhost.Host
	Sessions    session.Repository
	Handshake   sessionfile.Handshake
	JSONRPC     jsonrpcfx.JSONRPCModule
	SessionLogs logfilewriter.SessionLogs
	Platform    platform.Platform
}

type controller struct {
	settings    entity.Settings
	logger      *zap.SugaredLogger
	stats       tally.Scope
	clock       clock.Clock
	host        editorhost.Host
	sessions    session.Repository
	handshake   sessionfile.Handshake
	jsonrpc     jsonrpcfx.JSONRPCModule
	sessionLogs logfilewriter.SessionLogs
	platform    platform.Platform

	// ctx bounds background work started by the controller itself.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	state   entity.SessionState
	current *attempt
}

// New creates a supervisor that starts the language server when the application starts and disposes it on stop.
func New(p Params) (Controller, error) {
	var settings entity.Settings
	if err := p.Config.Get(entity.SettingsConfigKey).Populate(&settings); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.SettingsConfigKey, err)
	}

	c := &controller{
		settings:    settings.WithDefaults(),
		logger:      p.Logger,
		stats:       p.Stats,
		clock:       p.Clock,
		host:        p.Host,
		sessions:    p.Sessions,
		handshake:   p.Handshake,
		jsonrpc:     p.JSONRPC,
		sessionLogs: p.SessionLogs,
		platform:    p.Platform,
		state:       entity.SessionStateIdle,
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			c.wg.Add(1)
			go func() {
				defer c.wg.Done()
				// Failures are logged and reported to the host by Start.
				c.Start(c.ctx)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := c.Dispose(ctx)
			c.cancel()
			c.wg.Wait()
			return err
		},
	})
	return c, nil
}

func (c *controller) Start(ctx context.Context) (*entity.Session, error) {
	a, err := c.begin(ctx)
	if err != nil {
		return nil, err
	}

	s, err := c.run(a)
	if err != nil {
		return nil, c.fail(a, err)
	}
	return s, nil
}

func (c *controller) Restart(ctx context.Context) (*entity.Session, error) {
	if err := c.Dispose(ctx); err != nil {
		c.logger.Warnw("disposing session before restart", zap.Error(err))
	}

	c.mu.Lock()
	c.state = entity.SessionStateIdle
	c.current = nil
	c.mu.Unlock()

	c.logger.Info("restarting language server session")
	return c.Start(ctx)
}

func (c *controller) Dispose(ctx context.Context) error {
	c.mu.Lock()
	a := c.current
	c.state = entity.SessionStateDisposed
	c.mu.Unlock()

	if a == nil {
		return nil
	}
	if err := a.teardown(); err != nil {
		return fmt.Errorf("disposing session %s: %w", a.id, err)
	}
	return nil
}

func (c *controller) State() entity.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controller) ShowConsole(preserveFocus bool) {
	c.mu.Lock()
	a := c.current
	c.mu.Unlock()
	if a == nil {
		return
	}

	if t := a.currentTerminal(); t != nil {
		t.Show(preserveFocus)
	}
}

// begin claims the controller for a new attempt. Only an idle controller can be started.
func (c *controller) begin(ctx context.Context) (*attempt, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generating session id: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != entity.SessionStateIdle {
		return nil, fmt.Errorf("cannot start a session in state %s", c.state)
	}

	c.current = newAttempt(ctx, id, c.sessionLogger(id))
	if _, ok := c.sessions.TerminalProvider(); ok {
		c.state = entity.SessionStateLaunching
	} else {
		c.state = entity.SessionStateAwaitingTerminalProvider
	}
	return c.current, nil
}

// sessionLogger scopes the logger to one session, raised to the configured language server log level.
func (c *controller) sessionLogger(id uuid.UUID) *zap.SugaredLogger {
	logger := c.logger.With(zap.Stringer("session", id))
	// zap.IncreaseLevel cannot lower the level of the host logger.
	if level := mapper.LogLevelToZap(c.settings.Developer.EditorServicesLogLevel); level > c.logger.Level() {
		logger = logger.WithOptions(zap.IncreaseLevel(level))
	}
	return logger
}

// transition moves the state machine forward unless the attempt has been superseded, failed, or disposed.
func (c *controller) transition(a *attempt, to entity.SessionState) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != a || c.state.Terminal() {
		return errors.ErrSessionDisposed
	}
	c.state = to
	return nil
}

func (c *controller) run(a *attempt) (*entity.Session, error) {
	tp, ok := c.sessions.TerminalProvider()
	if !ok {
		a.logger.Info("waiting for a terminal provider")
		var err error
		if tp, err = c.sessions.AwaitTerminalProvider(a.ctx); err != nil {
			return nil, a.err(err)
		}
		if err := c.transition(a, entity.SessionStateLaunching); err != nil {
			return nil, err
		}
	}

	folder, err := c.sessionLogs.NewFolder()
	if err != nil {
		return nil, err
	}
	launch := newLaunchSpec(
		c.settings,
		c.platform.ExecutablePath(c.settings),
		c.sessionLogs.FilePath(folder, _serverLogName),
		c.handshake.NewPath(),
	)

	if err := c.handshake.Delete(launch.SessionFilePath); err != nil {
		return nil, err
	}
	if err := a.onTeardown(func() error { return c.handshake.Delete(launch.SessionFilePath) }); err != nil {
		return nil, err
	}

	goos := c.platform.GOOS()
	a.logger.Infow("Language server starting",
		"exe", launch.ExecutablePath,
		"args", launch.ShellArgs(goos),
		"logFolder", folder,
	)

	terminal, err := tp.OpenTerminal(a.ctx, launch.TerminalOptions(goos))
	if err != nil {
		return nil, a.err(&errors.TerminalLaunchError{Err: err})
	}
	if err := a.setTerminal(terminal); err != nil {
		return nil, err
	}

	process := serverprocess.New(terminal.Process(), a.logger)
	unsubscribeExit := process.OnExit(func(code int, signal string) {
		c.terminate(a, &errors.UnexpectedTerminationError{Code: code, Signal: signal})
	})
	unsubscribeError := process.OnError(func(err error) {
		c.terminate(a, &errors.UnexpectedTerminationError{Code: -1, Err: err})
	})
	if err := a.onTeardown(func() error {
		unsubscribeError()
		unsubscribeExit()
		process.Dispose()
		return nil
	}); err != nil {
		return nil, err
	}

	if err := c.transition(a, entity.SessionStateAwaitingHandshake); err != nil {
		return nil, err
	}
	started := c.clock.Now()
	details, err := c.handshake.Await(a.ctx, launch.SessionFilePath, c.handshake.Timeout())
	c.stats.Timer(_timerHandshakeDuration).Record(c.clock.Now().Sub(started))
	if err != nil {
		return nil, a.err(err)
	}

	if err := c.transition(a, entity.SessionStateConnecting); err != nil {
		return nil, err
	}
	conn, err := c.jsonrpc.Connect(a.ctx, a.id, details.LanguageServicePort)
	if err != nil {
		return nil, a.err(&errors.ConnectionError{Port: details.LanguageServicePort, Err: err})
	}
	if err := a.onTeardown(conn.Close); err != nil {
		return nil, err
	}

	s := &entity.Session{
		UUID:      a.id,
		Conn:      conn,
		Server:    protocol.ServerDispatcher(conn, a.logger.Desugar()),
		Process:   process,
		Details:   *details,
		Launch:    launch,
		LogFolder: folder,
	}
	if err := c.sessions.SetActiveServer(a.ctx, s); err != nil {
		return nil, err
	}
	if err := a.onTeardown(func() error { return c.sessions.Remove(context.Background(), s.UUID) }); err != nil {
		return nil, err
	}
	a.setSession(s)

	if err := c.transition(a, entity.SessionStateConnected); err != nil {
		return nil, err
	}
	c.stats.Tagged(map[string]string{"result": _resultConnected}).Counter(_counterSessionStart).Inc(1)
	a.logger.Infow("Language service connected",
		zap.Int("port", s.Details.LanguageServicePort),
		zap.Int("pid", s.Process.Pid()),
	)
	return s, nil
}

// fail tears the attempt down and reports err once. Failures caused by disposal are not reported.
func (c *controller) fail(a *attempt, err error) error {
	c.mu.Lock()
	disposed := errors.IsDisposed(err) || c.current != a || c.state == entity.SessionStateDisposed
	if !disposed {
		c.state = entity.SessionStateFailed
	}
	c.mu.Unlock()

	if terr := a.teardown(); terr != nil {
		c.logger.Warnw("releasing resources of failed session", zap.Error(terr))
	}
	if disposed {
		return errors.ErrSessionDisposed
	}

	kind := errors.FailureKind(err)
	c.stats.Tagged(map[string]string{"result": kind}).Counter(_counterSessionStart).Inc(1)
	c.logger.Errorw("language server session failed to start", "kind", kind, zap.Error(err))
	c.host.AddError(err.Error())
	return err
}

// terminate is called by the process adapter when the server process exits or its terminal fails.
func (c *controller) terminate(a *attempt, termination *errors.UnexpectedTerminationError) {
	c.mu.Lock()
	if c.current != a {
		c.mu.Unlock()
		return
	}
	if c.state != entity.SessionStateConnected {
		c.mu.Unlock()
		// An in-flight start observes the cause and fails with it.
		a.cancel(termination)
		return
	}
	c.state = entity.SessionStateFailed
	c.mu.Unlock()

	c.stats.Counter(_counterUnexpectedTermination).Inc(1)
	c.logger.Errorw("language server terminated unexpectedly", "kind", errors.KindUnexpectedTermination, zap.Error(termination))

	// Teardown disposes the adapter that is delivering this event, so it runs elsewhere.
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := a.teardown(); err != nil {
			c.logger.Warnw("releasing resources of terminated session", zap.Error(err))
		}
		c.host.AddError(termination.Error())
		c.promptRestart(a)
	}()
}

// promptRestart asks the user whether to restart after an unexpected termination. Nothing restarts without consent.
func (c *controller) promptRestart(a *attempt) {
	items := []entity.MenuItem{
		{Name: _restartYes, Display: "Start a new language server session"},
		{Name: _restartNo, Display: "Leave the language server stopped"},
	}
	result, err := c.host.SelectMenu(c.ctx, _restartPrompt, items)
	if err != nil {
		c.logger.Warnw("asking to restart the language server", zap.Error(err))
	}
	restart := err == nil &&
		result.Reason == entity.InputMenuResultCompleted &&
		result.Index >= 0 && result.Index < len(items) &&
		items[result.Index].Name == _restartYes

	c.mu.Lock()
	if c.current != a || c.state != entity.SessionStateFailed {
		c.mu.Unlock()
		return
	}
	if !restart {
		c.state = entity.SessionStateDisposed
	}
	c.mu.Unlock()

	if !restart {
		c.logger.Info("language server left stopped")
		return
	}
	if _, err := c.Restart(c.ctx); err != nil && !errors.IsDisposed(err) {
		c.logger.Warnw("restarting language server", zap.Error(err))
	}
}
