// Package ptyterminal hosts terminal processes inside pseudo-terminals owned by this process.
package ptyterminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"github.com/uber/lsp-session-host/src/lsphost/internal/executor"
	"github.com/uber/lsp-session-host/src/lsphost/internal/logfilewriter"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_consoleLogName = "Console"
	_readBufferSize = 4096
)

// Default console size; PSReadLine renders against it.
var _defaultSize = pty.Winsize{Rows: 50, Cols: 160}

var _signalNames = map[syscall.Signal]string{
	syscall.SIGHUP:  "SIGHUP",
	syscall.SIGINT:  "SIGINT",
	syscall.SIGQUIT: "SIGQUIT",
	syscall.SIGABRT: "SIGABRT",
	syscall.SIGKILL: "SIGKILL",
	syscall.SIGSEGV: "SIGSEGV",
	syscall.SIGPIPE: "SIGPIPE",
	syscall.SIGTERM: "SIGTERM",
}

// Params are inbound parameters to initialize a new terminal provider.
type Params struct {
	fx.In

	Executor    executor.Executor
	SessionLogs logfilewriter.SessionLogs
	Logger      *zap.SugaredLogger
}

type provider struct {
	executor    executor.Executor
	sessionLogs logfilewriter.SessionLogs
	logger      *zap.SugaredLogger
}

// New creates a TerminalProvider that starts each shell under a new pseudo-terminal.
func New(p Params) editorhost.TerminalProvider {
	return &provider{
		executor:    p.Executor,
		sessionLogs: p.SessionLogs,
		logger:      p.Logger,
	}
}

func (p *provider) OpenTerminal(ctx context.Context, opts entity.OpenTerminalOptions) (editorhost.Terminal, error) {
	if opts.Shell == "" {
		return nil, errors.New("no shell to start")
	}

	cmd := exec.Command(opts.Shell, opts.Args...)
	ptmx, err := p.executor.StartPTY(cmd, nil)
	if err != nil {
		return nil, fmt.Errorf("starting %q: %w", opts.Shell, err)
	}
	if ptmx == nil || cmd.Process == nil {
		return nil, fmt.Errorf("starting %q: no process was started", opts.Shell)
	}

	logger := p.logger.With("pid", cmd.Process.Pid, "title", opts.Title)
	if err := pty.Setsize(ptmx, &_defaultSize); err != nil {
		logger.Debugw("could not size terminal", zap.Error(err))
	}

	var console io.WriteCloser = nopWriteCloser{Writer: io.Discard}
	if opts.LogFolder != "" {
		w, err := p.sessionLogs.OutputWriter(opts.LogFolder, _consoleLogName)
		if err != nil {
			logger.Warnw("console output will not be recorded", zap.Error(err))
		} else {
			console = w
		}
	}

	t := &terminal{
		cmd:     cmd,
		ptmx:    ptmx,
		console: console,
		logger:  logger,
		exited:  make(chan struct{}),
		drained: make(chan struct{}),
	}
	go t.drain()
	go t.wait()
	return t, nil
}

type terminal struct {
	cmd     *exec.Cmd
	ptmx    *os.File
	console io.WriteCloser
	logger  *zap.SugaredLogger

	exited  chan struct{}
	drained chan struct{}

	mu             sync.Mutex
	nextID         int
	exitListeners  map[int]func(code int, signal string)
	errorListeners map[int]func(err error)
	// status is set once the process has been reaped.
	status   *exitStatus
	disposed bool
}

type exitStatus struct {
	code   int
	signal string
}

func (t *terminal) Show(preserveFocus bool) {
	t.logger.Debugw("pseudo-terminal has no window to show", "preserveFocus", preserveFocus)
}

func (t *terminal) Process() editorhost.PseudoProcess {
	return t
}

// Dispose kills the process if it is still running and closes the pseudo-terminal. It is idempotent.
func (t *terminal) Dispose() error {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return nil
	}
	t.disposed = true
	t.exitListeners = nil
	t.errorListeners = nil
	t.mu.Unlock()

	var err error
	select {
	case <-t.exited:
	default:
		if killErr := t.cmd.Process.Kill(); killErr != nil && !errors.Is(killErr, os.ErrProcessDone) {
			err = multierr.Append(err, fmt.Errorf("killing terminal process: %w", killErr))
		}
	}
	if closeErr := t.ptmx.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		err = multierr.Append(err, fmt.Errorf("closing pseudo-terminal: %w", closeErr))
	}
	return err
}

func (t *terminal) Pid() int {
	return t.cmd.Process.Pid
}

func (t *terminal) Kill(sig os.Signal) error {
	return t.cmd.Process.Signal(sig)
}

// OnExit subscribes listener to the exit of the process. A listener added after the exit is called right away.
func (t *terminal) OnExit(listener func(code int, signal string)) func() {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return func() {}
	}
	if status := t.status; status != nil {
		t.mu.Unlock()
		listener(status.code, status.signal)
		return func() {}
	}
	defer t.mu.Unlock()

	if t.exitListeners == nil {
		t.exitListeners = make(map[int]func(int, string))
	}
	t.nextID++
	id := t.nextID
	t.exitListeners[id] = listener

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.exitListeners, id)
	}
}

func (t *terminal) OnError(listener func(err error)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disposed {
		return func() {}
	}
	if t.errorListeners == nil {
		t.errorListeners = make(map[int]func(error))
	}
	t.nextID++
	id := t.nextID
	t.errorListeners[id] = listener

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.errorListeners, id)
	}
}

// drain copies terminal output into the console log until the pseudo-terminal is closed.
func (t *terminal) drain() {
	defer close(t.drained)
	defer func() {
		if err := t.console.Close(); err != nil {
			t.logger.Debugw("closing console log", zap.Error(err))
		}
	}()

	buf := make([]byte, _readBufferSize)
	for {
		n, err := t.ptmx.Read(buf)
		if n > 0 {
			if _, werr := t.console.Write(buf[:n]); werr != nil {
				t.logger.Debugw("writing console log", zap.Error(werr))
			}
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) && !t.isDisposed() {
			t.emitError(err)
		}
		return
	}
}

// wait reaps the process and reports how it ended.
func (t *terminal) wait() {
	defer close(t.exited)

	err := t.cmd.Wait()
	code, signal := exitCode(t.cmd.ProcessState)
	if code == -1 && signal == "" && err != nil {
		t.logger.Warnw("waiting for terminal process", zap.Error(err))
	}
	t.emitExit(code, signal)
}

func (t *terminal) isDisposed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disposed
}

func (t *terminal) emitExit(code int, signal string) {
	t.mu.Lock()
	t.status = &exitStatus{code: code, signal: signal}
	listeners := make([]func(int, string), 0, len(t.exitListeners))
	for _, l := range t.exitListeners {
		listeners = append(listeners, l)
	}
	t.mu.Unlock()

	for _, l := range listeners {
		l(code, signal)
	}
}

func (t *terminal) emitError(err error) {
	t.mu.Lock()
	listeners := make([]func(error), 0, len(t.errorListeners))
	for _, l := range t.errorListeners {
		listeners = append(listeners, l)
	}
	t.mu.Unlock()

	for _, l := range listeners {
		l(err)
	}
}

// exitCode returns the exit code, or -1 and the signal name when a signal ended the process.
func exitCode(state *os.ProcessState) (int, string) {
	if state == nil {
		return -1, ""
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return -1, signalName(ws.Signal())
	}
	return state.ExitCode(), ""
}

func signalName(sig syscall.Signal) string {
	if name, ok := _signalNames[sig]; ok {
		return name
	}
	return sig.String()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
