// Package serverprocess presents the pseudo-process of a host terminal as an ordinary child process.
package serverprocess

import (
	"errors"
	"io"
	"os"
	"sync"
	"syscall"

	"github.com/uber/lsp-session-host/src/lsphost/entity"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"go.uber.org/zap"
)

// A PTY master reports this once its child has exited.
const _terminalTeardownMessage = "read EIO"

// Process is the child-process view of a terminal pseudo-process.
// An exit listener added after the process exited is called immediately with the recorded status.
type Process interface {
	entity.ServerProcess
	// Dispose removes every subscription. It is safe to call more than once.
	Dispose()
}

type exitListener struct {
	id int
	fn func(code int, signal string)
}

type errorListener struct {
	id int
	fn func(err error)
}

type process struct {
	pty    editorhost.PseudoProcess
	logger *zap.SugaredLogger

	mu             sync.Mutex
	nextID         int
	exitListeners  []exitListener
	errorListeners []errorListener
	unsubscribe    []func()
	exit           *exitStatus
	disposed       bool
}

type exitStatus struct {
	code   int
	signal string
}

// New wraps pty and starts relaying its events.
func New(pty editorhost.PseudoProcess, logger *zap.SugaredLogger) Process {
	p := &process{
		pty:    pty,
		logger: logger.With("pid", pty.Pid()),
	}

	p.unsubscribe = append(p.unsubscribe,
		pty.OnExit(p.handleExit),
		pty.OnError(p.handleError),
	)
	return p
}

func (p *process) Stderr() io.Reader {
	return emptyReader{}
}

func (p *process) Pid() int {
	return p.pty.Pid()
}

func (p *process) Kill(sig os.Signal) error {
	return p.pty.Kill(sig)
}

func (p *process) OnExit(listener func(code int, signal string)) func() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return func() {}
	}
	if exit := p.exit; exit != nil {
		p.mu.Unlock()
		listener(exit.code, exit.signal)
		return func() {}
	}
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID
	p.exitListeners = append(p.exitListeners, exitListener{id: id, fn: listener})

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, l := range p.exitListeners {
			if l.id == id {
				p.exitListeners = append(p.exitListeners[:i:i], p.exitListeners[i+1:]...)
				return
			}
		}
	}
}

func (p *process) OnError(listener func(err error)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disposed {
		return func() {}
	}
	p.nextID++
	id := p.nextID
	p.errorListeners = append(p.errorListeners, errorListener{id: id, fn: listener})

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, l := range p.errorListeners {
			if l.id == id {
				p.errorListeners = append(p.errorListeners[:i:i], p.errorListeners[i+1:]...)
				return
			}
		}
	}
}

func (p *process) Dispose() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.disposed = true
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.exitListeners = nil
	p.errorListeners = nil
	p.mu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
}

func (p *process) handleExit(code int, signal string) {
	p.logger.Infow("language server process exited", "code", code, "signal", signal)

	p.mu.Lock()
	p.exit = &exitStatus{code: code, signal: signal}
	listeners := make([]exitListener, len(p.exitListeners))
	copy(listeners, p.exitListeners)
	p.mu.Unlock()

	for _, l := range listeners {
		l.fn(code, signal)
	}
}

func (p *process) handleError(err error) {
	if isTerminalTeardown(err) {
		return
	}
	p.logger.Errorw("language server process error", zap.Error(err))

	p.mu.Lock()
	listeners := make([]errorListener, len(p.errorListeners))
	copy(listeners, p.errorListeners)
	p.mu.Unlock()

	for _, l := range listeners {
		l.fn(err)
	}
}

func isTerminalTeardown(err error) bool {
	if err == nil {
		return true
	}
	return err.Error() == _terminalTeardownMessage || errors.Is(err, syscall.EIO)
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
