package executor

import (
	"os"
	"os/exec"

	"github.com/creack/pty"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a module to inject using fx.
var Module = fx.Provide(func(logger *zap.SugaredLogger) Executor {
	return NewExecutor(WithLogger(logger))
})

// Executor wraps the starting of "os/exec".Cmd's under a pseudo-terminal to allow adding logs to
// each exec and makes it easier to test.
type Executor interface {
	// StartPTY logs and starts the Cmd specified with a new pseudo-terminal as its stdin, stdout and stderr.
	// The returned file is the terminal's master side; the caller owns it.
	StartPTY(cmd *exec.Cmd, env []string) (*os.File, error)
}

// executorImp implements Executor
type executorImp struct {
	Logger *zap.SugaredLogger
	// StartFunc may be nil to use executorImp in tests.
	StartFunc func(cmd *exec.Cmd) (*os.File, error)
}

// Option defines options to customize executorImp's behavior
type Option func(*executorImp)

// WithLogger overrides the default noop logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(executor *executorImp) {
		executor.Logger = logger
	}
}

// WithStartFunc provides customized start behavior for executorImp
func WithStartFunc(startFunc func(cmd *exec.Cmd) (*os.File, error)) Option {
	return func(executor *executorImp) {
		executor.StartFunc = startFunc
	}
}

// NewExecutor - creates a new executorImp with a noop logger and pty.Start as its start function
func NewExecutor(opts ...Option) Executor {
	executor := &executorImp{
		Logger:    zap.NewNop().Sugar(),
		StartFunc: pty.Start,
	}
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

// StartPTY - logs the Path/Args and calls StartFunc if it is set.
func (l *executorImp) StartPTY(cmd *exec.Cmd, env []string) (*os.File, error) {
	l.logCommand(cmd)

	if l.StartFunc == nil {
		l.Logger.Warn("missing StartFunc - skipped execution")
		return nil, nil
	}

	if env != nil {
		cmd.Env = env
	}
	return l.StartFunc(cmd)
}

// Logs the command specified: Path, Dir, Args
func (l *executorImp) logCommand(cmd *exec.Cmd) {
	var args []string
	if len(cmd.Args) > 1 {
		args = cmd.Args[1:] // First arg is always the command itself
	}

	l.Logger.Infow("Exec",
		"Path", cmd.Path,
		"Dir", cmd.Dir,
		"Args", args,
	)
}
