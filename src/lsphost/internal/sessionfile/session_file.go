// Package sessionfile implements the file-based handshake through which the language server reports its port.
package sessionfile

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"github.com/uber/lsp-session-host/src/lsphost/internal/clock"
	"github.com/uber/lsp-session-host/src/lsphost/internal/errors"
	"github.com/uber/lsp-session-host/src/lsphost/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeySessionFile = "sessionFile"
	_fileNamePrefix       = "PSES-Host"

	_defaultPollInterval = 500 * time.Millisecond
	_defaultTimeout      = 120 * time.Second
)

//go:generate mockgen -destination=sessionfilemock/session_file_mock.go -package=sessionfilemock . Handshake

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Handshake manages the session file written by the language server once it has started.
type Handshake interface {
	// NewPath returns a fresh session file path for one launch attempt.
	NewPath() string
	// Timeout is the configured upper bound for Await.
	Timeout() time.Duration
	// Delete removes the session file. A missing file is not an error.
	Delete(path string) error
	// Await waits for the session file at path and returns its details, deleting the file once it has been read.
	Await(ctx context.Context, path string, timeout time.Duration) (*entity.SessionDetails, error)
}

// Config is the sessionFile configuration block.
type Config struct {
	Directory                string `yaml:"directory"`
	PollIntervalMilliseconds int    `yaml:"pollIntervalMilliseconds"`
	TimeoutSeconds           int    `yaml:"timeoutSeconds"`
}

type module struct {
	directory    string
	pollInterval time.Duration
	timeout      time.Duration

	clock    clock.Clock
	fs       fs.HostFS
	logger   *zap.SugaredLogger
	randIntN func(n int) int
}

// Params define values to be used by Handshake.
type Params struct {
	fx.In

	Config config.Provider
	Clock  clock.Clock
	FS     fs.HostFS
	Logger *zap.SugaredLogger
}

// New creates a new Handshake.
func New(p Params) (Handshake, error) {
	m := module{
		clock:    p.Clock,
		fs:       p.FS,
		logger:   p.Logger,
		randIntN: rand.Intn,
	}

	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	if err := m.fs.MkdirAll(m.directory); err != nil {
		return nil, fmt.Errorf("creating session file directory: %w", err)
	}

	return &m, nil
}

func (m *module) NewPath() string {
	id := 100000 + m.randIntN(900000)
	return filepath.Join(m.directory, fmt.Sprintf("%s-%d-%d", _fileNamePrefix, os.Getpid(), id))
}

func (m *module) Timeout() time.Duration {
	return m.timeout
}

func (m *module) Delete(path string) error {
	if err := m.fs.RemoveIfExists(path); err != nil {
		return fmt.Errorf("deleting session file: %w", err)
	}
	return nil
}

func (m *module) Await(ctx context.Context, path string, timeout time.Duration) (*entity.SessionDetails, error) {
	deadline := m.clock.After(timeout)
	ticker := m.clock.NewTicker(m.pollInterval)
	defer ticker.Stop()

	changed, stopWatching := m.watch(path)
	defer stopWatching()

	for {
		if details, found, err := m.read(path); found {
			return details, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			if details, found, err := m.read(path); found {
				return details, err
			}
			return nil, &errors.HandshakeTimeoutError{Path: path, Timeout: timeout}
		case <-ticker.C():
		case <-changed:
		}
	}
}

// read reports found once the file holds content; the file is deleted before returning in that case.
func (m *module) read(path string) (*entity.SessionDetails, bool, error) {
	data, err := m.fs.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			m.logger.Debugw("session file not readable yet", "path", path, zap.Error(err))
		}
		return nil, false, nil
	}
	if len(data) == 0 {
		return nil, false, nil
	}

	if err := m.Delete(path); err != nil {
		m.logger.Warnw("could not delete session file", "path", path, zap.Error(err))
	}

	details, err := parse(path, data)
	return details, true, err
}

func parse(path string, data []byte) (*entity.SessionDetails, error) {
	var details entity.SessionDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, &errors.HandshakeMalformedError{Path: path, Err: err}
	}

	switch details.Status {
	case entity.SessionStatusFailed:
		return nil, &errors.HandshakeFailedError{Reason: details.Reason}
	case entity.SessionStatusStarted:
		if details.LanguageServicePort <= 0 {
			return nil, &errors.HandshakeMalformedError{
				Path: path,
				Err:  fmt.Errorf("invalid languageServicePort %d", details.LanguageServicePort),
			}
		}
		return &details, nil
	default:
		return nil, &errors.HandshakeMalformedError{
			Path: path,
			Err:  fmt.Errorf("unknown status %q", details.Status),
		}
	}
}

// watch signals on the returned channel when path is created or written.
// Polling still drives Await when the watcher cannot be set up.
func (m *module) watch(path string) (<-chan struct{}, func()) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		m.logger.Debugw("falling back to polling for session file", zap.Error(err))
		return nil, func() {}
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		m.logger.Debugw("falling back to polling for session file", zap.Error(err))
		return nil, func() {}
	}

	target := filepath.Clean(path)
	changed := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) == target && (event.Has(fsnotify.Create) || event.Has(fsnotify.Write)) {
					select {
					case changed <- struct{}{}:
					default:
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				m.logger.Debugw("session file watcher error", zap.Error(err))
			}
		}
	}()

	return changed, func() {
		watcher.Close()
		<-done
	}
}

func (m *module) processConfig(cfg config.Provider) error {
	var c Config
	if err := cfg.Get(_configKeySessionFile).Populate(&c); err != nil {
		// incorrectly formatted config
		return fmt.Errorf("getting config field %q: %w", _configKeySessionFile, err)
	}

	m.directory = c.Directory
	if m.directory == "" {
		m.directory = filepath.Join(m.fs.TempDir(), "lsphost-sessions")
	}

	m.pollInterval = _defaultPollInterval
	if c.PollIntervalMilliseconds > 0 {
		m.pollInterval = time.Duration(c.PollIntervalMilliseconds) * time.Millisecond
	}

	m.timeout = _defaultTimeout
	if c.TimeoutSeconds > 0 {
		m.timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}

	return nil
}
