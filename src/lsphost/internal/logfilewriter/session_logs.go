// Package logfilewriter manages the per-session log folders that the language server and its console write into.
package logfilewriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uber/lsp-session-host/src/lsphost/internal/clock"
	"github.com/uber/lsp-session-host/src/lsphost/internal/core"
	"github.com/uber/lsp-session-host/src/lsphost/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:generate mockgen -destination=logfilewritermock/session_logs_mock.go -package=logfilewritermock . SessionLogs

// Module is the Fx module for this package.
var Module = fx.Provide(New)

const (
	_configKeyLogging = "logging"
	_defaultDirName   = "lsphost-logs"
	_cacheDirName     = "lsp-session-host"
	_logExtension     = ".log"
)

// SessionLogs creates log folders and files for each language server session.
type SessionLogs interface {
	// NewFolder creates a folder named <unix seconds>-<pid> under the session log directory.
	NewFolder() (string, error)
	// FilePath returns the path of the log named baseName inside folder.
	FilePath(folder string, baseName string) string
	// OutputWriter returns a writer that appends each written line to the log named baseName inside folder.
	OutputWriter(folder string, baseName string) (io.WriteCloser, error)
}

// Params define the dependencies for SessionLogs.
type Params struct {
	fx.In

	Config config.Provider
	Clock  clock.Clock
	FS     fs.HostFS
}

type sessionLogs struct {
	directory string
	clock     clock.Clock
	fs        fs.HostFS
}

// New creates SessionLogs rooted at logging.sessionLogDirectory.
func New(p Params) (SessionLogs, error) {
	var cfg core.LoggingConfig
	if err := p.Config.Get(_configKeyLogging).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKeyLogging, err)
	}

	directory := cfg.SessionLogDirectory
	if directory == "" {
		directory = defaultDirectory(p.FS)
	}

	return &sessionLogs{
		directory: directory,
		clock:     p.Clock,
		fs:        p.FS,
	}, nil
}

// defaultDirectory keeps session logs in the user cache, or in the temporary directory when there is none.
func defaultDirectory(hostFS fs.HostFS) string {
	if cache, err := hostFS.UserCacheDir(); err == nil && cache != "" {
		return filepath.Join(cache, _cacheDirName, "logs")
	}
	return filepath.Join(hostFS.TempDir(), _defaultDirName)
}

func (s *sessionLogs) NewFolder() (string, error) {
	folder := filepath.Join(s.directory, fmt.Sprintf("%d-%d", s.clock.Now().Unix(), os.Getpid()))
	if err := s.fs.MkdirAll(folder); err != nil {
		return "", fmt.Errorf("creating session log folder: %w", err)
	}
	return folder, nil
}

func (s *sessionLogs) FilePath(folder string, baseName string) string {
	return filepath.Join(folder, baseName+_logExtension)
}

func (s *sessionLogs) OutputWriter(folder string, baseName string) (io.WriteCloser, error) {
	sink, closeSink, err := zap.Open(s.FilePath(folder, baseName))
	if err != nil {
		return nil, err
	}

	// Write via a logger for formatting, timestamp, and performance/buffering.
	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		zap.InfoLevel,
	)

	return &loggerWriter{logger: zap.New(fileCore).Sugar(), close: closeSink}, nil
}

type loggerWriter struct {
	logger *zap.SugaredLogger
	close  func()
}

// Write implements the io.Writer interface by sending data to the given logger.
func (o *loggerWriter) Write(p []byte) (n int, err error) {
	// Incoming data may contain multiple lines, including blank ones.
	// Split and log each line individually.
	lines := strings.Split(string(p), "\n")
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) > 0 {
			o.logger.Info(line)
		}
	}

	return len(p), nil
}

func (o *loggerWriter) Close() error {
	err := o.logger.Sync()
	if o.close != nil {
		o.close()
	}
	return err
}
