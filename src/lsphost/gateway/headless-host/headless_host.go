// Package headlesshost provides the editor host of the standalone binary, which has no editor attached.
package headlesshost

import (
	"context"

	"github.com/uber/lsp-session-host/src/lsphost/entity"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"github.com/uber/lsp-session-host/src/lsphost/internal/errors"
	"github.com/uber/lsp-session-host/src/lsphost/internal/fs"
	"github.com/uber/lsp-session-host/src/lsphost/repository/session"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params are inbound parameters to initialize a new headless host.
type Params struct {
	fx.In

	Config config.Provider
	FS     fs.HostFS
	Logger *zap.SugaredLogger
}

type host struct {
	cfg    config.Provider
	fs     fs.HostFS
	logger *zap.SugaredLogger
	client protocol.Client
}

// New returns a Host that records notifications in the log and cancels every prompt.
func New(p Params) editorhost.Host {
	h := &host{
		cfg:    p.Config,
		fs:     p.FS,
		logger: p.Logger.Named("host"),
	}
	h.client = &logClient{host: h, logger: h.logger}
	return h
}

// AnnounceTerminalProvider hands tp to the session registry once the application starts.
func AnnounceTerminalProvider(lc fx.Lifecycle, sessions session.Repository, tp editorhost.TerminalProvider) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sessions.ProvideTerminalProvider(tp)
			return nil
		},
	})
}

func (h *host) ActiveTextEditor() editorhost.TextEditor {
	return nil
}

func (h *host) TextEditors() []editorhost.TextEditor {
	return nil
}

func (h *host) Open(ctx context.Context, path string) (editorhost.TextEditor, error) {
	h.logger.Infow("not opening file without an editor", "path", path)
	return nil, &errors.NoActiveEditorError{}
}

func (h *host) DispatchCommand(ctx context.Context, target editorhost.TextEditor, command string) error {
	h.logger.Infow("ignoring host command", "command", command)
	return nil
}

func (h *host) ProjectPaths() []string {
	wd, err := h.fs.Getwd()
	if err != nil {
		h.logger.Warnw("no project path", zap.Error(err))
		return nil
	}
	return []string{wd}
}

// launchSettings returns the configured launch settings, or nil when they cannot be read.
func (h *host) launchSettings() *entity.Settings {
	var settings entity.Settings
	if err := h.cfg.Get(entity.SettingsConfigKey).Populate(&settings); err != nil {
		h.logger.Warnw("reading settings", zap.Error(err))
		return nil
	}
	settings = settings.WithDefaults()
	return &settings
}

func (h *host) AddError(message string) {
	h.logger.Errorw(message)
}

func (h *host) AddWarning(message string) {
	h.logger.Warnw(message)
}

func (h *host) AddInfo(message string) {
	h.logger.Infow(message)
}

func (h *host) InputPrompt(ctx context.Context, message string) (entity.InputResult, error) {
	h.logger.Infow("cancelling input prompt", "message", message)
	return entity.InputResult{Reason: entity.InputMenuResultCancelled}, nil
}

func (h *host) SelectMenu(ctx context.Context, message string, items []entity.MenuItem) (entity.MenuResult, error) {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	h.logger.Infow("cancelling selection menu", "message", message, "items", names)
	return entity.MenuResult{Reason: entity.InputMenuResultCancelled, Index: -1}, nil
}

func (h *host) BaseProtocolClient() protocol.Client {
	return h.client
}
