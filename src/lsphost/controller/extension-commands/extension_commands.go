// Package extensioncommands carries out the editor commands the language server sends to the host.
package extensioncommands

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"github.com/uber/lsp-session-host/src/lsphost/internal/errors"
	"github.com/uber/lsp-session-host/src/lsphost/internal/platform"
	workspaceutils "github.com/uber/lsp-session-host/src/lsphost/internal/workspace-utils"
	"github.com/uber/lsp-session-host/src/lsphost/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=extensioncommandsmock/extension_commands_mock.go -package=extensioncommandsmock . Controller

const (
	_configKey = "extensionCommands"

	_errMultiChoice = "Multiple select is not currently supported."
)

// Config is the extensionCommands configuration block.
type Config struct {
	// InsertTextTargetsFilePath applies editor/insertText to the open editor for filePath instead of the active editor.
	InsertTextTargetsFilePath bool `yaml:"insertTextTargetsFilePath"`
}

// Controller carries out extension commands against the editor host.
type Controller interface {
	// InitSession begins tracking prompts opened on behalf of the session.
	InitSession(ctx context.Context, id uuid.UUID) error
	// EndSession cancels every prompt the session still has open.
	EndSession(ctx context.Context, id uuid.UUID) error
	// OpenPrompts returns the number of prompts the session has open.
	OpenPrompts(id uuid.UUID) int

	InvokeHostCommand(ctx context.Context, command string) (entity.EditorOperationResponse, error)
	ShowInputPrompt(ctx context.Context, args *entity.ShowInputPromptRequestArgs) (*entity.ShowInputPromptResponseBody, error)
	ShowChoicePrompt(ctx context.Context, args *entity.ShowChoicePromptRequestArgs) (*entity.ShowChoicePromptResponseBody, error)
	GetEditorContext(ctx context.Context) (*entity.EditorContext, error)
	InsertText(ctx context.Context, args *entity.InsertTextRequestArguments) (entity.EditorOperationResponse, error)
	SetSelection(ctx context.Context, args *entity.SetSelectionRequestArguments) (entity.EditorOperationResponse, error)
	OpenFile(ctx context.Context, filePath string) (entity.EditorOperationResponse, error)
	NewFile(ctx context.Context) (entity.EditorOperationResponse, error)
	CloseFile(ctx context.Context, filePath string) (entity.EditorOperationResponse, error)
	SaveFile(ctx context.Context, filePath string) (entity.EditorOperationResponse, error)
	ShowErrorMessage(ctx context.Context, message string) (entity.EditorOperationResponse, error)
	ShowWarningMessage(ctx context.Context, message string) (entity.EditorOperationResponse, error)
	ShowInformationMessage(ctx context.Context, message string) (entity.EditorOperationResponse, error)
	SetStatusBarMessage(ctx context.Context, details *entity.StatusBarMessageDetails) (entity.EditorOperationResponse, error)
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Config         config.Provider
	Host           editorhost.Host
	Platform       platform.Platform
	WorkspaceUtils workspaceutils.WorkspaceUtils
	Logger         *zap.SugaredLogger
}

type sessionPrompts struct {
	ctx    context.Context
	cancel context.CancelFunc
	open   int
}

type controller struct {
	cfg            Config
	host           editorhost.Host
	platform       platform.Platform
	workspaceUtils workspaceutils.WorkspaceUtils
	logger         *zap.SugaredLogger

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionPrompts
}

// New creates a new controller for extension commands.
func New(p Params) (Controller, error) {
	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
	}

	return &controller{
		cfg:            cfg,
		host:           p.Host,
		platform:       p.Platform,
		workspaceUtils: p.WorkspaceUtils,
		logger:         p.Logger,
		sessions:       make(map[uuid.UUID]*sessionPrompts),
	}, nil
}

func (c *controller) InitSession(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sessions[id]; ok {
		return fmt.Errorf("session %s already initialized", id)
	}
	sessionCtx, cancel := context.WithCancel(context.Background())
	c.sessions[id] = &sessionPrompts{ctx: sessionCtx, cancel: cancel}
	return nil
}

func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	s, ok := c.sessions[id]
	delete(c.sessions, id)
	c.mu.Unlock()

	if !ok {
		return &errors.UUIDNotFoundError{UUID: id}
	}
	if s.open > 0 {
		c.logger.Infow("cancelling open prompts of ended session", zap.Stringer("uuid", id), zap.Int("prompts", s.open))
	}
	s.cancel()
	return nil
}

func (c *controller) OpenPrompts(id uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.sessions[id]; ok {
		return s.open
	}
	return 0
}

func (c *controller) InvokeHostCommand(ctx context.Context, command string) (entity.EditorOperationResponse, error) {
	// The host dispatches against the workspace when no editor is focused.
	if err := c.host.DispatchCommand(ctx, c.host.ActiveTextEditor(), command); err != nil {
		return entity.EditorOperationUnsupported, fmt.Errorf("dispatching %q: %w", command, err)
	}
	return entity.EditorOperationCompleted, nil
}

func (c *controller) ShowInputPrompt(ctx context.Context, args *entity.ShowInputPromptRequestArgs) (*entity.ShowInputPromptResponseBody, error) {
	promptCtx, done := c.openPrompt(ctx)
	defer done()

	result, err := c.host.InputPrompt(promptCtx, args.Name)
	if err != nil {
		return nil, err
	}
	if result.Reason == entity.InputMenuResultCancelled || promptCtx.Err() != nil {
		return &entity.ShowInputPromptResponseBody{PromptCancelled: true}, nil
	}
	return &entity.ShowInputPromptResponseBody{ResponseText: result.Value}, nil
}

func (c *controller) ShowChoicePrompt(ctx context.Context, args *entity.ShowChoicePromptRequestArgs) (*entity.ShowChoicePromptResponseBody, error) {
	if args.IsMultiChoice {
		return nil, &errors.UnsupportedError{Method: entity.MethodShowChoicePrompt, Reason: _errMultiChoice}
	}

	defaultIndex := -1
	if len(args.DefaultChoices) > 0 {
		defaultIndex = args.DefaultChoices[0]
		if defaultIndex < 0 || defaultIndex >= len(args.Choices) {
			return nil, jsonrpc2.NewError(jsonrpc2.InvalidParams, fmt.Sprintf("default choice %d is out of range", defaultIndex))
		}
	}

	items := make([]entity.MenuItem, 0, len(args.Choices))
	for _, choice := range args.Choices {
		items = append(items, entity.MenuItem{Name: choice.Label, Display: choice.HelpMessage})
	}

	promptCtx, done := c.openPrompt(ctx)
	defer done()

	result, err := c.host.SelectMenu(promptCtx, args.Message, items)
	if err != nil {
		return nil, err
	}
	if result.Reason == entity.InputMenuResultCancelled || promptCtx.Err() != nil {
		return &entity.ShowChoicePromptResponseBody{PromptCancelled: true}, nil
	}

	index := result.Index
	if index < 0 {
		index = defaultIndex
	}
	if index < 0 || index >= len(args.Choices) {
		return &entity.ShowChoicePromptResponseBody{}, nil
	}
	return &entity.ShowChoicePromptResponseBody{ResponseText: args.Choices[index].Label}, nil
}

func (c *controller) GetEditorContext(ctx context.Context) (*entity.EditorContext, error) {
	editor := c.host.ActiveTextEditor()
	if editor == nil {
		return nil, &errors.NoActiveEditorError{}
	}

	return &entity.EditorContext{
		CurrentFilePath: editor.Path(),
		CursorPosition:  mapper.OptionalPointToPosition(editor.CursorBufferPosition()),
		SelectionRange:  mapper.OptionalBufferRangeToRange(editor.SelectedBufferRange()),
	}, nil
}

func (c *controller) InsertText(ctx context.Context, args *entity.InsertTextRequestArguments) (entity.EditorOperationResponse, error) {
	editor := c.host.ActiveTextEditor()
	if c.cfg.InsertTextTargetsFilePath && args.FilePath != "" {
		target, err := c.findOpenTextEditor(ctx, args.FilePath)
		if err != nil {
			return entity.EditorOperationUnsupported, err
		}
		if target != nil {
			editor = target
		}
	}
	if editor == nil {
		return entity.EditorOperationUnsupported, &errors.NoActiveEditorError{}
	}

	if err := editor.SetTextInBufferRange(mapper.RangeToBufferRange(args.InsertRange), args.InsertText); err != nil {
		return entity.EditorOperationUnsupported, fmt.Errorf("inserting text: %w", err)
	}
	return entity.EditorOperationCompleted, nil
}

func (c *controller) SetSelection(ctx context.Context, args *entity.SetSelectionRequestArguments) (entity.EditorOperationResponse, error) {
	editor := c.host.ActiveTextEditor()
	if editor == nil {
		return entity.EditorOperationUnsupported, &errors.NoActiveEditorError{}
	}

	if err := editor.SetSelectedBufferRange(mapper.RangeToBufferRange(args.SelectionRange)); err != nil {
		return entity.EditorOperationUnsupported, fmt.Errorf("setting selection: %w", err)
	}
	return entity.EditorOperationCompleted, nil
}

func (c *controller) OpenFile(ctx context.Context, filePath string) (entity.EditorOperationResponse, error) {
	normalized, err := c.normalizeFilePath(ctx, filePath)
	if err != nil {
		return entity.EditorOperationUnsupported, err
	}

	if _, err := c.host.Open(ctx, normalized); err != nil {
		return entity.EditorOperationUnsupported, fmt.Errorf("opening %q: %w", normalized, err)
	}
	return entity.EditorOperationCompleted, nil
}

func (c *controller) NewFile(ctx context.Context) (entity.EditorOperationResponse, error) {
	if _, err := c.host.Open(ctx, ""); err != nil {
		return entity.EditorOperationUnsupported, fmt.Errorf("opening untitled buffer: %w", err)
	}
	return entity.EditorOperationCompleted, nil
}

func (c *controller) CloseFile(ctx context.Context, filePath string) (entity.EditorOperationResponse, error) {
	editor, err := c.findOpenTextEditor(ctx, filePath)
	if err != nil {
		return entity.EditorOperationUnsupported, err
	}
	if editor == nil {
		return entity.EditorOperationCompleted, nil
	}

	// Unsaved changes are never discarded; the request still reports success.
	if editor.IsModified() {
		c.logger.Infow("not closing modified editor", "path", editor.Path())
		return entity.EditorOperationCompleted, nil
	}

	if err := editor.Destroy(); err != nil {
		return entity.EditorOperationUnsupported, fmt.Errorf("closing %q: %w", editor.Path(), err)
	}
	return entity.EditorOperationCompleted, nil
}

func (c *controller) SaveFile(ctx context.Context, filePath string) (entity.EditorOperationResponse, error) {
	editor, err := c.findOpenTextEditor(ctx, filePath)
	if err != nil {
		return entity.EditorOperationUnsupported, err
	}
	if editor == nil || !editor.IsModified() {
		return entity.EditorOperationCompleted, nil
	}

	if err := editor.Save(ctx); err != nil {
		return entity.EditorOperationUnsupported, fmt.Errorf("saving %q: %w", editor.Path(), err)
	}
	return entity.EditorOperationCompleted, nil
}

func (c *controller) ShowErrorMessage(ctx context.Context, message string) (entity.EditorOperationResponse, error) {
	c.host.AddError(message)
	return entity.EditorOperationCompleted, nil
}

func (c *controller) ShowWarningMessage(ctx context.Context, message string) (entity.EditorOperationResponse, error) {
	c.host.AddWarning(message)
	return entity.EditorOperationCompleted, nil
}

func (c *controller) ShowInformationMessage(ctx context.Context, message string) (entity.EditorOperationResponse, error) {
	c.host.AddInfo(message)
	return entity.EditorOperationCompleted, nil
}

func (c *controller) SetStatusBarMessage(ctx context.Context, details *entity.StatusBarMessageDetails) (entity.EditorOperationResponse, error) {
	return entity.EditorOperationUnsupported, nil
}

// openPrompt derives a context for a prompt that ends with the request or with the session that asked for it.
func (c *controller) openPrompt(ctx context.Context) (context.Context, func()) {
	promptCtx, cancel := context.WithCancel(ctx)

	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return promptCtx, cancel
	}

	c.mu.Lock()
	s, ok := c.sessions[id]
	if !ok {
		c.mu.Unlock()
		return promptCtx, cancel
	}
	s.open++
	c.mu.Unlock()

	stop := context.AfterFunc(s.ctx, cancel)
	return promptCtx, func() {
		stop()
		cancel()
		c.mu.Lock()
		s.open--
		c.mu.Unlock()
	}
}

func (c *controller) normalizeFilePath(ctx context.Context, filePath string) (string, error) {
	root, err := c.workspaceUtils.ProjectRoot(ctx, c.host.ProjectPaths())
	if err != nil {
		return "", fmt.Errorf("resolving project root: %w", err)
	}
	return workspaceutils.NormalizeFilePath(c.platform.GOOS(), root, filePath), nil
}

// findOpenTextEditor returns the open editor whose normalized path matches filePath, or nil.
func (c *controller) findOpenTextEditor(ctx context.Context, filePath string) (editorhost.TextEditor, error) {
	root, err := c.workspaceUtils.ProjectRoot(ctx, c.host.ProjectPaths())
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	goos := c.platform.GOOS()
	target := workspaceutils.NormalizeFilePath(goos, root, filePath)

	for _, editor := range c.host.TextEditors() {
		// Untitled buffers have no path to match.
		if editor.Path() == "" {
			continue
		}
		if workspaceutils.NormalizeFilePath(goos, root, editor.Path()) == target {
			return editor, nil
		}
	}
	return nil, nil
}
