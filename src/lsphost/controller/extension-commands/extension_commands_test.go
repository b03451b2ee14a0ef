package extensioncommands

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host/editorhostmock"
	"github.com/uber/lsp-session-host/src/lsphost/internal/errors"
	"github.com/uber/lsp-session-host/src/lsphost/internal/platform/platformmock"
	"github.com/uber/lsp-session-host/src/lsphost/internal/workspace-utils/workspaceutilsmock"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testMocks struct {
	host           *editorhostmock.MockHost
	platform       *platformmock.MockPlatform
	workspaceUtils *workspaceutilsmock.MockWorkspaceUtils
}

func newTestController(t *testing.T, yaml string) (*controller, testMocks) {
	ctrl := gomock.NewController(t)
	mocks := testMocks{
		host:           editorhostmock.NewMockHost(ctrl),
		platform:       platformmock.NewMockPlatform(ctrl),
		workspaceUtils: workspaceutilsmock.NewMockWorkspaceUtils(ctrl),
	}

	cfg, err := config.NewYAML(config.Source(strings.NewReader(yaml)))
	require.NoError(t, err)

	c, err := New(Params{
		Config:         cfg,
		Host:           mocks.host,
		Platform:       mocks.platform,
		WorkspaceUtils: mocks.workspaceUtils,
		Logger:         zap.NewNop().Sugar(),
	})
	require.NoError(t, err)
	return c.(*controller), mocks
}

// expectProjectRoot sets up path normalization against /proj for goos.
func (m testMocks) expectProjectRoot(goos string) {
	m.host.EXPECT().ProjectPaths().Return([]string{"/proj"}).AnyTimes()
	m.workspaceUtils.EXPECT().ProjectRoot(gomock.Any(), []string{"/proj"}).Return("/proj", nil).AnyTimes()
	m.platform.EXPECT().GOOS().Return(goos).AnyTimes()
}

func newEditor(ctrl *gomock.Controller, path string) *editorhostmock.MockTextEditor {
	e := editorhostmock.NewMockTextEditor(ctrl)
	e.EXPECT().Path().Return(path).AnyTimes()
	return e
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, _ := newTestController(t, "{}")
		assert.False(t, c.cfg.InsertTextTargetsFilePath)
	})

	t.Run("configured", func(t *testing.T) {
		c, _ := newTestController(t, "extensionCommands:\n  insertTextTargetsFilePath: true\n")
		assert.True(t, c.cfg.InsertTextTargetsFilePath)
	})

	t.Run("invalid", func(t *testing.T) {
		cfg, err := config.NewYAML(config.Source(strings.NewReader("extensionCommands: [1]")))
		require.NoError(t, err)
		_, err = New(Params{Config: cfg, Logger: zap.NewNop().Sugar()})
		assert.Error(t, err)
	})
}

func TestSessions(t *testing.T) {
	c, _ := newTestController(t, "{}")
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	require.NoError(t, c.InitSession(ctx, id))
	assert.Error(t, c.InitSession(ctx, id))
	assert.Zero(t, c.OpenPrompts(id))

	require.NoError(t, c.EndSession(ctx, id))
	err := c.EndSession(ctx, id)
	notFound, ok := errors.NotFoundUUID(err)
	assert.True(t, ok)
	assert.Equal(t, id, notFound)
}

func TestInvokeHostCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatched on active editor", func(t *testing.T) {
		c, m := newTestController(t, "{}")
		editor := editorhostmock.NewMockTextEditor(gomock.NewController(t))
		m.host.EXPECT().ActiveTextEditor().Return(editor)
		m.host.EXPECT().DispatchCommand(ctx, editor, "editor:toggle-line-comments").Return(nil)

		resp, err := c.InvokeHostCommand(ctx, "editor:toggle-line-comments")
		assert.NoError(t, err)
		assert.Equal(t, entity.EditorOperationCompleted, resp)
	})

	t.Run("host failure", func(t *testing.T) {
		c, m := newTestController(t, "{}")
		m.host.EXPECT().ActiveTextEditor().Return(nil)
		m.host.EXPECT().DispatchCommand(ctx, nil, "unknown:command").Return(errors.New("not registered"))

		_, err := c.InvokeHostCommand(ctx, "unknown:command")
		assert.ErrorContains(t, err, "not registered")
	})
}

func TestShowInputPrompt(t *testing.T) {
	tests := []struct {
		name    string
		result  entity.InputResult
		err     error
		want    *entity.ShowInputPromptResponseBody
		wantErr bool
	}{
		{
			name:   "completed",
			result: entity.InputResult{Reason: entity.InputMenuResultCompleted, Value: "Get-Process"},
			want:   &entity.ShowInputPromptResponseBody{ResponseText: "Get-Process"},
		},
		{
			name:   "completed empty",
			result: entity.InputResult{Reason: entity.InputMenuResultCompleted},
			want:   &entity.ShowInputPromptResponseBody{},
		},
		{
			name:   "cancelled",
			result: entity.InputResult{Reason: entity.InputMenuResultCancelled, Value: "ignored"},
			want:   &entity.ShowInputPromptResponseBody{PromptCancelled: true},
		},
		{
			name:    "host failure",
			err:     errors.New("prompt unavailable"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newTestController(t, "{}")
			m.host.EXPECT().InputPrompt(gomock.Any(), "Name").Return(tt.result, tt.err)

			got, err := c.ShowInputPrompt(context.Background(), &entity.ShowInputPromptRequestArgs{Name: "Name", Label: "Enter a name"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShowChoicePrompt(t *testing.T) {
	choices := []entity.ChoiceDetails{
		{Label: "&Yes", HelpMessage: "Continue"},
		{Label: "&No", HelpMessage: "Stop"},
		{Label: "&Suspend", HelpMessage: "Pause"},
	}

	tests := []struct {
		name       string
		args       entity.ShowChoicePromptRequestArgs
		noPrompt   bool
		result     entity.MenuResult
		want       *entity.ShowChoicePromptResponseBody
		wantErr    func(t *testing.T, err error)
		promptFail error
	}{
		{
			name: "multiple select",
			args: entity.ShowChoicePromptRequestArgs{IsMultiChoice: true, Choices: choices},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, errors.IsUnsupported(err))
				assert.Equal(t, "Multiple select is not currently supported.", err.Error())
			},
			noPrompt: true,
		},
		{
			name:   "selected",
			args:   entity.ShowChoicePromptRequestArgs{Message: "Continue?", Choices: choices},
			result: entity.MenuResult{Reason: entity.InputMenuResultCompleted, Index: 1},
			want:   &entity.ShowChoicePromptResponseBody{ResponseText: "&No"},
		},
		{
			name:   "selection wins over default",
			args:   entity.ShowChoicePromptRequestArgs{Message: "Continue?", Choices: choices, DefaultChoices: []int{0}},
			result: entity.MenuResult{Reason: entity.InputMenuResultCompleted, Index: 2},
			want:   &entity.ShowChoicePromptResponseBody{ResponseText: "&Suspend"},
		},
		{
			name:   "confirmed without selection uses default",
			args:   entity.ShowChoicePromptRequestArgs{Message: "Continue?", Choices: choices, DefaultChoices: []int{2, 0}},
			result: entity.MenuResult{Reason: entity.InputMenuResultCompleted, Index: -1},
			want:   &entity.ShowChoicePromptResponseBody{ResponseText: "&Suspend"},
		},
		{
			name:   "confirmed without selection or default",
			args:   entity.ShowChoicePromptRequestArgs{Message: "Continue?", Choices: choices},
			result: entity.MenuResult{Reason: entity.InputMenuResultCompleted, Index: -1},
			want:   &entity.ShowChoicePromptResponseBody{},
		},
		{
			name:   "cancelled",
			args:   entity.ShowChoicePromptRequestArgs{Message: "Continue?", Choices: choices, DefaultChoices: []int{0}},
			result: entity.MenuResult{Reason: entity.InputMenuResultCancelled, Index: -1},
			want:   &entity.ShowChoicePromptResponseBody{PromptCancelled: true},
		},
		{
			name:     "default out of range",
			args:     entity.ShowChoicePromptRequestArgs{Message: "Continue?", Choices: choices, DefaultChoices: []int{3}},
			noPrompt: true,
			wantErr: func(t *testing.T, err error) {
				var rpcErr *jsonrpc2.Error
				require.ErrorAs(t, err, &rpcErr)
				assert.Equal(t, jsonrpc2.InvalidParams, rpcErr.Code)
			},
		},
		{
			name:       "host failure",
			args:       entity.ShowChoicePromptRequestArgs{Message: "Continue?", Choices: choices},
			promptFail: errors.New("prompt unavailable"),
			wantErr: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "prompt unavailable")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newTestController(t, "{}")
			if !tt.noPrompt {
				m.host.EXPECT().SelectMenu(gomock.Any(), "Continue?", []entity.MenuItem{
					{Name: "&Yes", Display: "Continue"},
					{Name: "&No", Display: "Stop"},
					{Name: "&Suspend", Display: "Pause"},
				}).Return(tt.result, tt.promptFail)
			}

			got, err := c.ShowChoicePrompt(context.Background(), &tt.args)
			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromptCancelledWhenSessionEnds(t *testing.T) {
	c, m := newTestController(t, "{}")
	id := uuid.Must(uuid.NewV4())
	require.NoError(t, c.InitSession(context.Background(), id))
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)

	opened := make(chan struct{})
	m.host.EXPECT().InputPrompt(gomock.Any(), "Name").DoAndReturn(
		func(ctx context.Context, _ string) (entity.InputResult, error) {
			close(opened)
			<-ctx.Done()
			return entity.InputResult{Reason: entity.InputMenuResultCancelled}, nil
		})

	done := make(chan *entity.ShowInputPromptResponseBody, 1)
	go func() {
		got, err := c.ShowInputPrompt(ctx, &entity.ShowInputPromptRequestArgs{Name: "Name"})
		assert.NoError(t, err)
		done <- got
	}()

	<-opened
	assert.Equal(t, 1, c.OpenPrompts(id))
	require.NoError(t, c.EndSession(context.Background(), id))

	assert.Equal(t, &entity.ShowInputPromptResponseBody{PromptCancelled: true}, <-done)
	assert.Zero(t, c.OpenPrompts(id))
}

func TestPromptReleasedWhenAnswered(t *testing.T) {
	c, m := newTestController(t, "{}")
	id := uuid.Must(uuid.NewV4())
	require.NoError(t, c.InitSession(context.Background(), id))
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)

	m.host.EXPECT().SelectMenu(gomock.Any(), "Pick", gomock.Any()).DoAndReturn(
		func(context.Context, string, []entity.MenuItem) (entity.MenuResult, error) {
			assert.Equal(t, 1, c.OpenPrompts(id))
			return entity.MenuResult{Reason: entity.InputMenuResultCompleted, Index: 0}, nil
		})

	got, err := c.ShowChoicePrompt(ctx, &entity.ShowChoicePromptRequestArgs{
		Message: "Pick",
		Choices: []entity.ChoiceDetails{{Label: "one"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "one", got.ResponseText)
	assert.Zero(t, c.OpenPrompts(id))
	require.NoError(t, c.EndSession(context.Background(), id))
}

func TestGetEditorContext(t *testing.T) {
	t.Run("no active editor", func(t *testing.T) {
		c, m := newTestController(t, "{}")
		m.host.EXPECT().ActiveTextEditor().Return(nil)

		_, err := c.GetEditorContext(context.Background())
		assert.Equal(t, &errors.NoActiveEditorError{}, err)
	})

	tests := []struct {
		name      string
		cursor    entity.Optional[entity.BufferPoint]
		selection entity.Optional[entity.BufferRange]
		wantJSON  string
	}{
		{
			name:      "cursor and selection",
			cursor:    entity.Some(entity.BufferPoint{Row: 1, Column: 2}),
			selection: entity.Some(entity.BufferRange{Start: entity.BufferPoint{Row: 1, Column: 0}, End: entity.BufferPoint{Row: 3, Column: 4}}),
			wantJSON:  `{"currentFilePath":"/proj/a.ps1","cursorPosition":{"line":1,"character":2},"selectionRange":{"start":{"line":1,"character":0},"end":{"line":3,"character":4}}}`,
		},
		{
			name:      "no selection",
			cursor:    entity.Some(entity.BufferPoint{Row: 0, Column: 0}),
			selection: entity.Null[entity.BufferRange](),
			wantJSON:  `{"currentFilePath":"/proj/a.ps1","cursorPosition":{"line":0,"character":0},"selectionRange":null}`,
		},
		{
			name:     "not applicable",
			wantJSON: `{"currentFilePath":"/proj/a.ps1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newTestController(t, "{}")
			editor := newEditor(gomock.NewController(t), "/proj/a.ps1")
			editor.EXPECT().CursorBufferPosition().Return(tt.cursor)
			editor.EXPECT().SelectedBufferRange().Return(tt.selection)
			m.host.EXPECT().ActiveTextEditor().Return(editor)

			got, err := c.GetEditorContext(context.Background())
			require.NoError(t, err)
			data, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))
		})
	}
}

func TestInsertText(t *testing.T) {
	args := &entity.InsertTextRequestArguments{
		FilePath:   "other.ps1",
		InsertText: "Write-Host 'hi'",
		InsertRange: entity.Range{
			Start: entity.Position{Line: 2, Character: 0},
			End:   entity.Position{Line: 2, Character: 5},
		},
	}
	wantRange := entity.BufferRange{
		Start: entity.BufferPoint{Row: 2, Column: 0},
		End:   entity.BufferPoint{Row: 2, Column: 5},
	}

	t.Run("active editor", func(t *testing.T) {
		c, m := newTestController(t, "{}")
		active := newEditor(gomock.NewController(t), "/proj/a.ps1")
		active.EXPECT().SetTextInBufferRange(wantRange, "Write-Host 'hi'").Return(nil)
		m.host.EXPECT().ActiveTextEditor().Return(active)

		resp, err := c.InsertText(context.Background(), args)
		require.NoError(t, err)
		assert.Equal(t, entity.EditorOperationCompleted, resp)
	})

	t.Run("no active editor", func(t *testing.T) {
		c, m := newTestController(t, "{}")
		m.host.EXPECT().ActiveTextEditor().Return(nil)

		_, err := c.InsertText(context.Background(), args)
		assert.Equal(t, &errors.NoActiveEditorError{}, err)
	})

	t.Run("targets editor for file path", func(t *testing.T) {
		c, m := newTestController(t, "extensionCommands:\n  insertTextTargetsFilePath: true\n")
		ctrl := gomock.NewController(t)
		active := newEditor(ctrl, "/proj/a.ps1")
		target := newEditor(ctrl, "/proj/other.ps1")
		target.EXPECT().SetTextInBufferRange(wantRange, "Write-Host 'hi'").Return(nil)
		m.expectProjectRoot("linux")
		m.host.EXPECT().ActiveTextEditor().Return(active)
		m.host.EXPECT().TextEditors().Return([]editorhost.TextEditor{active, target})

		resp, err := c.InsertText(context.Background(), args)
		require.NoError(t, err)
		assert.Equal(t, entity.EditorOperationCompleted, resp)
	})

	t.Run("falls back to active editor when path is not open", func(t *testing.T) {
		c, m := newTestController(t, "extensionCommands:\n  insertTextTargetsFilePath: true\n")
		active := newEditor(gomock.NewController(t), "/proj/a.ps1")
		active.EXPECT().SetTextInBufferRange(wantRange, "Write-Host 'hi'").Return(nil)
		m.expectProjectRoot("linux")
		m.host.EXPECT().ActiveTextEditor().Return(active)
		m.host.EXPECT().TextEditors().Return([]editorhost.TextEditor{active})

		_, err := c.InsertText(context.Background(), args)
		require.NoError(t, err)
	})
}

func TestSetSelection(t *testing.T) {
	args := &entity.SetSelectionRequestArguments{
		SelectionRange: entity.Range{End: entity.Position{Line: 1, Character: 1}},
	}

	t.Run("active editor", func(t *testing.T) {
		c, m := newTestController(t, "{}")
		active := newEditor(gomock.NewController(t), "/proj/a.ps1")
		active.EXPECT().SetSelectedBufferRange(entity.BufferRange{End: entity.BufferPoint{Row: 1, Column: 1}}).Return(nil)
		m.host.EXPECT().ActiveTextEditor().Return(active)

		resp, err := c.SetSelection(context.Background(), args)
		require.NoError(t, err)
		assert.Equal(t, entity.EditorOperationCompleted, resp)
	})

	t.Run("no active editor", func(t *testing.T) {
		c, m := newTestController(t, "{}")
		m.host.EXPECT().ActiveTextEditor().Return(nil)

		_, err := c.SetSelection(context.Background(), args)
		assert.Equal(t, &errors.NoActiveEditorError{}, err)
	})
}

func TestOpenFile(t *testing.T) {
	tests := []struct {
		name string
		goos string
		path string
		want string
	}{
		{
			name: "relative path on linux",
			goos: "linux",
			path: "a/B.ps1",
			want: "/proj/a/B.ps1",
		},
		{
			name: "relative path on darwin",
			goos: "darwin",
			path: "a/B.ps1",
			want: "/proj/a/b.ps1",
		},
		{
			name: "absolute path",
			goos: "linux",
			path: "/tmp/Script.ps1",
			want: "/tmp/Script.ps1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newTestController(t, "{}")
			m.expectProjectRoot(tt.goos)
			m.host.EXPECT().Open(gomock.Any(), tt.want).Return(nil, nil)

			resp, err := c.OpenFile(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, entity.EditorOperationCompleted, resp)
		})
	}

	t.Run("project root unavailable", func(t *testing.T) {
		c, m := newTestController(t, "{}")
		m.host.EXPECT().ProjectPaths().Return(nil)
		m.workspaceUtils.EXPECT().ProjectRoot(gomock.Any(), nil).Return("", errors.New("no root"))

		_, err := c.OpenFile(context.Background(), "a.ps1")
		assert.ErrorContains(t, err, "no root")
	})
}

func TestNewFile(t *testing.T) {
	c, m := newTestController(t, "{}")
	m.host.EXPECT().Open(gomock.Any(), "").Return(nil, nil)

	resp, err := c.NewFile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.EditorOperationCompleted, resp)
}

func TestCloseFile(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		modified    bool
		wantDestroy bool
	}{
		{
			name: "not open",
			path: "missing.ps1",
		},
		{
			name:     "modified editor stays open",
			path:     "a.ps1",
			modified: true,
		},
		{
			name:        "unmodified editor is closed",
			path:        "/proj/a.ps1",
			wantDestroy: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newTestController(t, "{}")
			ctrl := gomock.NewController(t)
			untitled := newEditor(ctrl, "")
			editor := newEditor(ctrl, "/proj/a.ps1")
			editor.EXPECT().IsModified().Return(tt.modified).AnyTimes()
			if tt.wantDestroy {
				editor.EXPECT().Destroy().Return(nil)
			}
			m.expectProjectRoot("linux")
			m.host.EXPECT().TextEditors().Return([]editorhost.TextEditor{untitled, editor})

			resp, err := c.CloseFile(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, entity.EditorOperationCompleted, resp)
		})
	}
}

func TestSaveFile(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		path     string
		modified bool
		wantSave bool
	}{
		{
			name: "not open",
			goos: "linux",
			path: "missing.ps1",
		},
		{
			name: "unmodified editor is not saved",
			goos: "linux",
			path: "a.ps1",
		},
		{
			name:     "modified editor is saved",
			goos:     "linux",
			path:     "a.ps1",
			modified: true,
			wantSave: true,
		},
		{
			name:     "case-insensitive match on darwin",
			goos:     "darwin",
			path:     "A.PS1",
			modified: true,
			wantSave: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newTestController(t, "{}")
			editor := newEditor(gomock.NewController(t), "/proj/a.ps1")
			editor.EXPECT().IsModified().Return(tt.modified).AnyTimes()
			if tt.wantSave {
				editor.EXPECT().Save(gomock.Any()).Return(nil)
			}
			m.expectProjectRoot(tt.goos)
			m.host.EXPECT().TextEditors().Return([]editorhost.TextEditor{editor})

			resp, err := c.SaveFile(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, entity.EditorOperationCompleted, resp)
		})
	}
}

func TestShowMessages(t *testing.T) {
	c, m := newTestController(t, "{}")
	ctx := context.Background()

	m.host.EXPECT().AddError("error message")
	m.host.EXPECT().AddWarning("warning message")
	m.host.EXPECT().AddInfo("info message")

	for _, show := range []func() (entity.EditorOperationResponse, error){
		func() (entity.EditorOperationResponse, error) { return c.ShowErrorMessage(ctx, "error message") },
		func() (entity.EditorOperationResponse, error) { return c.ShowWarningMessage(ctx, "warning message") },
		func() (entity.EditorOperationResponse, error) { return c.ShowInformationMessage(ctx, "info message") },
	} {
		resp, err := show()
		require.NoError(t, err)
		assert.Equal(t, entity.EditorOperationCompleted, resp)
	}
}

func TestSetStatusBarMessage(t *testing.T) {
	c, _ := newTestController(t, "{}")
	timeout := 3000

	for _, details := range []*entity.StatusBarMessageDetails{
		{Message: "Running"},
		{Message: "Running", Timeout: &timeout},
		{},
	} {
		resp, err := c.SetStatusBarMessage(context.Background(), details)
		require.NoError(t, err)
		assert.Equal(t, entity.EditorOperationUnsupported, resp)
	}
}
