package headlesshost

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host/editorhostmock"
	lsperrors "github.com/uber/lsp-session-host/src/lsphost/internal/errors"
	"github.com/uber/lsp-session-host/src/lsphost/internal/fs/fsmock"
	"github.com/uber/lsp-session-host/src/lsphost/repository/session"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const _testSettings = `
powershell:
  executablePath: /usr/bin/pwsh
  developer:
    editorServicesLogLevel: Diagnostic
`

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestHost(t *testing.T) (*host, *fsmock.MockHostFS, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	fs := fsmock.NewMockHostFS(gomock.NewController(t))
	cfg, err := config.NewYAML(config.Source(strings.NewReader(_testSettings)))
	require.NoError(t, err)
	h := New(Params{Config: cfg, FS: fs, Logger: zap.New(core).Sugar()})
	return h.(*host), fs, logs
}

func TestNoEditors(t *testing.T) {
	h, _, logs := newTestHost(t)
	ctx := context.Background()

	assert.Nil(t, h.ActiveTextEditor())
	assert.Empty(t, h.TextEditors())

	_, err := h.Open(ctx, "/proj/a.ps1")
	assert.Equal(t, &lsperrors.NoActiveEditorError{}, err)

	assert.NoError(t, h.DispatchCommand(ctx, nil, "editor:newline"))
	assert.Equal(t, 1, logs.FilterMessage("ignoring host command").Len())
}

func TestProjectPaths(t *testing.T) {
	t.Run("working directory", func(t *testing.T) {
		h, fs, _ := newTestHost(t)
		fs.EXPECT().Getwd().Return("/proj", nil)
		assert.Equal(t, []string{"/proj"}, h.ProjectPaths())
	})

	t.Run("unknown working directory", func(t *testing.T) {
		h, fs, logs := newTestHost(t)
		fs.EXPECT().Getwd().Return("", errors.New("removed"))
		assert.Empty(t, h.ProjectPaths())
		assert.Equal(t, 1, logs.FilterMessage("no project path").Len())
	})
}

func TestNotifications(t *testing.T) {
	h, _, logs := newTestHost(t)

	h.AddError("session failed")
	h.AddWarning("slow start")
	h.AddInfo("connected")

	entries := logs.TakeAll()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "session failed", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, "host", entries[2].LoggerName)
}

func TestPromptsAreCancelled(t *testing.T) {
	h, _, _ := newTestHost(t)
	ctx := context.Background()

	input, err := h.InputPrompt(ctx, "Name")
	require.NoError(t, err)
	assert.Equal(t, entity.InputMenuResultCancelled, input.Reason)

	menu, err := h.SelectMenu(ctx, "Restart?", []entity.MenuItem{{Name: "Yes"}, {Name: "No"}})
	require.NoError(t, err)
	assert.Equal(t, entity.MenuResult{Reason: entity.InputMenuResultCancelled, Index: -1}, menu)
}

func TestAnnounceTerminalProvider(t *testing.T) {
	sessions := session.New(session.Params{Stats: tally.NoopScope, Logger: zap.NewNop().Sugar()})
	tp := editorhostmock.NewMockTerminalProvider(gomock.NewController(t))
	lc := fxtest.NewLifecycle(t)

	AnnounceTerminalProvider(lc, sessions, tp)
	_, ok := sessions.TerminalProvider()
	assert.False(t, ok)

	lc.RequireStart()
	got, ok := sessions.TerminalProvider()
	assert.True(t, ok)
	assert.Equal(t, tp, got)
	lc.RequireStop()
}
