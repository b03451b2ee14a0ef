package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tally "github.com/uber-go/tally/v4"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"github.com/uber/lsp-session-host/src/lsphost/internal/clock"
	"github.com/uber/lsp-session-host/src/lsphost/internal/jsonrpcfx"
	"github.com/uber/lsp-session-host/src/lsphost/internal/logfilewriter"
	"github.com/uber/lsp-session-host/src/lsphost/internal/platform"
	"github.com/uber/lsp-session-host/src/lsphost/internal/sessionfile"
	workspaceutils "github.com/uber/lsp-session-host/src/lsphost/internal/workspace-utils"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestModule(t *testing.T) {
	assert.NoError(t, fx.ValidateApp(
		Module,
		fx.Provide(
			func() config.Provider { return nil },
			func() *zap.SugaredLogger { return zap.NewNop().Sugar() },
			func() tally.Scope { return tally.NoopScope },
			func() clock.Clock { return clock.New() },
			func() editorhost.Host { return nil },
			func() sessionfile.Handshake { return nil },
			func() jsonrpcfx.JSONRPCModule { return nil },
			func() logfilewriter.SessionLogs { return nil },
			func() platform.Platform { return nil },
			func() workspaceutils.WorkspaceUtils { return nil },
		),
	))
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
