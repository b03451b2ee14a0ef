package app

import (
	"context"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/lsp-session-host/src/lsphost/gateway"
	"github.com/uber/lsp-session-host/src/lsphost/handler"
	"github.com/uber/lsp-session-host/src/lsphost/internal/clock"
	"github.com/uber/lsp-session-host/src/lsphost/internal/core"
	"github.com/uber/lsp-session-host/src/lsphost/internal/executor"
	"github.com/uber/lsp-session-host/src/lsphost/internal/fs"
	"github.com/uber/lsp-session-host/src/lsphost/internal/jsonrpcfx"
	"github.com/uber/lsp-session-host/src/lsphost/internal/logfilewriter"
	"github.com/uber/lsp-session-host/src/lsphost/internal/platform"
	"github.com/uber/lsp-session-host/src/lsphost/internal/sessionfile"
	workspaceutils "github.com/uber/lsp-session-host/src/lsphost/internal/workspace-utils"
	"go.uber.org/fx"
)

// Module defines the lsp-session-host application module.
var Module = fx.Options(
	gateway.Module, // host capabilities
	handler.Module, // session and inbound extension commands
	jsonrpcfx.Module,
	sessionfile.Module,
	logfilewriter.Module,
	platform.Module,
	fs.Module,
	clock.Module,
	executor.Module,
	workspaceutils.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "lsp-session-host",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
