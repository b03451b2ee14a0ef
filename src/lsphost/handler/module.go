package handler

import (
	controller "github.com/uber/lsp-session-host/src/lsphost/controller"
	"github.com/uber/lsp-session-host/src/lsphost/controller/supervisor"
	handler "github.com/uber/lsp-session-host/src/lsphost/handler/extension-commands"
	"github.com/uber/lsp-session-host/src/lsphost/repository/session"
	"go.uber.org/fx"
)

// Module provides the language server session and its extension command handler into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(handler.New),
	fx.Invoke(func(h handler.Handler) {}),
	fx.Invoke(func(c supervisor.Controller) {}),
)
