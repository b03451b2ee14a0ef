package controller

import (
	extensioncommands "github.com/uber/lsp-session-host/src/lsphost/controller/extension-commands"
	"github.com/uber/lsp-session-host/src/lsphost/controller/supervisor"
	"go.uber.org/fx"
)

// Module provides the session supervisor and the extension command controller.
var Module = fx.Options(
	fx.Provide(supervisor.New),
	fx.Provide(extensioncommands.New),
)
