package gateway

import (
	headlesshost "github.com/uber/lsp-session-host/src/lsphost/gateway/headless-host"
	ptyterminal "github.com/uber/lsp-session-host/src/lsphost/gateway/pty-terminal"
	"go.uber.org/fx"
)

// Module provides the host capabilities of the standalone binary.
var Module = fx.Options(
	fx.Provide(ptyterminal.New),
	fx.Provide(headlesshost.New),
	fx.Invoke(headlesshost.AnnounceTerminalProvider),
)
