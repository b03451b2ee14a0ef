package model

import (
	"github.com/gofrs/uuid"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Session is the repository layer model for a connected language server session.
type Session struct {
	UUID                uuid.UUID
	Conn                jsonrpc2.Conn
	Server              protocol.Server
	Process             entity.ServerProcess
	LanguageServicePort int
	ExecutablePath      string
	StartScriptPath     string
	Title               string
	StartupArgs         []string
	SessionFilePath     string
	LogPath             string
	LogFolder           string
}
