// Package extensioncommands serves the editor commands a connected language server sends over JSON-RPC.
package extensioncommands

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	controller "github.com/uber/lsp-session-host/src/lsphost/controller/extension-commands"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	editorhost "github.com/uber/lsp-session-host/src/lsphost/gateway/editor-host"
	"github.com/uber/lsp-session-host/src/lsphost/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler hands out a command router for every language server connection.
type Handler = jsonrpcfx.ConnectionManager

// Params are inbound parameters to initialize a new Handler.
type Params struct {
	fx.In

	Controller controller.Controller
	JSONRPC    jsonrpcfx.JSONRPCModule
	Host       editorhost.Host
	Stats      tally.Scope
	Logger     *zap.SugaredLogger
}

type jsonRPCConnectionManager struct {
	ctrl   controller.Controller
	host   editorhost.Host
	stats  tally.Scope
	logger *zap.SugaredLogger
}

// New constructs a new Handler and registers it for new connections.
func New(p Params) (Handler, error) {
	c := &jsonRPCConnectionManager{
		ctrl:   p.Controller,
		host:   p.Host,
		stats:  p.Stats.SubScope("json_rpc"),
		logger: p.Logger,
	}
	if err := p.JSONRPC.RegisterConnectionManager(c); err != nil {
		return nil, fmt.Errorf("registering connection manager: %w", err)
	}
	return c, nil
}

// NewConnection begins tracking the session and returns a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, id uuid.UUID, conn jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	if err := c.ctrl.InitSession(ctx, id); err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	return &jsonRPCRouter{
		ctrl:     c.ctrl,
		uuid:     id,
		fallback: c.fallback(),
		stats:    c.stats,
		logger:   c.logger.With(zap.Stringer("uuid", id)),
	}, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	if err := c.ctrl.EndSession(ctx, id); err != nil {
		c.logger.Warnw("ending extension command session", zap.Stringer("uuid", id), zap.Error(err))
	}
}

// fallback serves base protocol requests through the host's client when it has one.
func (c *jsonRPCConnectionManager) fallback() jsonrpc2.Handler {
	if c.host == nil {
		return jsonrpc2.MethodNotFoundHandler
	}
	client := c.host.BaseProtocolClient()
	if client == nil {
		return jsonrpc2.MethodNotFoundHandler
	}
	return protocol.ClientHandler(client, jsonrpc2.MethodNotFoundHandler)
}
