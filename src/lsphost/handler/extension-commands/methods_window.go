package extensioncommands

import (
	"context"

	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"github.com/uber/lsp-session-host/src/lsphost/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) ShowMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	message, err := mapper.RequestToString(req)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}

	var result entity.EditorOperationResponse
	switch req.Method() {
	case entity.MethodShowErrorMessage:
		result, err = r.ctrl.ShowErrorMessage(ctx, message)
	case entity.MethodShowWarningMessage:
		result, err = r.ctrl.ShowWarningMessage(ctx, message)
	default:
		result, err = r.ctrl.ShowInformationMessage(ctx, message)
	}
	if r.logger != nil {
		r.logger.Debugw("language server message", "type", mapper.MessageMethodToType(req.Method()).String(), "message", message)
	}
	return reply(ctx, result, mapper.ToJSONRPCError(err))
}

func (r *jsonRPCRouter) SetStatusBarMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result, err := r.ctrl.SetStatusBarMessage(ctx, mapper.RequestToStatusBarMessage(req))
	return reply(ctx, result, mapper.ToJSONRPCError(err))
}
