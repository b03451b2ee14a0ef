package extensioncommands

import (
	"context"

	"github.com/uber/lsp-session-host/src/lsphost/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) InvokeHostCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	command, err := mapper.RequestToString(req)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}

	result, err := r.ctrl.InvokeHostCommand(ctx, command)
	return reply(ctx, result, mapper.ToJSONRPCError(err))
}

func (r *jsonRPCRouter) GetEditorContext(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result, err := r.ctrl.GetEditorContext(ctx)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}
	return reply(ctx, result, nil)
}

func (r *jsonRPCRouter) InsertText(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToInsertTextArgs(req)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}

	result, err := r.ctrl.InsertText(ctx, params)
	return reply(ctx, result, mapper.ToJSONRPCError(err))
}

func (r *jsonRPCRouter) SetSelection(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSetSelectionArgs(req)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}

	result, err := r.ctrl.SetSelection(ctx, params)
	return reply(ctx, result, mapper.ToJSONRPCError(err))
}

func (r *jsonRPCRouter) OpenFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	filePath, err := mapper.RequestToString(req)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}

	return r.async(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return r.ctrl.OpenFile(ctx, filePath)
	})
}

func (r *jsonRPCRouter) NewFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return r.async(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return r.ctrl.NewFile(ctx)
	})
}

func (r *jsonRPCRouter) CloseFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	filePath, err := mapper.RequestToString(req)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}

	result, err := r.ctrl.CloseFile(ctx, filePath)
	return reply(ctx, result, mapper.ToJSONRPCError(err))
}

func (r *jsonRPCRouter) SaveFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	filePath, err := mapper.RequestToString(req)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}

	return r.async(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return r.ctrl.SaveFile(ctx, filePath)
	})
}
