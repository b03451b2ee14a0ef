package extensioncommands

import (
	"context"

	"github.com/uber/lsp-session-host/src/lsphost/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) ShowInputPrompt(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToShowInputPromptArgs(req)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}

	return r.async(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return r.ctrl.ShowInputPrompt(ctx, params)
	})
}

func (r *jsonRPCRouter) ShowChoicePrompt(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToShowChoicePromptArgs(req)
	if err != nil {
		return reply(ctx, nil, mapper.ToJSONRPCError(err))
	}

	return r.async(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return r.ctrl.ShowChoicePrompt(ctx, params)
	})
}
