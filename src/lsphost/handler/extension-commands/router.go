package extensioncommands

import (
	"context"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	controller "github.com/uber/lsp-session-host/src/lsphost/controller/extension-commands"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"github.com/uber/lsp-session-host/src/lsphost/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

const (
	_counterExtensionCommand = "extension_command"
	_tagMethod               = "method"
)

type jsonRPCRouter struct {
	ctrl     controller.Controller
	uuid     uuid.UUID
	fallback jsonrpc2.Handler
	stats    tally.Scope
	logger   *zap.SugaredLogger
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)

	switch req.Method() {
	case entity.MethodAtomCommandInvocation:
		r.count(req)
		return r.InvokeHostCommand(ctx, reply, req)

	// Prompts wait on the user.
	case entity.MethodShowInputPrompt:
		r.count(req)
		return r.ShowInputPrompt(ctx, reply, req)

	case entity.MethodShowChoicePrompt:
		r.count(req)
		return r.ShowChoicePrompt(ctx, reply, req)

	// Editor methods.
	case entity.MethodGetEditorContext:
		r.count(req)
		return r.GetEditorContext(ctx, reply, req)

	case entity.MethodInsertText:
		r.count(req)
		return r.InsertText(ctx, reply, req)

	case entity.MethodSetSelection:
		r.count(req)
		return r.SetSelection(ctx, reply, req)

	case entity.MethodOpenFile:
		r.count(req)
		return r.OpenFile(ctx, reply, req)

	case entity.MethodNewFile:
		r.count(req)
		return r.NewFile(ctx, reply, req)

	case entity.MethodCloseFile:
		r.count(req)
		return r.CloseFile(ctx, reply, req)

	case entity.MethodSaveFile:
		r.count(req)
		return r.SaveFile(ctx, reply, req)

	// Window methods.
	case entity.MethodShowErrorMessage, entity.MethodShowWarningMessage, entity.MethodShowInformationMessage:
		r.count(req)
		return r.ShowMessage(ctx, reply, req)

	case entity.MethodSetStatusBarMessage:
		r.count(req)
		return r.SetStatusBarMessage(ctx, reply, req)

	default:
		if r.fallback == nil {
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
		return r.fallback(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

func (r *jsonRPCRouter) count(req jsonrpc2.Request) {
	if r.stats == nil {
		return
	}
	r.stats.Tagged(map[string]string{_tagMethod: req.Method()}).Counter(_counterExtensionCommand).Inc(1)
}

// async replies from its own goroutine so that a command waiting on the user does not hold up the read loop.
func (r *jsonRPCRouter) async(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, run func(ctx context.Context) (interface{}, error)) error {
	go func() {
		result, err := run(ctx)
		if replyErr := reply(ctx, result, mapper.ToJSONRPCError(err)); replyErr != nil && r.logger != nil {
			r.logger.Debugw("replying to extension command", "method", req.Method(), zap.Error(replyErr))
		}
	}()
	return nil
}
