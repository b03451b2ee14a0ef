package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// RequestToString maps the parameters from a jsonrpc2.Request into the single string the command takes.
func RequestToString(req jsonrpc2.Request) (string, error) {
	var value string
	if err := json.Unmarshal(req.Params(), &value); err != nil {
		return "", wrapErrParse(err)
	}
	return value, nil
}

// RequestToShowInputPromptArgs maps the parameters from a jsonrpc2.Request into entity.ShowInputPromptRequestArgs.
func RequestToShowInputPromptArgs(req jsonrpc2.Request) (*entity.ShowInputPromptRequestArgs, error) {
	params := entity.ShowInputPromptRequestArgs{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToShowChoicePromptArgs maps the parameters from a jsonrpc2.Request into entity.ShowChoicePromptRequestArgs.
func RequestToShowChoicePromptArgs(req jsonrpc2.Request) (*entity.ShowChoicePromptRequestArgs, error) {
	params := entity.ShowChoicePromptRequestArgs{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToInsertTextArgs maps the parameters from a jsonrpc2.Request into entity.InsertTextRequestArguments.
func RequestToInsertTextArgs(req jsonrpc2.Request) (*entity.InsertTextRequestArguments, error) {
	params := entity.InsertTextRequestArguments{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToSetSelectionArgs maps the parameters from a jsonrpc2.Request into entity.SetSelectionRequestArguments.
func RequestToSetSelectionArgs(req jsonrpc2.Request) (*entity.SetSelectionRequestArguments, error) {
	params := entity.SetSelectionRequestArguments{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToStatusBarMessage maps the parameters from a jsonrpc2.Request into entity.StatusBarMessageDetails.
// Any shape is accepted since the command is never carried out.
func RequestToStatusBarMessage(req jsonrpc2.Request) *entity.StatusBarMessageDetails {
	params := entity.StatusBarMessageDetails{}
	_ = json.Unmarshal(req.Params(), &params)
	return &params
}

// MessageMethodToType maps an editor/show*Message method onto the LSP message severity it displays.
func MessageMethodToType(method string) protocol.MessageType {
	switch method {
	case entity.MethodShowErrorMessage:
		return protocol.MessageTypeError
	case entity.MethodShowWarningMessage:
		return protocol.MessageTypeWarning
	default:
		return protocol.MessageTypeInfo
	}
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
