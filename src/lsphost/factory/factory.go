package factory

import (
	"github.com/gofrs/uuid"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// Session is a factory for a connected session on the given port.
func Session(port int) *entity.Session {
	return &entity.Session{
		UUID: UUID(),
		Details: entity.SessionDetails{
			LanguageServicePort: port,
			Status:              entity.SessionStatusStarted,
		},
	}
}

// Choices is a factory for single-choice prompt arguments with one choice per label.
func Choices(message string, labels ...string) *entity.ShowChoicePromptRequestArgs {
	args := &entity.ShowChoicePromptRequestArgs{
		Caption: "Caption",
		Message: message,
	}
	for _, label := range labels {
		args.Choices = append(args.Choices, entity.ChoiceDetails{Label: label, HelpMessage: "Choose " + label})
	}
	return args
}
