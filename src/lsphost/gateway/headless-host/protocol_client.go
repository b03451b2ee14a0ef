package headlesshost

import (
	"context"
	"path/filepath"

	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"
)

const _errNoEditor = "no editor is attached to the session host"

// logClient answers the base protocol requests a language server sends to its client.
type logClient struct {
	host   *host
	logger *zap.SugaredLogger
}

func (c *logClient) Progress(ctx context.Context, params *protocol.ProgressParams) error {
	c.logger.Debugw("progress", "token", params.Token, "value", params.Value)
	return nil
}

func (c *logClient) WorkDoneProgressCreate(ctx context.Context, params *protocol.WorkDoneProgressCreateParams) error {
	return nil
}

func (c *logClient) LogMessage(ctx context.Context, params *protocol.LogMessageParams) error {
	switch params.Type {
	case protocol.MessageTypeError:
		c.logger.Errorw(params.Message, "source", "server")
	case protocol.MessageTypeWarning:
		c.logger.Warnw(params.Message, "source", "server")
	case protocol.MessageTypeInfo:
		c.logger.Infow(params.Message, "source", "server")
	default:
		c.logger.Debugw(params.Message, "source", "server")
	}
	return nil
}

func (c *logClient) PublishDiagnostics(ctx context.Context, params *protocol.PublishDiagnosticsParams) error {
	c.logger.Debugw("diagnostics", "uri", params.URI, "count", len(params.Diagnostics))
	return nil
}

func (c *logClient) ShowMessage(ctx context.Context, params *protocol.ShowMessageParams) error {
	switch params.Type {
	case protocol.MessageTypeError:
		c.host.AddError(params.Message)
	case protocol.MessageTypeWarning:
		c.host.AddWarning(params.Message)
	default:
		c.host.AddInfo(params.Message)
	}
	return nil
}

// ShowMessageRequest dismisses the request; there is nobody to pick an action.
func (c *logClient) ShowMessageRequest(ctx context.Context, params *protocol.ShowMessageRequestParams) (*protocol.MessageActionItem, error) {
	c.logger.Infow("dismissing message request", "message", params.Message, "actions", len(params.Actions))
	return nil, nil
}

func (c *logClient) Telemetry(ctx context.Context, params interface{}) error {
	c.logger.Debugw("telemetry", "event", params)
	return nil
}

func (c *logClient) RegisterCapability(ctx context.Context, params *protocol.RegistrationParams) error {
	return nil
}

func (c *logClient) UnregisterCapability(ctx context.Context, params *protocol.UnregistrationParams) error {
	return nil
}

func (c *logClient) ApplyEdit(ctx context.Context, params *protocol.ApplyWorkspaceEditParams) (*protocol.ApplyWorkspaceEditResponse, error) {
	c.logger.Infow("not applying workspace edit", "label", params.Label)
	return &protocol.ApplyWorkspaceEditResponse{Applied: false, FailureReason: _errNoEditor}, nil
}

// Configuration answers the powershell section with the launch settings; other sections have none.
func (c *logClient) Configuration(ctx context.Context, params *protocol.ConfigurationParams) ([]interface{}, error) {
	result := make([]interface{}, len(params.Items))
	for i, item := range params.Items {
		switch item.Section {
		case entity.SettingsConfigKey:
			result[i] = c.host.launchSettings()
		case "":
			result[i] = map[string]interface{}{entity.SettingsConfigKey: c.host.launchSettings()}
		}
	}
	return result, nil
}

func (c *logClient) WorkspaceFolders(ctx context.Context) ([]protocol.WorkspaceFolder, error) {
	paths := c.host.ProjectPaths()
	folders := make([]protocol.WorkspaceFolder, 0, len(paths))
	for _, p := range paths {
		folders = append(folders, protocol.WorkspaceFolder{
			URI:  string(uri.File(p)),
			Name: filepath.Base(p),
		})
	}
	return folders, nil
}
