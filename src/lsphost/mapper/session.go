package mapper

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"github.com/uber/lsp-session-host/src/lsphost/internal/errors"
	"github.com/uber/lsp-session-host/src/lsphost/model"
)

// SessionToModel maps a Session entity to its model equivalent.
func SessionToModel(s *entity.Session) *model.Session {
	return &model.Session{
		UUID:                s.UUID,
		Conn:                s.Conn,
		Server:              s.Server,
		Process:             s.Process,
		LanguageServicePort: s.Details.LanguageServicePort,
		ExecutablePath:      s.Launch.ExecutablePath,
		StartScriptPath:     s.Launch.StartScriptPath,
		Title:               s.Launch.Title,
		StartupArgs:         append([]string(nil), s.Launch.StartupArgs...),
		SessionFilePath:     s.Launch.SessionFilePath,
		LogPath:             s.Launch.LogPath,
		LogFolder:           s.LogFolder,
	}
}

// ModelToSession maps a model Session to its entity equivalent.
func ModelToSession(m *model.Session) *entity.Session {
	return &entity.Session{
		UUID:    m.UUID,
		Conn:    m.Conn,
		Server:  m.Server,
		Process: m.Process,
		Details: entity.SessionDetails{
			LanguageServicePort: m.LanguageServicePort,
			Status:              entity.SessionStatusStarted,
		},
		Launch: entity.LaunchSpec{
			ExecutablePath:  m.ExecutablePath,
			StartScriptPath: m.StartScriptPath,
			Title:           m.Title,
			StartupArgs:     append([]string(nil), m.StartupArgs...),
			SessionFilePath: m.SessionFilePath,
			LogPath:         m.LogPath,
		},
		LogFolder: m.LogFolder,
	}
}

// ContextToSessionUUID extracts the UUID from a context
func ContextToSessionUUID(c context.Context) (uuid.UUID, error) {
	s, ok := c.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoSessionFoundError{}
	}
	return s, nil
}
