package supervisor

import (
	"strings"

	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"github.com/uber/lsp-session-host/src/lsphost/mapper"
)

// _serverLogName is the base name of the log the language server writes into the session log folder.
const _serverLogName = "EditorServices"

// startupArgs builds the arguments of the start script. Order and spelling are fixed by the start script.
func startupArgs(settings entity.Settings, logPath string, sessionFilePath string) []string {
	args := []string{
		"-EditorServicesVersion", entity.QuoteArgument(settings.EditorServicesVersion),
		"-HostName", entity.QuoteArgument(settings.HostName),
		"-HostProfileId", entity.QuoteArgument(settings.HostProfileID),
		"-HostVersion", entity.QuoteArgument(settings.HostVersion),
		"-AdditionalModules", "@()",
		"-BundledModulesPath", entity.QuoteArgument(settings.BundledModulesPath),
		"-EnableConsoleRepl",
	}

	if settings.Developer.EditorServicesLogLevel != "" {
		args = append(args, "-LogLevel", entity.QuoteArgument(mapper.NormalizeLogLevel(settings.Developer.EditorServicesLogLevel)))
	}

	return append(args,
		"-LogPath", entity.QuoteArgument(logPath),
		"-SessionDetailsPath", entity.QuoteArgument(sessionFilePath),
		"-FeatureFlags", featureFlags(settings.Developer.FeatureFlags),
	)
}

func featureFlags(flags []string) string {
	quoted := make([]string, 0, len(flags))
	for _, f := range flags {
		quoted = append(quoted, entity.QuoteArgument(f))
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

func newLaunchSpec(settings entity.Settings, executablePath string, logPath string, sessionFilePath string) entity.LaunchSpec {
	return entity.LaunchSpec{
		ExecutablePath:  executablePath,
		StartScriptPath: settings.StartScriptPath,
		Title:           settings.ConsoleTitle,
		StartupArgs:     startupArgs(settings, logPath, sessionFilePath),
		SessionFilePath: sessionFilePath,
		LogPath:         logPath,
	}
}
