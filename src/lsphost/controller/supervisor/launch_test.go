package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uber/lsp-session-host/src/lsphost/entity"
)

func TestStartupArgs(t *testing.T) {
	base := entity.Settings{
		StartScriptPath:    "/opt/pses/Start-EditorServices.ps1",
		BundledModulesPath: "/opt/pses/modules",
	}.WithDefaults()

	tests := []struct {
		name     string
		settings func(s entity.Settings) entity.Settings
		want     []string
	}{
		{
			name:     "defaults",
			settings: func(s entity.Settings) entity.Settings { return s },
			want: []string{
				"-EditorServicesVersion", "'1.5.1'",
				"-HostName", "'Atom Host'",
				"-HostProfileId", "'GitHub.Atom'",
				"-HostVersion", "'0.0.0'",
				"-AdditionalModules", "@()",
				"-BundledModulesPath", "'/opt/pses/modules'",
				"-EnableConsoleRepl",
				"-LogPath", "'/logs/1-2/EditorServices.log'",
				"-SessionDetailsPath", "'/tmp/PSES-Host-1-123456'",
				"-FeatureFlags", "@()",
			},
		},
		{
			name: "log level and feature flags",
			settings: func(s entity.Settings) entity.Settings {
				s.Developer.EditorServicesLogLevel = "diagnostic"
				s.Developer.FeatureFlags = []string{"PSReadLine", "it's"}
				return s
			},
			want: []string{
				"-EditorServicesVersion", "'1.5.1'",
				"-HostName", "'Atom Host'",
				"-HostProfileId", "'GitHub.Atom'",
				"-HostVersion", "'0.0.0'",
				"-AdditionalModules", "@()",
				"-BundledModulesPath", "'/opt/pses/modules'",
				"-EnableConsoleRepl",
				"-LogLevel", "'Normal'",
				"-LogPath", "'/logs/1-2/EditorServices.log'",
				"-SessionDetailsPath", "'/tmp/PSES-Host-1-123456'",
				"-FeatureFlags", "@('PSReadLine', 'it''s')",
			},
		},
		{
			name: "quotes in host values",
			settings: func(s entity.Settings) entity.Settings {
				s.HostName = "Bob's Editor"
				s.BundledModulesPath = "C:\\Program Files\\it's"
				s.Developer.EditorServicesLogLevel = "Verbose"
				return s
			},
			want: []string{
				"-EditorServicesVersion", "'1.5.1'",
				"-HostName", "'Bob''s Editor'",
				"-HostProfileId", "'GitHub.Atom'",
				"-HostVersion", "'0.0.0'",
				"-AdditionalModules", "@()",
				"-BundledModulesPath", "'C:\\Program Files\\it''s'",
				"-EnableConsoleRepl",
				"-LogLevel", "'Verbose'",
				"-LogPath", "'/logs/1-2/EditorServices.log'",
				"-SessionDetailsPath", "'/tmp/PSES-Host-1-123456'",
				"-FeatureFlags", "@()",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startupArgs(tt.settings(base), "/logs/1-2/EditorServices.log", "/tmp/PSES-Host-1-123456")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLaunchSpec(t *testing.T) {
	settings := entity.Settings{StartScriptPath: "/opt/pses/Start-EditorServices.ps1"}.WithDefaults()
	spec := newLaunchSpec(settings, "/usr/bin/pwsh", "/logs/EditorServices.log", "/tmp/PSES-Host-1-123456")

	assert.Equal(t, "/usr/bin/pwsh", spec.ExecutablePath)
	assert.Equal(t, "/opt/pses/Start-EditorServices.ps1", spec.StartScriptPath)
	assert.Equal(t, "PowerShell Integrated Console", spec.Title)
	assert.Equal(t, "/tmp/PSES-Host-1-123456", spec.SessionFilePath)
	assert.Equal(t, "/logs/EditorServices.log", spec.LogPath)
	assert.Equal(t, startupArgs(settings, "/logs/EditorServices.log", "/tmp/PSES-Host-1-123456"), spec.StartupArgs)

	opts := spec.TerminalOptions("windows")
	assert.Equal(t, "/usr/bin/pwsh", opts.Shell)
	assert.Equal(t, []string{"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command"}, opts.Args[:5])
	assert.Equal(t, "/logs", opts.LogFolder)
}
