package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected string
		terminal bool
	}{
		{SessionStateIdle, "idle", false},
		{SessionStateAwaitingTerminalProvider, "awaiting_terminal_provider", false},
		{SessionStateLaunching, "launching", false},
		{SessionStateAwaitingHandshake, "awaiting_handshake", false},
		{SessionStateConnecting, "connecting", false},
		{SessionStateConnected, "connected", false},
		{SessionStateFailed, "failed", true},
		{SessionStateDisposed, "disposed", true},
		{SessionState(42), "unknown(42)", false},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
			assert.Equal(t, tt.terminal, tt.state.Terminal())
		})
	}
}

func TestSessionDetailsJSON(t *testing.T) {
	var details SessionDetails
	require.NoError(t, json.Unmarshal([]byte(`{"languageServicePort":4242,"status":"Started"}`), &details))
	assert.Equal(t, SessionDetails{LanguageServicePort: 4242, Status: SessionStatusStarted}, details)

	require.NoError(t, json.Unmarshal([]byte(`{"status":"Failed","reason":"boom"}`), &details))
	assert.Equal(t, SessionStatusFailed, details.Status)
	assert.Equal(t, "boom", details.Reason)
}

func TestLaunchSpecShellArgs(t *testing.T) {
	spec := LaunchSpec{
		StartScriptPath: "/opt/pses/Start-EditorServices.ps1",
		StartupArgs:     []string{"-EditorServicesVersion '1.5.1'", "-EnableConsoleRepl"},
	}

	t.Run("linux", func(t *testing.T) {
		assert.Equal(t, []string{
			"-NoProfile",
			"-NonInteractive",
			"-Command",
			"& '/opt/pses/Start-EditorServices.ps1' -EditorServicesVersion '1.5.1' -EnableConsoleRepl",
		}, spec.ShellArgs("linux"))
	})

	t.Run("windows bypasses execution policy", func(t *testing.T) {
		assert.Equal(t, []string{
			"-NoProfile",
			"-NonInteractive",
			"-ExecutionPolicy",
			"Bypass",
			"-Command",
			"& '/opt/pses/Start-EditorServices.ps1' -EditorServicesVersion '1.5.1' -EnableConsoleRepl",
		}, spec.ShellArgs("windows"))
	})

	t.Run("terminal options", func(t *testing.T) {
		spec := spec
		spec.ExecutablePath = "/usr/bin/pwsh"
		spec.Title = "PowerShell Integrated Console"
		opts := spec.TerminalOptions("darwin")
		assert.Equal(t, "/usr/bin/pwsh", opts.Shell)
		assert.Equal(t, "PowerShell Integrated Console", opts.Title)
		assert.Equal(t, spec.ShellArgs("darwin"), opts.Args)
	})
}

func TestQuoteArgument(t *testing.T) {
	assert.Equal(t, "'C:\\Program Files\\pses'", QuoteArgument(`C:\Program Files\pses`))
	assert.Equal(t, "'/home/o''brien/logs'", QuoteArgument("/home/o'brien/logs"))
	assert.Equal(t, "''", QuoteArgument(""))
}

func TestSettingsWithDefaults(t *testing.T) {
	s := Settings{HostVersion: "2.0.0", Developer: DeveloperSettings{FeatureFlags: []string{"a"}}}.WithDefaults()
	assert.Equal(t, "1.5.1", s.EditorServicesVersion)
	assert.Equal(t, "Atom Host", s.HostName)
	assert.Equal(t, "GitHub.Atom", s.HostProfileID)
	assert.Equal(t, "2.0.0", s.HostVersion)
	assert.Equal(t, "PowerShell Integrated Console", s.ConsoleTitle)
	assert.Equal(t, []string{"a"}, s.Developer.FeatureFlags)
}
