// Package entity contains the domain types of the language server session host.
package entity

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// SessionStatus is the startup status reported by the language server in its session file.
type SessionStatus string

const (
	// SessionStatusStarted indicates that the language service is listening.
	SessionStatusStarted SessionStatus = "Started"
	// SessionStatusFailed indicates that the language server could not start.
	SessionStatusFailed SessionStatus = "Failed"
)

// SessionDetails is the content of the session file written by the language server.
type SessionDetails struct {
	LanguageServicePort int           `json:"languageServicePort" zap:"languageServicePort"`
	Status              SessionStatus `json:"status" zap:"status"`
	Reason              string        `json:"reason,omitempty" zap:"reason"`
}

// SessionState is the lifecycle position of the supervised language server session.
type SessionState int32

const (
	SessionStateIdle SessionState = iota
	SessionStateAwaitingTerminalProvider
	SessionStateLaunching
	SessionStateAwaitingHandshake
	SessionStateConnecting
	SessionStateConnected
	SessionStateFailed
	SessionStateDisposed
)

func (s SessionState) String() string {
	switch s {
	case SessionStateIdle:
		return "idle"
	case SessionStateAwaitingTerminalProvider:
		return "awaiting_terminal_provider"
	case SessionStateLaunching:
		return "launching"
	case SessionStateAwaitingHandshake:
		return "awaiting_handshake"
	case SessionStateConnecting:
		return "connecting"
	case SessionStateConnected:
		return "connected"
	case SessionStateFailed:
		return "failed"
	case SessionStateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Terminal reports whether no further transitions happen without an explicit restart.
func (s SessionState) Terminal() bool {
	return s == SessionStateFailed || s == SessionStateDisposed
}

// OpenTerminalOptions describes the terminal the host is asked to create.
type OpenTerminalOptions struct {
	Shell string   `json:"shell" zap:"shell"`
	Args  []string `json:"args" zap:"args"`
	Title string   `json:"title" zap:"title"`
	// LogFolder is the session log folder the terminal may record its console output in.
	LogFolder string `json:"logFolder,omitempty" zap:"logFolder"`
}

// LaunchSpec is everything needed to start the language server inside a host terminal.
type LaunchSpec struct {
	ExecutablePath  string   `json:"executablePath" zap:"executablePath"`
	StartScriptPath string   `json:"startScriptPath" zap:"startScriptPath"`
	Title           string   `json:"title" zap:"title"`
	StartupArgs     []string `json:"startupArgs" zap:"startupArgs"`
	SessionFilePath string   `json:"sessionFilePath" zap:"sessionFilePath"`
	LogPath         string   `json:"logPath" zap:"logPath"`
}

// ShellArgs returns the argument list passed to the PowerShell executable for the given GOOS.
func (l LaunchSpec) ShellArgs(goos string) []string {
	args := []string{"-NoProfile", "-NonInteractive"}
	if goos == "windows" {
		args = append(args, "-ExecutionPolicy", "Bypass")
	}

	command := fmt.Sprintf("& %s", QuoteArgument(l.StartScriptPath))
	if len(l.StartupArgs) > 0 {
		command += " " + strings.Join(l.StartupArgs, " ")
	}
	return append(args, "-Command", command)
}

// TerminalOptions maps the launch spec onto the options of a host terminal.
func (l LaunchSpec) TerminalOptions(goos string) OpenTerminalOptions {
	opts := OpenTerminalOptions{
		Shell: l.ExecutablePath,
		Args:  l.ShellArgs(goos),
		Title: l.Title,
	}
	// The server log sits directly inside the session log folder.
	if l.LogPath != "" {
		opts.LogFolder = filepath.Dir(l.LogPath)
	}
	return opts
}

// QuoteArgument wraps a value in a PowerShell literal string, doubling any embedded single quote.
func QuoteArgument(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// ServerProcess is the language server process running inside a host terminal.
type ServerProcess interface {
	// Stderr is always at EOF; all output of the server goes to the terminal.
	Stderr() io.Reader
	Pid() int
	Kill(sig os.Signal) error
	OnExit(listener func(code int, signal string)) (unsubscribe func())
	OnError(listener func(err error)) (unsubscribe func())
}

// Session entity representing a single connected language server.
type Session struct {
	UUID      uuid.UUID       `json:"uuid" zap:"uuid"`
	Conn      jsonrpc2.Conn   `json:"-" zap:"-"`
	Server    protocol.Server `json:"-" zap:"-"`
	Process   ServerProcess   `json:"-" zap:"-"`
	Details   SessionDetails  `json:"details" zap:"details"`
	Launch    LaunchSpec      `json:"launch" zap:"launch"`
	LogFolder string          `json:"logFolder" zap:"logFolder"`
}
