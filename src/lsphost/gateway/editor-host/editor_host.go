// Package editorhost declares the capabilities the embedding editor provides to the session host.
package editorhost

import (
	"context"
	"os"

	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

//go:generate mockgen -destination=editorhostmock/editor_host_mock.go -package=editorhostmock . Host,TerminalProvider,Terminal,PseudoProcess,TextEditor,Workspace,Notifications,Prompter,ServerResolver

// PseudoProcess is the process running inside a host terminal.
// Each On* call returns a function that removes the listener.
type PseudoProcess interface {
	Pid() int
	Kill(sig os.Signal) error
	OnExit(listener func(code int, signal string)) (unsubscribe func())
	OnError(listener func(err error)) (unsubscribe func())
}

// Terminal is an integrated terminal opened by the host.
type Terminal interface {
	Show(preserveFocus bool)
	// Dispose closes the terminal and terminates its process.
	Dispose() error
	Process() PseudoProcess
}

// TerminalProvider opens integrated terminals.
type TerminalProvider interface {
	OpenTerminal(ctx context.Context, opts entity.OpenTerminalOptions) (Terminal, error)
}

// TextEditor is a single open text buffer.
type TextEditor interface {
	// Path is empty for untitled buffers.
	Path() string
	CursorBufferPosition() entity.Optional[entity.BufferPoint]
	SelectedBufferRange() entity.Optional[entity.BufferRange]
	SetTextInBufferRange(r entity.BufferRange, text string) error
	SetSelectedBufferRange(r entity.BufferRange) error
	IsModified() bool
	Save(ctx context.Context) error
	// Destroy closes the editor and discards its buffer.
	Destroy() error
}

// Workspace exposes the open editors and project of the host.
type Workspace interface {
	// ActiveTextEditor returns nil when no text editor has focus.
	ActiveTextEditor() TextEditor
	TextEditors() []TextEditor
	// Open opens path, or a new untitled buffer when path is empty.
	Open(ctx context.Context, path string) (TextEditor, error)
	DispatchCommand(ctx context.Context, target TextEditor, command string) error
	ProjectPaths() []string
}

// Notifications shows transient messages to the user.
type Notifications interface {
	AddError(message string)
	AddWarning(message string)
	AddInfo(message string)
}

// Prompter asks the user for input. Implementations must return a cancelled result once ctx is done.
type Prompter interface {
	InputPrompt(ctx context.Context, message string) (entity.InputResult, error)
	SelectMenu(ctx context.Context, message string, items []entity.MenuItem) (entity.MenuResult, error)
}

// Host is the full set of editor capabilities.
type Host interface {
	Workspace
	Notifications
	Prompter
	// BaseProtocolClient handles standard server-to-client requests. It may be nil.
	BaseProtocolClient() protocol.Client
}

// ServerResolver maps a document to the session that owns it.
type ServerResolver interface {
	SessionForDocument(ctx context.Context, document uri.URI) (*entity.Session, error)
}
