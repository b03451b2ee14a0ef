// Package platform detects the PowerShell executable for the operating system the host runs on.
package platform

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/uber/lsp-session-host/src/lsphost/entity"
	"github.com/uber/lsp-session-host/src/lsphost/internal/fs"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=platformmock/platform_mock.go -package=platformmock . Platform

// Module provides the Platform of the running host.
var Module = fx.Provide(New)

const (
	_darwinDefault = "/usr/local/bin/pwsh"
	_linuxDefault  = "/usr/bin/pwsh"
	_pathFallback  = "pwsh"
)

// Platform describes the operating system the language server is launched on.
type Platform interface {
	// GOOS returns the operating system name in runtime.GOOS form.
	GOOS() string
	// ExecutablePath returns the configured executable, or the default PowerShell location for the platform.
	ExecutablePath(settings entity.Settings) string
}

// Params are the parameters required to create a new Platform.
type Params struct {
	fx.In

	FS     fs.HostFS
	Logger *zap.SugaredLogger
}

type platform struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
	fs       fs.HostFS
	logger   *zap.SugaredLogger
}

// New creates a Platform for runtime.GOOS.
func New(p Params) Platform {
	return &platform{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		fs:       p.FS,
		logger:   p.Logger,
	}
}

func (p *platform) GOOS() string {
	return p.goos
}

func (p *platform) ExecutablePath(settings entity.Settings) string {
	if settings.ExecutablePath != "" {
		return settings.ExecutablePath
	}

	defaultPath := p.defaultPath()
	if ok, err := p.fs.FileExists(defaultPath); err == nil && ok {
		return defaultPath
	}

	if found, err := p.lookPath(_pathFallback); err == nil {
		p.logger.Infow("default PowerShell executable not found, using PATH", "default", defaultPath, "path", found)
		return found
	}

	return defaultPath
}

func (p *platform) defaultPath() string {
	switch p.goos {
	case "windows":
		return p.windowsPath()
	case "darwin":
		return _darwinDefault
	default:
		return _linuxDefault
	}
}

// windowsPath picks SysNative when a 32-bit process runs on a 64-bit OS, where System32 is redirected.
func (p *platform) windowsPath() string {
	windir := p.getenv("windir")
	if windir == "" {
		windir = `C:\Windows`
	}

	system := "System32"
	if p.getenv("PROCESSOR_ARCHITEW6432") != "" {
		system = "SysNative"
	}

	return strings.Join([]string{strings.TrimRight(windir, `\`), system, "WindowsPowerShell", "v1.0", "powershell.exe"}, `\`)
}
