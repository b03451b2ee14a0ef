package workspaceutils

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/uber/lsp-session-host/src/lsphost/internal/fs"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=workspaceutilsmock/utils_mock.go -package=workspaceutilsmock . WorkspaceUtils

// Module provides a new WorkspaceUtils.
var Module = fx.Provide(New)

// WorkspaceUtils is a utility interface for getting workspace related information.
type WorkspaceUtils interface {
	// ProjectRoot returns the root that relative paths from the language server are resolved against.
	ProjectRoot(ctx context.Context, projectPaths []string) (string, error)
}

// Params are the parameters required to create a new WorkspaceUtils.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	FS     fs.HostFS
}

type workspaceUtilsImpl struct {
	logger *zap.SugaredLogger
	fs     fs.HostFS
}

// New creates a new WorkspaceUtils.
func New(p Params) WorkspaceUtils {
	return &workspaceUtilsImpl{
		logger: p.Logger,
		fs:     p.FS,
	}
}

func (c *workspaceUtilsImpl) ProjectRoot(ctx context.Context, projectPaths []string) (string, error) {
	// The first project path opened in the host is the root.
	for _, p := range projectPaths {
		if p != "" {
			return p, nil
		}
	}

	wd, err := c.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	out, err := c.fs.WorkspaceRoot(wd)
	if err != nil {
		c.logger.Debugw("working directory is not inside a git repository", "dir", wd, zap.Error(err))
		return wd, nil
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New("unable to determine a project root")
	}
	return root, nil
}

// NormalizeFilePath resolves p against projectRoot when it is not absolute for goos, and lower-cases the
// result on windows and darwin where file names compare case-insensitively. It is idempotent.
func NormalizeFilePath(goos string, projectRoot string, p string) string {
	if goos == "windows" {
		p = normalizeWindowsPath(projectRoot, p)
	} else if path.IsAbs(p) || projectRoot == "" {
		p = path.Clean(p)
	} else {
		p = path.Join(projectRoot, p)
	}

	if goos == "windows" || goos == "darwin" {
		p = strings.ToLower(p)
	}
	return p
}

func normalizeWindowsPath(projectRoot string, p string) string {
	p = strings.ReplaceAll(p, "/", `\`)
	root := strings.ReplaceAll(projectRoot, "/", `\`)

	switch {
	case isWindowsAbs(p):
	case strings.HasPrefix(p, `\`):
		// Rooted on the drive or share of the project root.
		p = windowsVolume(root) + p
	case hasDriveLetter(p):
		// Relative to the current directory of that drive, which is only known for the project root's drive.
		if strings.EqualFold(windowsVolume(root), p[:2]) {
			p = joinWindowsPath(root, p[2:])
		} else {
			p = p[:2] + `\` + p[2:]
		}
	case root != "":
		p = joinWindowsPath(root, p)
	}

	volume, rest := splitWindowsVolume(p)
	rest = path.Clean(strings.ReplaceAll(rest, `\`, "/"))
	return volume + strings.ReplaceAll(rest, "/", `\`)
}

func joinWindowsPath(root string, p string) string {
	return strings.TrimRight(root, `\`) + `\` + p
}

func isWindowsAbs(p string) bool {
	if strings.HasPrefix(p, `\\`) {
		return true
	}
	return len(p) >= 3 && hasDriveLetter(p) && p[2] == '\\'
}

func hasDriveLetter(p string) bool {
	return len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':'
}

// windowsVolume returns the drive (C:) or the UNC share (\\server\share) p starts with.
func windowsVolume(p string) string {
	if hasDriveLetter(p) {
		return p[:2]
	}
	if strings.HasPrefix(p, `\\`) {
		if parts := strings.SplitN(p[2:], `\`, 3); len(parts) >= 2 {
			return `\\` + parts[0] + `\` + parts[1]
		}
	}
	return ""
}

// splitWindowsVolume separates a drive letter, or the first of the two slashes of a UNC path.
func splitWindowsVolume(p string) (string, string) {
	if hasDriveLetter(p) {
		return p[:2], p[2:]
	}
	if strings.HasPrefix(p, `\\`) {
		return `\`, p[1:]
	}
	return "", p
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
