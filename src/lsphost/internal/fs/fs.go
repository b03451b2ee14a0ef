package fs

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"

	"go.uber.org/fx"
)

//go:generate mockgen -destination=fsmock/fs_mock.go -package=fsmock . HostFS

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// HostFS will wrap the filesystem operations used by the session host.
type HostFS interface {
	UserCacheDir() (string, error)
	TempDir() string
	Getwd() (string, error)
	MkdirAll(path string) error
	WorkspaceRoot(path string) ([]byte, error)
	DirExists(path string) (bool, error)
	FileExists(path string) (bool, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data string) error
	Remove(name string) error
	RemoveIfExists(name string) error
}

type fsImpl struct{}

// New creates a new HostFS.
func New() HostFS {
	return fsImpl{}
}

// UserCacheDir returns the user's cache directory.
func (fsImpl) UserCacheDir() (string, error) { return os.UserCacheDir() }

// TempDir returns the default directory for temporary files.
func (fsImpl) TempDir() string { return os.TempDir() }

// Getwd returns the working directory of the process.
func (fsImpl) Getwd() (string, error) { return os.Getwd() }

// MkdirAll creates a directory and all its parents.
func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, os.ModePerm) }

// WorkspaceRoot returns the workspace root for the given path.
func (fsImpl) WorkspaceRoot(path string) ([]byte, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = path
	return cmd.Output()
}

func (fsImpl) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) WriteFile(name string, data string) error {
	return os.WriteFile(name, []byte(data), 0644)
}

func (fsImpl) Remove(name string) error {
	return os.Remove(name)
}

// RemoveIfExists removes the named file, treating a missing file as success.
func (fsImpl) RemoveIfExists(name string) error {
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
