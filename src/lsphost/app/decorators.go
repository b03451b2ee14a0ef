package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uber/lsp-session-host/src/lsphost/internal/core"
	"github.com/uber/lsp-session-host/src/lsphost/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
)

type Context struct {
	Environment        string `yaml:"environment"`
	RuntimeEnvironment string `yaml:"runtimeEnvironment"`
}

const (
	// EnvLocal indicates that the service is running locally.
	EnvLocal = "local"

	// EnvDevelopment indicates that the service is running in a development environment.
	EnvDevelopment = "development"

	// Environment variables
	_envLSPHostEnvironment = "LSPHOST_ENVIRONMENT"
)

func decorateEnvContext(env Context) Context {
	envValue := EnvLocal
	if os.Getenv(_envLSPHostEnvironment) == EnvDevelopment {
		envValue = EnvDevelopment
	}

	env.Environment = envValue
	env.RuntimeEnvironment = envValue
	return env
}

// DecorateConfigParams is the set of dependencies required to decorate the config.Provider.
type DecorateConfigParams struct {
	fx.In

	Env Context
	Cfg config.Provider
	FS  fs.HostFS
}

// decorateConfigProvider includes any steps that modify the config.Provider before it is used, or use its data for any startup related activities.
func decorateConfigProvider(p DecorateConfigParams) (config.Provider, error) {
	combined, err := ensureLogFolder(p.Cfg, p.FS)
	if err != nil {
		return nil, fmt.Errorf("ensuring log folder: %v", err)
	}

	return combined, nil
}

// Ensure that all configured logging output directories exist or create if necessary.
func ensureLogFolder(cfg config.Provider, fs fs.HostFS) (config.Provider, error) {
	var c core.LoggingConfig
	if err := cfg.Get("logging").Populate(&c); err != nil {
		return nil, fmt.Errorf("loading logging config: %v", err)
	}

	dirs := make([]string, 0, len(c.OutputPaths)+1)
	for _, outputPath := range c.OutputPaths {
		// stdout and stderr are not files.
		if outputPath == "stdout" || outputPath == "stderr" {
			continue
		}
		dirs = append(dirs, filepath.Dir(outputPath))
	}
	if c.SessionLogDirectory != "" {
		dirs = append(dirs, c.SessionLogDirectory)
	}

	for _, dir := range dirs {
		if err := fs.MkdirAll(dir); err != nil {
			return nil, fmt.Errorf("creating logging directory: %v", err)
		}
	}

	return cfg, nil
}
