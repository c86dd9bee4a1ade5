// Package config loads the flat key-value configuration file consumed by the
// runner. The file is never written by flux itself.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default locations probed when no --config flag is given.
var defaultPaths = []string{
	"/etc/flux/flux.conf",
	"flux.conf",
}

// Config holds the runner settings. Zero values fall back to Default().
type Config struct {
	// ModulesDir is the primary module directory.
	ModulesDir string
	// ScriptsDir is the secondary location for provisioning scripts.
	ScriptsDir string
	// LegacyDir is probed last, for installations predating the modules.d
	// layout.
	LegacyDir string

	// ModuleTimeout bounds a single module execution. Zero means no limit.
	ModuleTimeout time.Duration
	// SyntaxCheck runs `bash -n` on script modules before executing them.
	SyntaxCheck bool
	// EnsureExecutable sets the executable bit on resolved scripts if missing.
	EnsureExecutable bool

	// LogFile is the append-only log sink. Empty disables file logging.
	LogFile string
	// WorkflowFile optionally extends the built-in workflow table.
	WorkflowFile string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ModulesDir:       "/etc/flux/modules.d",
		ScriptsDir:       "/usr/local/lib/flux",
		LegacyDir:        "/opt/flux/scripts",
		ModuleTimeout:    0,
		SyntaxCheck:      true,
		EnsureExecutable: true,
	}
}

// Load reads the configuration file at path and applies it over Default().
// With an empty path the default locations are probed and a missing file is
// not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, candidate := range defaultPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.apply(values); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) apply(values map[string]string) error {
	if v, ok := values["FLUX_MODULES_DIR"]; ok {
		c.ModulesDir = v
	}
	if v, ok := values["FLUX_SCRIPTS_DIR"]; ok {
		c.ScriptsDir = v
	}
	if v, ok := values["FLUX_LEGACY_DIR"]; ok {
		c.LegacyDir = v
	}
	if v, ok := values["FLUX_MODULE_TIMEOUT"]; ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FLUX_MODULE_TIMEOUT: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("FLUX_MODULE_TIMEOUT must not be negative")
		}
		c.ModuleTimeout = d
	}
	if v, ok := values["FLUX_SYNTAX_CHECK"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FLUX_SYNTAX_CHECK: %w", err)
		}
		c.SyntaxCheck = b
	}
	if v, ok := values["FLUX_ENSURE_EXECUTABLE"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FLUX_ENSURE_EXECUTABLE: %w", err)
		}
		c.EnsureExecutable = b
	}
	if v, ok := values["FLUX_LOG_FILE"]; ok {
		c.LogFile = v
	}
	if v, ok := values["FLUX_WORKFLOW_FILE"]; ok {
		c.WorkflowFile = v
	}
	return nil
}

// SearchDirs returns the module search directories in priority order,
// skipping unset entries.
func (c *Config) SearchDirs() []string {
	dirs := make([]string, 0, 3)
	for _, d := range []string{c.ModulesDir, c.ScriptsDir, c.LegacyDir} {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
