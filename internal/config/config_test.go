package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flux.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "/etc/flux/modules.d", cfg.ModulesDir)
	assert.True(t, cfg.SyntaxCheck)
	assert.True(t, cfg.EnsureExecutable)
	assert.Equal(t, time.Duration(0), cfg.ModuleTimeout)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
FLUX_MODULES_DIR=/srv/flux/modules.d
FLUX_SCRIPTS_DIR=/srv/flux/scripts
FLUX_LEGACY_DIR=/srv/flux/legacy
FLUX_MODULE_TIMEOUT=90s
FLUX_SYNTAX_CHECK=false
FLUX_LOG_FILE=/var/log/flux.log
FLUX_WORKFLOW_FILE=/etc/flux/workflows.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/flux/modules.d", cfg.ModulesDir)
	assert.Equal(t, "/srv/flux/scripts", cfg.ScriptsDir)
	assert.Equal(t, "/srv/flux/legacy", cfg.LegacyDir)
	assert.Equal(t, 90*time.Second, cfg.ModuleTimeout)
	assert.False(t, cfg.SyntaxCheck)
	assert.Equal(t, "/var/log/flux.log", cfg.LogFile)
	assert.Equal(t, "/etc/flux/workflows.yaml", cfg.WorkflowFile)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "FLUX_MODULE_TIMEOUT=5m\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.ModuleTimeout)
	assert.Equal(t, "/etc/flux/modules.d", cfg.ModulesDir)
	assert.True(t, cfg.SyntaxCheck)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad duration", content: "FLUX_MODULE_TIMEOUT=never\n"},
		{name: "negative duration", content: "FLUX_MODULE_TIMEOUT=-10s\n"},
		{name: "bad bool", content: "FLUX_SYNTAX_CHECK=maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.conf"))
	assert.Error(t, err)
}

func TestSearchDirsSkipsEmpty(t *testing.T) {
	cfg := &Config{ModulesDir: "/a", LegacyDir: "/c"}
	assert.Equal(t, []string{"/a", "/c"}, cfg.SearchDirs())
}
