package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fluxfw/flux/internal/mod"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
	return path
}

func searchDirs(t *testing.T) (primary, scripts, legacy string) {
	t.Helper()
	root := t.TempDir()
	primary = filepath.Join(root, "modules.d")
	scripts = filepath.Join(root, "scripts")
	legacy = filepath.Join(root, "legacy")
	for _, d := range []string{primary, scripts, legacy} {
		require.NoError(t, os.Mkdir(d, 0755))
	}
	return primary, scripts, legacy
}

func TestResolveDirectoryPriority(t *testing.T) {
	primary, scripts, legacy := searchDirs(t)
	r := New([]string{primary, scripts, legacy})

	writeScript(t, scripts, "certs.sh", "#!/bin/sh\n")
	writeScript(t, legacy, "certs.sh", "#!/bin/sh\n")

	path, err := r.Resolve("certs")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(scripts, "certs.sh"), path)

	// A primary-directory match shadows both.
	want := writeScript(t, primary, "mod-certs.sh", "#!/bin/sh\n")
	path, err = r.Resolve("certs")
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestResolveCandidateOrderWithinDirectory(t *testing.T) {
	primary, scripts, legacy := searchDirs(t)
	r := New([]string{primary, scripts, legacy})

	writeScript(t, primary, "mod-sysctl.sh", "#!/bin/sh\n")
	bare := writeScript(t, primary, "sysctl.sh", "#!/bin/sh\n")

	path, err := r.Resolve("sysctl")
	require.NoError(t, err)
	assert.Equal(t, bare, path)
}

func TestResolveBareFilename(t *testing.T) {
	primary, scripts, legacy := searchDirs(t)
	r := New([]string{primary, scripts, legacy})

	want := writeScript(t, legacy, "ssh", "#!/bin/sh\n")

	path, err := r.Resolve("ssh")
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestResolveUnknownModule(t *testing.T) {
	primary, scripts, legacy := searchDirs(t)
	r := New([]string{primary, scripts, legacy})

	_, err := r.Resolve("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, mod.ErrModuleNotFound)

	var notFound *mod.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "nonexistent", notFound.Name)
	assert.Equal(t, []string{primary, scripts, legacy}, notFound.Searched)
}

func TestResolveIgnoresDirectories(t *testing.T) {
	primary, scripts, legacy := searchDirs(t)
	r := New([]string{primary, scripts, legacy})

	require.NoError(t, os.Mkdir(filepath.Join(primary, "firewall.sh"), 0755))
	want := writeScript(t, scripts, "firewall.sh", "#!/bin/sh\n")

	path, err := r.Resolve("firewall")
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestDiscover(t *testing.T) {
	primary, scripts, legacy := searchDirs(t)
	r := New([]string{primary, scripts, legacy})

	writeScript(t, primary, "mod-sysctl.sh", "#!/bin/bash\n# Description: Tune kernel parameters\nsysctl --system\n")
	writeScript(t, primary, "certs.sh", "#!/bin/bash\nupdate-ca-certificates\n")
	writeScript(t, scripts, "mod-sysctl.sh", "#!/bin/bash\n# Description: shadowed copy\n")
	writeScript(t, scripts, "ssh.sh", "#!/bin/bash\n# Description: Harden the SSH daemon\n")
	writeScript(t, legacy, "README", "not a module\n")

	entries, err := r.Discover()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "certs", entries[0].Name)
	assert.Equal(t, PlaceholderDescription, entries[0].Description)

	assert.Equal(t, "ssh", entries[1].Name)
	assert.Equal(t, "Harden the SSH daemon", entries[1].Description)

	assert.Equal(t, "sysctl", entries[2].Name)
	assert.Equal(t, "Tune kernel parameters", entries[2].Description)
	assert.Equal(t, filepath.Join(primary, "mod-sysctl.sh"), entries[2].Path)
}

func TestDiscoverMissingDirectories(t *testing.T) {
	r := New([]string{filepath.Join(t.TempDir(), "absent")})

	entries, err := r.Discover()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadDescriptionStopsAtCode(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "late.sh", "#!/bin/bash\nset -e\n# Description: too late\n")

	assert.Equal(t, PlaceholderDescription, ReadDescription(path))
}
