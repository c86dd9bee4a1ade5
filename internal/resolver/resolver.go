// Package resolver maps logical module names to provisioning scripts on
// disk. Resolution is a read-only filesystem probe; nothing is executed.
package resolver

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fluxfw/flux/internal/mod"
)

// Naming convention for module scripts. A bare name, the name with the
// script suffix, and the prefixed form are all accepted, in that order.
const (
	modulePrefix = "mod-"
	moduleSuffix = ".sh"
)

// PlaceholderDescription is reported for scripts without a description
// header.
const PlaceholderDescription = "(no description)"

// Entry describes one discoverable module script.
type Entry struct {
	Name        string
	Path        string
	Description string
}

// Resolver probes an ordered list of directories for module scripts.
type Resolver struct {
	dirs []string
}

// New creates a resolver over dirs, highest priority first.
func New(dirs []string) *Resolver {
	return &Resolver{dirs: dirs}
}

// candidates returns the filenames probed for name within one directory.
func candidates(name string) []string {
	return []string{
		name,
		name + moduleSuffix,
		modulePrefix + name + moduleSuffix,
	}
}

// Resolve returns the first existing, readable regular file matching name in
// priority order. It fails with mod.ErrModuleNotFound when nothing matches.
func (r *Resolver) Resolve(name string) (string, error) {
	for _, dir := range r.dirs {
		for _, file := range candidates(name) {
			path := filepath.Join(dir, file)
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			f, err := os.Open(path)
			if err != nil {
				continue
			}
			_ = f.Close()
			return path, nil
		}
	}
	return "", &mod.NotFoundError{Name: name, Searched: r.dirs}
}

// Discover enumerates every module script in the search directories, sorted
// by name. A name shadowed by a higher-priority directory appears once, with
// the winning path.
func (r *Resolver) Discover() ([]Entry, error) {
	seen := make(map[string]struct{})
	entries := make([]Entry, 0)

	for _, dir := range r.dirs {
		dirEntries, err := os.ReadDir(dir)
		if err != nil {
			// Missing search directories are normal on a fresh host.
			continue
		}
		for _, de := range dirEntries {
			if de.IsDir() {
				continue
			}
			name, ok := moduleName(de.Name())
			if !ok {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}

			path := filepath.Join(dir, de.Name())
			entries = append(entries, Entry{
				Name:        name,
				Path:        path,
				Description: ReadDescription(path),
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// moduleName strips the naming convention from a filename. Files outside the
// convention are not modules.
func moduleName(filename string) (string, bool) {
	if !strings.HasSuffix(filename, moduleSuffix) {
		return "", false
	}
	name := strings.TrimSuffix(filename, moduleSuffix)
	name = strings.TrimPrefix(name, modulePrefix)
	if name == "" {
		return "", false
	}
	return name, true
}

// ReadDescription parses a one-line description from a leading comment of
// the form `# Description: ...`. Best effort; only the first few lines are
// inspected.
func ReadDescription(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return PlaceholderDescription
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for lines := 0; scanner.Scan() && lines < 10; lines++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#!") {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			// Description headers only appear before the first code line.
			break
		}
		comment := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if rest, ok := strings.CutPrefix(comment, "Description:"); ok {
			if desc := strings.TrimSpace(rest); desc != "" {
				return desc
			}
		}
	}
	return PlaceholderDescription
}
