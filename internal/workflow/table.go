package workflow

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnknownWorkflowError reports a name absent from the table, together with
// the valid alternatives.
type UnknownWorkflowError struct {
	Name  string
	Valid []string
}

func (e *UnknownWorkflowError) Error() string {
	return fmt.Sprintf("unknown workflow %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}

// Table maps workflow names to ordered module lists. Immutable at runtime
// once assembled; membership is not checked against the resolver, so a
// missing module fails at execution time.
type Table map[string][]string

// Builtin returns the static workflow table shipped with flux.
func Builtin() Table {
	return Table{
		"essential":  {"update", "certs", "sysctl", "ssh"},
		"hardening":  {"ssh", "firewall", "sysctl"},
		"network":    {"interfaces", "firewall"},
		"monitoring": {"netdata", "services"},
		"full":       {"update", "certs", "sysctl", "ssh", "firewall", "interfaces", "netdata", "services"},
	}
}

// Names returns the workflow names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the module list for name.
func (t Table) Lookup(name string) ([]string, error) {
	modules, ok := t[name]
	if !ok {
		return nil, &UnknownWorkflowError{Name: name, Valid: t.Names()}
	}
	return modules, nil
}

// MergeFile overlays workflow definitions from a YAML file, a flat mapping
// of name to module list. File entries shadow built-in ones of the same
// name.
func (t Table) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read workflow file: %w", err)
	}

	var overlay map[string][]string
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse workflow file: %w", err)
	}

	for name, modules := range overlay {
		if name == "" {
			return fmt.Errorf("workflow file contains an entry with an empty name")
		}
		if len(modules) == 0 {
			return fmt.Errorf("workflow %q has no modules", name)
		}
		t[name] = modules
	}
	return nil
}
