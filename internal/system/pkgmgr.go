// Package system wraps the host-level collaborators the runner consumes:
// the package manager and the init system's service control.
package system

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/fluxfw/flux/internal/utils"
)

// Test seams, matching the exec wrappers used throughout the module tree.
var (
	execCommandContext = exec.CommandContext
	execLookPath       = exec.LookPath
)

// PackageManager abstracts package installation and index refresh.
type PackageManager interface {
	// Name identifies the backing tool for status output.
	Name() string
	// Update refreshes the package index and applies pending upgrades.
	Update(ctx context.Context) error
	// Install installs a single package non-interactively.
	Install(ctx context.Context, pkg string) error
}

// Apt drives apt-get on Debian-family hosts.
type Apt struct{}

func (Apt) Name() string { return "apt" }

// Update runs `apt-get update` followed by a non-interactive upgrade.
func (Apt) Update(ctx context.Context) error {
	if err := runQuiet(ctx, "apt-get", "update"); err != nil {
		return fmt.Errorf("package index refresh failed: %w", err)
	}
	if err := runQuiet(ctx, "apt-get", "-y", "upgrade"); err != nil {
		return fmt.Errorf("package upgrade failed: %w", err)
	}
	return nil
}

// Install installs pkg without prompting.
func (Apt) Install(ctx context.Context, pkg string) error {
	if err := runQuiet(ctx, "apt-get", "-y", "install", pkg); err != nil {
		return fmt.Errorf("failed to install %s: %w", pkg, err)
	}
	return nil
}

// Dnf drives dnf on Red Hat-family hosts.
type Dnf struct{}

func (Dnf) Name() string { return "dnf" }

func (Dnf) Update(ctx context.Context) error {
	if err := runQuiet(ctx, "dnf", "-y", "upgrade"); err != nil {
		return fmt.Errorf("package upgrade failed: %w", err)
	}
	return nil
}

func (Dnf) Install(ctx context.Context, pkg string) error {
	if err := runQuiet(ctx, "dnf", "-y", "install", pkg); err != nil {
		return fmt.Errorf("failed to install %s: %w", pkg, err)
	}
	return nil
}

// DetectPackageManager returns the package manager available on this host.
func DetectPackageManager() (PackageManager, error) {
	if _, err := execLookPath("apt-get"); err == nil {
		return Apt{}, nil
	}
	if _, err := execLookPath("dnf"); err == nil {
		return Dnf{}, nil
	}
	return nil, fmt.Errorf("no supported package manager found (tried apt-get, dnf)")
}

// runQuiet executes a command, logging its invocation at verbose level and
// discarding its output on success.
func runQuiet(ctx context.Context, name string, args ...string) error {
	utils.LogVerbose("Running %s %v", name, args)
	cmd := execCommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			utils.LogDebug("%s output: %s", name, string(out))
		}
		return err
	}
	return nil
}
