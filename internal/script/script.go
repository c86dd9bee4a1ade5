// Package script wraps an on-disk provisioning script as a mod.Module. The
// child process inherits the parent environment and performs arbitrary
// system mutations; nothing here tracks or rolls those back.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/fluxfw/flux/internal/mod"
	"github.com/fluxfw/flux/internal/utils"
)

// execCommandContext allows tests to substitute the child process.
var execCommandContext = exec.CommandContext

// Options control how script modules execute.
type Options struct {
	// Timeout bounds one execution. Zero or negative means no limit.
	Timeout time.Duration
	// SyntaxCheck runs `bash -n` before executing.
	SyntaxCheck bool
	// EnsureExecutable sets the executable bit if the script lacks it.
	EnsureExecutable bool
}

// Module is a script-backed mod.Module.
type Module struct {
	name        string
	path        string
	description string
	opts        Options
}

// New wraps the script at path as a module.
func New(name, path, description string, opts Options) *Module {
	return &Module{name: name, path: path, description: description, opts: opts}
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Description returns the parsed description header
func (m *Module) Description() string { return m.description }

// Path returns the resolved script location
func (m *Module) Path() string { return m.path }

// Validate runs the static pre-flight checks without executing the script.
func (m *Module) Validate(args []string) error {
	if m.opts.SyntaxCheck {
		return m.syntaxCheck()
	}
	return nil
}

// syntaxCheck runs `bash -n` against the script.
func (m *Module) syntaxCheck() error {
	cmd := execCommandContext(context.Background(), "bash", "-n", m.path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &mod.SyntaxError{Path: m.path, Detail: strings.TrimSpace(string(out))}
	}
	return nil
}

// Execute runs the script as a child process, enforcing the configured
// timeout. The child's stdout and stderr pass through to the operator.
func (m *Module) Execute(ctx context.Context, args []string) (mod.Result, error) {
	if m.opts.EnsureExecutable {
		if err := m.ensureExecutable(); err != nil {
			return mod.Result{}, err
		}
	}

	if m.opts.SyntaxCheck {
		if err := m.syntaxCheck(); err != nil {
			return mod.Result{}, err
		}
	}

	if m.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.opts.Timeout)
		defer cancel()
	}

	utils.LogVerbose("Executing %s %s", m.path, strings.Join(args, " "))

	cmd := execCommandContext(ctx, m.path, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	start := time.Now()
	err := cmd.Run()
	result := mod.Result{Duration: time.Since(start)}

	if ctx.Err() == context.DeadlineExceeded {
		return result, &mod.TimeoutError{Name: m.name, Limit: m.opts.Timeout}
	}
	if err != nil {
		result.ExitCode = exitCode(err)
		return result, &mod.ExecError{Name: m.name, ExitCode: result.ExitCode}
	}
	return result, nil
}

// ensureExecutable adds the owner/group/other execute bits when missing.
func (m *Module) ensureExecutable() error {
	info, err := os.Stat(m.path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", m.path, err)
	}
	if info.Mode().Perm()&0111 != 0 {
		return nil
	}
	if err := os.Chmod(m.path, info.Mode().Perm()|0755); err != nil {
		return fmt.Errorf("failed to make %s executable: %w", m.path, err)
	}
	return nil
}

// exitCode extracts the child's exit status, defaulting to 1 when the
// process never produced one.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
