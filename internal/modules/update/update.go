// Package update implements the built-in module refreshing the package
// index and applying pending upgrades.
package update

import (
	"context"
	"fmt"
	"time"

	"github.com/fluxfw/flux/internal/mod"
	"github.com/fluxfw/flux/internal/system"
	"github.com/fluxfw/flux/internal/utils"
)

// Module drives the host package manager.
type Module struct {
	pm system.PackageManager
}

// New creates an update module around pm.
func New(pm system.PackageManager) *Module {
	return &Module{pm: pm}
}

// Name returns the module name
func (m *Module) Name() string { return "update" }

// Description returns a one-line summary for list output
func (m *Module) Description() string {
	return "Refresh the package index and apply pending upgrades"
}

// Validate checks the arguments; update takes none.
func (m *Module) Validate(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("update takes no arguments, got %d", len(args))
	}
	return nil
}

// Execute refreshes and upgrades packages through the package manager.
func (m *Module) Execute(ctx context.Context, args []string) (mod.Result, error) {
	if err := m.Validate(args); err != nil {
		return mod.Result{}, err
	}

	utils.LogInfo("Updating packages via %s", m.pm.Name())

	start := time.Now()
	err := m.pm.Update(ctx)
	result := mod.Result{Duration: time.Since(start)}
	if err != nil {
		result.ExitCode = 1
		return result, err
	}
	return result, nil
}
