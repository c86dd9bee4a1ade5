// Package services implements the built-in module that restarts services
// and verifies they come back up.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fluxfw/flux/internal/mod"
	"github.com/fluxfw/flux/internal/system"
	"github.com/fluxfw/flux/internal/utils"
)

// Default units touched when the module runs without arguments.
var defaultServices = []string{"sshd", "cron"}

// Module restarts a list of services through the service manager.
type Module struct {
	sm system.ServiceManager
}

// New creates a services module around sm.
func New(sm system.ServiceManager) *Module {
	return &Module{sm: sm}
}

// Name returns the module name
func (m *Module) Name() string { return "services" }

// Description returns a one-line summary for list output
func (m *Module) Description() string {
	return "Restart system services and verify they are active"
}

// Validate checks the arguments. Each argument is a service name.
func (m *Module) Validate(args []string) error {
	for _, name := range args {
		if name == "" {
			return fmt.Errorf("service name cannot be empty")
		}
	}
	return nil
}

// Execute restarts each service and confirms it reports active afterwards.
func (m *Module) Execute(ctx context.Context, args []string) (mod.Result, error) {
	if err := m.Validate(args); err != nil {
		return mod.Result{}, err
	}

	names := args
	if len(names) == 0 {
		names = defaultServices
	}

	start := time.Now()
	for _, name := range names {
		utils.LogInfo("Restarting service %s", name)
		if err := m.sm.Restart(ctx, name); err != nil {
			return mod.Result{ExitCode: 1, Duration: time.Since(start)}, err
		}
		if !m.sm.IsActive(ctx, name) {
			return mod.Result{ExitCode: 1, Duration: time.Since(start)},
				fmt.Errorf("service %s is not active after restart", name)
		}
		utils.LogSuccess("Service %s is active", name)
	}
	return mod.Result{Duration: time.Since(start)}, nil
}
