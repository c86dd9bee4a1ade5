package system

import (
	"context"
	"fmt"
)

// ServiceManager abstracts init-system service control.
type ServiceManager interface {
	// Restart restarts the named service.
	Restart(ctx context.Context, name string) error
	// IsActive reports whether the named service is currently running.
	IsActive(ctx context.Context, name string) bool
}

// Systemd drives systemctl.
type Systemd struct{}

// SystemdAvailable reports whether systemctl is on PATH.
func SystemdAvailable() bool {
	_, err := execLookPath("systemctl")
	return err == nil
}

// Restart restarts a unit.
func (Systemd) Restart(ctx context.Context, name string) error {
	if err := runQuiet(ctx, "systemctl", "restart", name); err != nil {
		return fmt.Errorf("failed to restart %s: %w", name, err)
	}
	return nil
}

// IsActive checks a unit's active state.
func (Systemd) IsActive(ctx context.Context, name string) bool {
	return runQuiet(ctx, "systemctl", "is-active", "--quiet", name) == nil
}
