package mod

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel values for errors.Is checks across package boundaries.
var (
	// ErrModuleNotFound indicates a name that resolved to no file and no
	// registered module.
	ErrModuleNotFound = errors.New("module not found")

	// ErrSyntaxInvalid indicates a script that failed the pre-flight
	// syntax check. The script was never executed.
	ErrSyntaxInvalid = errors.New("module syntax invalid")
)

// NotFoundError reports an unresolvable module name together with the
// locations that were probed.
type NotFoundError struct {
	Name     string
	Searched []string
}

func (e *NotFoundError) Error() string {
	if len(e.Searched) == 0 {
		return fmt.Sprintf("module %q not found", e.Name)
	}
	return fmt.Sprintf("module %q not found (searched: %s)", e.Name, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrModuleNotFound
}

// SyntaxError reports a failed pre-flight check for a script module.
type SyntaxError struct {
	Path   string
	Detail string
}

func (e *SyntaxError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("syntax check failed for %s", e.Path)
	}
	return fmt.Sprintf("syntax check failed for %s: %s", e.Path, e.Detail)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntaxInvalid
}

// TimeoutError reports a module killed after exceeding its wall-clock budget.
type TimeoutError struct {
	Name  string
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("module %s timed out after %s", e.Name, e.Limit)
}

// ExecError reports a module that ran to completion with a non-zero exit
// status.
type ExecError struct {
	Name     string
	ExitCode int
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("module %s failed with exit code %d", e.Name, e.ExitCode)
}
