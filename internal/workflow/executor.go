package workflow

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fluxfw/flux/internal/mod"
	"github.com/fluxfw/flux/internal/utils"

	"github.com/google/uuid"
)

// Lookup turns a module name into an executable module. The cmd layer wires
// the registry with an on-disk resolver fallback.
type Lookup func(name string) (mod.Module, error)

// Options configure a workflow executor.
type Options struct {
	Table  Table
	Lookup Lookup

	// In receives operator answers to the per-step and continue/abort
	// prompts. Ignored in non-interactive mode.
	In io.Reader
	// Out receives the prompts and the final summary.
	Out io.Writer

	// NonInteractive suppresses all prompts: every step runs, and a failed
	// step never aborts the remaining ones.
	NonInteractive bool

	Now func() time.Time
}

// Executor runs workflows one module at a time. Errors from individual
// modules never escape Run; they are tallied into the summary.
type Executor struct {
	opts Options
}

// NewExecutor creates an executor with the supplied options.
func NewExecutor(opts Options) *Executor {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Executor{opts: opts}
}

// Run executes the named workflow. The only error it returns is
// *UnknownWorkflowError; every module-level failure is recorded in the run.
func (e *Executor) Run(ctx context.Context, name string) (*Run, error) {
	modules, err := e.opts.Table.Lookup(name)
	if err != nil {
		return nil, err
	}

	run := &Run{
		ID:        uuid.New().String(),
		Workflow:  name,
		Status:    RunStatusRunning,
		StartTime: e.opts.Now(),
		Steps:     make([]StepResult, 0, len(modules)),
	}

	utils.LogInfo("Starting workflow %s (%d modules, run %s)", name, len(modules), run.ID)

	prompter := bufio.NewReader(e.opts.In)

	for _, moduleName := range modules {
		step := StepResult{Module: moduleName, Status: StepStatusPending}

		if !e.opts.NonInteractive {
			ok, err := e.confirm(prompter, fmt.Sprintf("Execute module %q? [Y/n]: ", moduleName), true)
			if err != nil || !ok {
				step.Status = StepStatusSkipped
				run.Steps = append(run.Steps, step)
				run.Summary.Skipped++
				utils.LogWarning("Skipped module %s", moduleName)
				continue
			}
		}

		step.Status = StepStatusRunning
		utils.LogInfo("Running module %s", moduleName)

		result, execErr := e.executeModule(ctx, moduleName)
		step.Duration = result.Duration
		step.ExitCode = result.ExitCode

		if execErr != nil {
			step.Status = StepStatusFailed
			step.Error = execErr.Error()
			run.Steps = append(run.Steps, step)
			run.Summary.Failed++
			utils.LogError("Module %s failed: %v", moduleName, execErr)

			if !e.opts.NonInteractive {
				ok, err := e.confirm(prompter, "Continue with remaining modules? [y/N]: ", false)
				if err != nil || !ok {
					run.Aborted = true
					utils.LogWarning("Aborting workflow %s after failure in %s", name, moduleName)
					break
				}
			}
			continue
		}

		step.Status = StepStatusCompleted
		run.Steps = append(run.Steps, step)
		run.Summary.Completed++
		utils.LogSuccess("Module %s completed in %s", moduleName, result.Duration.Round(time.Millisecond))
	}

	run.EndTime = e.opts.Now()
	run.Status = RunStatusFinished
	run.Summary.Duration = run.EndTime.Sub(run.StartTime)

	e.printSummary(run)
	return run, nil
}

// executeModule resolves and runs one module, validating first.
func (e *Executor) executeModule(ctx context.Context, name string) (mod.Result, error) {
	module, err := e.opts.Lookup(name)
	if err != nil {
		return mod.Result{}, err
	}
	if err := module.Validate(nil); err != nil {
		return mod.Result{}, err
	}
	return module.Execute(ctx, nil)
}

// confirm asks a yes/no question and returns the answer, with def applied to
// an empty reply. EOF on the prompt reader counts as declining.
func (e *Executor) confirm(r *bufio.Reader, prompt string, def bool) (bool, error) {
	fmt.Fprint(e.opts.Out, prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (e *Executor) printSummary(run *Run) {
	s := run.Summary
	fmt.Fprintf(e.opts.Out, "\nWorkflow %s finished in %s: %d completed, %d failed, %d skipped\n",
		run.Workflow, s.Duration.Round(time.Millisecond), s.Completed, s.Failed, s.Skipped)
	if s.Failed > 0 {
		fmt.Fprintln(e.opts.Out, "Inspect the log file for details on failed modules.")
	}
}

// IsUnknownWorkflow reports whether err is an UnknownWorkflowError.
func IsUnknownWorkflow(err error) bool {
	var uw *UnknownWorkflowError
	return errors.As(err, &uw)
}
