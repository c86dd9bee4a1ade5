// Package workflow provides the named provisioning sequences and the
// sequential executor that runs them.
package workflow

import (
	"time"
)

// StepStatus represents the status of a single module within a run
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusRunning   StepStatus = "running"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
	StepStatusSkipped   StepStatus = "skipped"
)

// RunStatus represents the status of the workflow run as a whole. A run
// always reaches Finished and a summary, regardless of step outcomes.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusFinished RunStatus = "finished"
)

// StepResult records what happened to one module.
type StepResult struct {
	Module   string        `yaml:"module"`
	Status   StepStatus    `yaml:"status"`
	ExitCode int           `yaml:"exitCode"`
	Duration time.Duration `yaml:"duration"`
	Error    string        `yaml:"error,omitempty"`
}

// Summary aggregates step outcomes for operator reporting.
type Summary struct {
	Completed int           `yaml:"completed"`
	Failed    int           `yaml:"failed"`
	Skipped   int           `yaml:"skipped"`
	Duration  time.Duration `yaml:"duration"`
}

// Run is the ephemeral record of one workflow execution.
type Run struct {
	ID        string       `yaml:"id"`
	Workflow  string       `yaml:"workflow"`
	Status    RunStatus    `yaml:"status"`
	StartTime time.Time    `yaml:"startTime"`
	EndTime   time.Time    `yaml:"endTime"`
	Steps     []StepResult `yaml:"steps"`
	Summary   Summary      `yaml:"summary"`
	// Aborted is set when the operator stopped the run after a failure.
	Aborted bool `yaml:"aborted,omitempty"`
}
