package workflow

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"
)

func TestSaveReport(t *testing.T) {
	run := &Run{
		ID:        "9e0f2c5a-0000-0000-0000-000000000000",
		Workflow:  "essential",
		Status:    RunStatusFinished,
		StartTime: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC),
		Steps: []StepResult{
			{Module: "update", Status: StepStatusCompleted},
			{Module: "certs", Status: StepStatusFailed, ExitCode: 7, Error: "curl exited 7"},
		},
		Summary: Summary{Completed: 1, Failed: 1, Duration: time.Minute},
	}

	path := filepath.Join(t.TempDir(), "reports", "essential.report.yaml")
	require.NoError(t, SaveReport(run, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Run
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, run.Workflow, loaded.Workflow)
	assert.Equal(t, run.Summary.Completed, loaded.Summary.Completed)
	require.Len(t, loaded.Steps, 2)
	assert.Equal(t, StepStatusFailed, loaded.Steps[1].Status)
	assert.Equal(t, 7, loaded.Steps[1].ExitCode)
}
