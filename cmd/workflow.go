package cmd

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fluxfw/flux/internal/utils"
	"github.com/fluxfw/flux/internal/workflow"

	"github.com/spf13/cobra"
)

var (
	assumeYes  bool
	reportPath string
)

var runWorkflowCmd = &cobra.Command{
	Use:   "run-workflow <workflow>",
	Short: "Execute a named workflow of modules",
	Long: `Execute a workflow's modules in order. Each step asks for confirmation
and a failed step offers a continue/abort choice; --yes suppresses all
prompts and continues past failures. The run always ends with a summary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		table, err := workflowTable()
		if err != nil {
			return err
		}

		executor := workflow.NewExecutor(workflow.Options{
			Table:          table,
			Lookup:         moduleLookup(newRegistry(), newResolver()),
			NonInteractive: assumeYes,
		})

		run, err := executor.Run(context.Background(), name)
		if err != nil {
			return err
		}

		if reportPath != "" {
			path := reportPath
			if filepath.Ext(path) == "" {
				path = filepath.Join(path, strings.ReplaceAll(name, " ", "_")+".report.yaml")
			}
			if err := workflow.SaveReport(run, path); err != nil {
				utils.LogWarning("Could not save run report: %v", err)
			} else {
				utils.LogVerbose("Run report saved to %s", path)
			}
		}
		return nil
	},
}

func init() {
	runWorkflowCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false,
		"Suppress per-step confirmation prompts and continue past failures")
	runWorkflowCmd.Flags().StringVarP(&reportPath, "report", "r", "",
		"Write the run report (YAML) to this file or directory")
	rootCmd.AddCommand(runWorkflowCmd)
}
