package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/fluxfw/flux/internal/mod"
	"github.com/fluxfw/flux/internal/utils"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <module> [args...]",
	Short: "Resolve and execute a single module",
	Long: `Execute one module with pass-through arguments. The module is looked up
among the built-ins first, then resolved against the configured script
directories. The module's exit code becomes flux's exit code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, moduleArgs := args[0], args[1:]

		lookup := moduleLookup(newRegistry(), newResolver())
		module, err := lookup(name)
		if err != nil {
			return err
		}

		if err := module.Validate(moduleArgs); err != nil {
			return err
		}

		utils.LogInfo("Running module %s", name)
		result, err := module.Execute(context.Background(), moduleArgs)
		if err != nil {
			utils.LogError("Module %s failed: %v", name, err)

			// Propagate the child's exit status.
			var execErr *mod.ExecError
			if errors.As(err, &execErr) && execErr.ExitCode > 0 {
				utils.CloseLogFile()
				os.Exit(execErr.ExitCode)
			}
			return err
		}

		utils.LogSuccess("Module %s completed in %s", name, result.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
