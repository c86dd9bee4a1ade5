// Package cmd wires the flux CLI surface.
package cmd

import (
	"fmt"

	"github.com/fluxfw/flux/internal/config"
	"github.com/fluxfw/flux/internal/mod"
	"github.com/fluxfw/flux/internal/modules/services"
	"github.com/fluxfw/flux/internal/modules/update"
	"github.com/fluxfw/flux/internal/resolver"
	"github.com/fluxfw/flux/internal/script"
	"github.com/fluxfw/flux/internal/system"
	"github.com/fluxfw/flux/internal/utils"
	"github.com/fluxfw/flux/internal/workflow"

	"github.com/spf13/cobra"
)

var (
	// verbosityLevel is the command-line flag for setting the log level
	verbosityLevel string
	// configPath is the optional flat key-value configuration file
	configPath string

	// cfg is the effective configuration, loaded in the persistent pre-run
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "flux",
	Short: "A modular Linux server provisioning runner",
	Long: `Flux sequences server bring-up as named workflows of modules.
Modules are built-in handlers or on-disk provisioning scripts resolved by
naming convention.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		utils.SetLogLevel(utils.LogLevelFromString(verbosityLevel))

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		if err := utils.SetLogFile(cfg.LogFile); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		utils.CloseLogFile()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&verbosityLevel, "log-level", "l", "normal",
		"Set the logging verbosity level: quiet, normal, verbose, debug")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to the flux configuration file")
}

// newRegistry assembles the built-in module registry. Built-ins whose host
// collaborators are unavailable are left out rather than failing the whole
// CLI; resolution then falls through to on-disk scripts.
func newRegistry() *mod.Registry {
	registry := mod.NewRegistry()

	if pm, err := system.DetectPackageManager(); err == nil {
		if err := registry.Register(update.New(pm)); err != nil {
			utils.LogError("Failed to register update module: %v", err)
		}
	} else {
		utils.LogVerbose("update module unavailable: %v", err)
	}

	if system.SystemdAvailable() {
		if err := registry.Register(services.New(system.Systemd{})); err != nil {
			utils.LogError("Failed to register services module: %v", err)
		}
	} else {
		utils.LogVerbose("services module unavailable: systemctl not found")
	}

	return registry
}

func newResolver() *resolver.Resolver {
	return resolver.New(cfg.SearchDirs())
}

func scriptOptions() script.Options {
	return script.Options{
		Timeout:          cfg.ModuleTimeout,
		SyntaxCheck:      cfg.SyntaxCheck,
		EnsureExecutable: cfg.EnsureExecutable,
	}
}

// moduleLookup resolves a name against the registry first, then the script
// directories.
func moduleLookup(registry *mod.Registry, res *resolver.Resolver) workflow.Lookup {
	return func(name string) (mod.Module, error) {
		if m, ok := registry.Get(name); ok {
			return m, nil
		}
		path, err := res.Resolve(name)
		if err != nil {
			return nil, err
		}
		return script.New(name, path, resolver.ReadDescription(path), scriptOptions()), nil
	}
}

// workflowTable assembles the static table plus any configured overlay file.
func workflowTable() (workflow.Table, error) {
	table := workflow.Builtin()
	if cfg.WorkflowFile != "" {
		if err := table.MergeFile(cfg.WorkflowFile); err != nil {
			return nil, fmt.Errorf("failed to load workflow file: %w", err)
		}
	}
	return table, nil
}
