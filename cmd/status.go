package cmd

import (
	"fmt"
	"os"

	"github.com/fluxfw/flux/internal/system"
	"github.com/fluxfw/flux/internal/utils"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the host environment seen by flux",
	Long:  `A read-only report: package manager, service control, module search directories and counts, log file. Nothing is modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pm, err := system.DetectPackageManager(); err == nil {
			fmt.Printf("Package manager:   %s\n", pm.Name())
		} else {
			fmt.Printf("Package manager:   %s\n", utils.Warning("none detected"))
		}

		if system.SystemdAvailable() {
			fmt.Println("Service control:   systemd")
		} else {
			fmt.Printf("Service control:   %s\n", utils.Warning("systemctl not found"))
		}

		fmt.Println("Module directories:")
		for _, dir := range cfg.SearchDirs() {
			if _, err := os.Stat(dir); err != nil {
				fmt.Printf("  %-24s (missing)\n", dir)
				continue
			}
			fmt.Printf("  %s\n", dir)
		}

		entries, err := newResolver().Discover()
		if err != nil {
			return err
		}
		fmt.Printf("Script modules:    %d\n", len(entries))
		fmt.Printf("Built-in modules:  %d\n", len(newRegistry().List()))

		if cfg.LogFile != "" {
			fmt.Printf("Log file:          %s\n", cfg.LogFile)
		} else {
			fmt.Println("Log file:          (disabled)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
