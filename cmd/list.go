package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listModulesCmd = &cobra.Command{
	Use:   "list-modules",
	Short: "Enumerate available modules",
	Long: `List built-in modules and every script discoverable in the configured
search directories, with a one-line description parsed from a leading
"# Description:" comment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := newRegistry()

		builtins := registry.List()
		if len(builtins) > 0 {
			fmt.Println("Built-in modules:")
			for _, m := range builtins {
				fmt.Printf("  %-16s %s\n", m.Name(), m.Description())
			}
		}

		entries, err := newResolver().Discover()
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			fmt.Println("Script modules:")
			for _, e := range entries {
				if _, shadowed := registry.Get(e.Name); shadowed {
					continue
				}
				fmt.Printf("  %-16s %s\n", e.Name, e.Description)
			}
		}

		if len(builtins) == 0 && len(entries) == 0 {
			fmt.Println("No modules found.")
		}
		return nil
	},
}

var listWorkflowsCmd = &cobra.Command{
	Use:   "list-workflows",
	Short: "Enumerate the workflow table",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := workflowTable()
		if err != nil {
			return err
		}
		for _, name := range table.Names() {
			modules, _ := table.Lookup(name)
			fmt.Printf("  %-16s %d modules\n", name, len(modules))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listModulesCmd)
	rootCmd.AddCommand(listWorkflowsCmd)
}
