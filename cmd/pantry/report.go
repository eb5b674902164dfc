// Report command for the pantry CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the items report",
	Long: `Report renders all stocked items and their quantities in a bordered
table, sorted by name. With --json it prints the inventory as a JSON object.

Example:
  pantry report
  pantry report --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "report:", err)
			os.Exit(exitSysError)
		}

		inv, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "report:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if err := printJSON(inv.Snapshot()); err != nil {
				fmt.Fprintln(os.Stderr, "report:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		fmt.Println(report.Render(inv))
		return nil
	},
}
