// Low command for the pantry CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// flagThreshold overrides the config.yaml threshold when set.
var flagThreshold int64

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "List items below the low-stock threshold",
	Long: `Low lists the items whose quantity is strictly below the low-stock
threshold, sorted by name. The threshold comes from --threshold when set,
then config.yaml, then the built-in default.

Example:
  pantry low
  pantry low --threshold 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "low:", err)
			os.Exit(exitSysError)
		}

		threshold := cfg.Threshold
		if cmd.Flags().Changed("threshold") {
			threshold = flagThreshold
		}
		if threshold < 0 {
			fmt.Fprintf(os.Stderr, "invalid threshold %d: %s\n", threshold, types.ErrThresholdNegative)
			os.Exit(exitUserError)
		}

		inv, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "low:", err)
			os.Exit(exitSysError)
		}

		items := inv.LowStock(threshold)

		if flagJSON {
			if items == nil {
				items = []string{}
			}
			if err := printJSON(items); err != nil {
				fmt.Fprintln(os.Stderr, "low:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		for _, item := range items {
			fmt.Println(item)
		}
		return nil
	},
}

func init() {
	lowCmd.Flags().Int64Var(&flagThreshold, "threshold", types.DefaultThreshold, "low-stock threshold (overrides config.yaml)")
}
