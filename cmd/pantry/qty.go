// Qty command for the pantry CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var qtyCmd = &cobra.Command{
	Use:   "qty <item>",
	Short: "Print the quantity on hand for an item",
	Long: `Qty prints the quantity on hand for an item. Items that are not stocked
report zero.

Example:
  pantry qty apple
  pantry qty apple --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item := args[0]

		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "qty:", err)
			os.Exit(exitSysError)
		}

		inv, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "qty:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			entry := types.Entry{Item: item, Quantity: inv.Quantity(item)}
			if err := printJSON(entry); err != nil {
				fmt.Fprintln(os.Stderr, "qty:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		fmt.Println(inv.Quantity(item))
		return nil
	},
}
