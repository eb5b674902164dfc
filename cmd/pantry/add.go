// Add command for the pantry CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <item> <qty>",
	Short: "Add quantity of an item",
	Long: `Add increases the quantity on hand for an item, creating the item if it
is not yet stocked. A non-positive resulting total removes the item.

Example:
  pantry add apple 10
  pantry add apple -3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		item := args[0]
		qty, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid quantity %q (expected integer)\n", args[1])
			os.Exit(exitUserError)
		}

		store, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}

		inv, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}

		journal := types.NewJournal()
		mut := types.Mutation{Op: types.OpAdd, Item: item, Qty: qty}
		entry, err := applyMutation(inv, mut, journal)
		if err != nil {
			os.Exit(exitUserError)
		}

		if err := store.Save(inv); err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if err := printJSON(entry); err != nil {
				fmt.Fprintln(os.Stderr, "add:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		fmt.Printf("Added %d %s (total %d)\n", qty, item, entry.Total)
		return nil
	},
}
