// Remove command for the pantry CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var removeCmd = &cobra.Command{
	Use:   "remove <item> <qty>",
	Short: "Remove quantity of an item",
	Long: `Remove decreases the quantity on hand for an item. Quantities clamp at
zero: removing more than is stocked deletes the item. Removing an item that
is not stocked logs a warning and changes nothing.

Example:
  pantry remove apple 3`,
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
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}

		inv, err := store.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}

		journal := types.NewJournal()
		mut := types.Mutation{Op: types.OpRemove, Item: item, Qty: qty}
		entry, err := applyMutation(inv, mut, journal)
		if err != nil {
			if isItemNotFound(err) {
				// Removing an absent item is a logged no-op.
				return nil
			}
			os.Exit(exitUserError)
		}

		if err := store.Save(inv); err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if err := printJSON(entry); err != nil {
				fmt.Fprintln(os.Stderr, "remove:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		fmt.Printf("Removed %d %s (remaining %d)\n", qty, item, entry.Total)
		return nil
	},
}
