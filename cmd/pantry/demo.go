// Demonstration sequence run by the bare pantry command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/report"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// demoScript is the fixed mutation sequence applied by the bare command.
// The third mutation carries wrong JSON types and must be rejected without
// touching the inventory; the last removes an item that was never stocked.
var demoScript = []string{
	`{"op":"add","item":"apple","qty":10}`,
	`{"op":"add","item":"banana","qty":2}`,
	`{"op":"add","item":123,"qty":"ten"}`,
	`{"op":"remove","item":"apple","qty":3}`,
	`{"op":"remove","item":"orange","qty":1}`,
}

func runDemo(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pantry:", err)
		os.Exit(exitSysError)
	}

	inv, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load inventory:", err)
		os.Exit(exitSysError)
	}

	journal := types.NewJournal()
	for _, raw := range demoScript {
		// Rejected mutations are logged and skipped.
		applyRawMutation(inv, []byte(raw), journal)
	}

	fmt.Printf("apple stock: %d\n", inv.Quantity("apple"))
	fmt.Printf("low stock: %v\n", inv.LowStock(cfg.Threshold))

	if err := store.Save(inv); err != nil {
		fmt.Fprintln(os.Stderr, "save inventory:", err)
		os.Exit(exitSysError)
	}

	fmt.Println(report.Render(inv))
	return nil
}
