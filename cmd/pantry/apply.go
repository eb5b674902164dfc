// Mutation application and outcome logging for pantry commands.
package main

import (
	"log/slog"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// applyMutation applies mut to inv and logs the outcome. Applied mutations
// are recorded in journal and returned as a journal entry. A non-nil error
// means the inventory was left untouched: removals of absent items log a
// warning, everything else logs an error.
func applyMutation(inv *types.Inventory, mut types.Mutation, journal *types.Journal) (types.JournalEntry, error) {
	total, err := mut.Apply(inv)
	switch {
	case err == nil:
		entry := journal.Record(mut.Op, mut.Item, mut.Qty, total)
		slog.Info("mutation applied", "op", mut.Op, "item", mut.Item, "qty", mut.Qty, "total", total)
		return entry, nil
	case isItemNotFound(err):
		slog.Warn("cannot remove item not in inventory", "item", mut.Item)
		return types.JournalEntry{}, err
	default:
		slog.Error("mutation rejected", "op", mut.Op, "item", mut.Item, "error", err)
		return types.JournalEntry{}, err
	}
}

// applyRawMutation decodes a single JSON mutation and applies it. Decode
// failures are logged as errors and leave the inventory untouched.
func applyRawMutation(inv *types.Inventory, raw []byte, journal *types.Journal) (types.JournalEntry, error) {
	mut, err := types.DecodeMutation(raw)
	if err != nil {
		slog.Error("mutation rejected", "raw", string(raw), "error", err)
		return types.JournalEntry{}, err
	}

	return applyMutation(inv, mut, journal)
}
