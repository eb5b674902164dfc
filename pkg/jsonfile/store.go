// Package jsonfile provides the public API for the JSON file inventory
// store. This package exposes the factory function for creating stores
// while keeping implementation details internal.
package jsonfile

import (
	"log/slog"

	"github.com/mesh-intelligence/larder/internal/jsonfile"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// NewStore creates a store over the JSON inventory file at path.
// A nil logger falls back to slog.Default().
//
// Example:
//
//	store := jsonfile.NewStore("inventory.json", nil)
//	inv, err := store.Load()
func NewStore(path string, logger *slog.Logger) types.Store {
	return jsonfile.NewStore(path, logger)
}
