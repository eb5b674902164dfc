// Shared helpers for pantry CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/larder/pkg/jsonfile"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// resolveSettings builds the runtime configuration from the resolved
// inventory file path and the loaded low-stock threshold.
func resolveSettings() (types.Config, error) {
	file, err := resolveInventoryFile()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve inventory file: %w", err)
	}

	cfg := types.Config{
		File:      file,
		Threshold: configThreshold,
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}

	return cfg, nil
}

// openStore resolves the runtime configuration and returns a store for the
// inventory file along with the validated configuration.
func openStore() (types.Store, types.Config, error) {
	cfg, err := resolveSettings()
	if err != nil {
		return nil, types.Config{}, err
	}
	return jsonfile.NewStore(cfg.File, slog.Default()), cfg, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

// isItemNotFound returns true if the error wraps ErrItemNotFound.
func isItemNotFound(err error) bool {
	return errors.Is(err, types.ErrItemNotFound)
}
