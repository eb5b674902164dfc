// Package jsonfile implements the JSON file store for larder inventories.
// The whole inventory is one pretty-printed JSON object; writes are atomic
// via the temp-file, fsync, rename pattern.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Store persists an inventory as a single JSON object keyed by item name.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store over the JSON file at path.
// A nil logger falls back to slog.Default().
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the inventory file. A missing file and a file that does not
// decode as a JSON object both yield an empty inventory and a nil error;
// the condition is logged. Entries with non-integer quantities are skipped,
// entries with non-positive quantities or empty names are dropped.
func (s *Store) Load() (*types.Inventory, error) {
	inv := types.NewInventory()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("inventory file not found, starting empty", "path", s.path)
		return inv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		s.logger.Error("cannot decode inventory file, starting empty",
			"path", s.path, "error", err)
		return inv, nil
	}
	if dec.More() {
		s.logger.Error("cannot decode inventory file, starting empty",
			"path", s.path, "error", "trailing data after JSON object")
		return inv, nil
	}

	for item, value := range raw {
		qty, err := types.ParseQuantity(value)
		if err != nil {
			s.logger.Error("skipping entry with non-integer quantity",
				"path", s.path, "item", item, "value", value)
			continue
		}
		if qty <= 0 {
			s.logger.Warn("dropping entry with non-positive quantity",
				"path", s.path, "item", item, "qty", qty)
			continue
		}
		if _, err := inv.Add(item, qty); err != nil {
			s.logger.Error("skipping invalid entry",
				"path", s.path, "item", item, "error", err)
		}
	}

	s.logger.Info("inventory loaded", "path", s.path, "items", inv.Len())
	return inv, nil
}

// Save writes the full inventory to the file, replacing its contents.
// The object is indented with four spaces and ends with a newline.
func (s *Store) Save(inv *types.Inventory) error {
	data, err := json.MarshalIndent(inv.Snapshot(), "", "    ")
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}
	s.logger.Info("inventory saved", "path", s.path, "items", inv.Len())
	return nil
}

// writeFileAtomic writes data to path using the temp-file, fsync, rename
// pattern. A failure at any step removes the temp file and leaves the
// target untouched.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".inventory-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
