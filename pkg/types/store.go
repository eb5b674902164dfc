package types

// Store persists inventory snapshots. Implementations read and write the
// whole inventory at once; there is no partial update.
type Store interface {
	// Load reads the persisted inventory. A missing or unreadable-as-JSON
	// file yields an empty inventory and a nil error; only I/O failures on
	// an existing file are returned as errors.
	Load() (*Inventory, error)

	// Save writes the full inventory, replacing whatever was persisted
	// before. The write is atomic: a failure mid-write leaves the previous
	// contents intact.
	Save(inv *Inventory) error
}
