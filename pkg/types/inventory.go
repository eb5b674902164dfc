package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Inventory operation errors.
var (
	ErrInvalidItem     = errors.New("invalid item name")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrItemNotFound    = errors.New("item not found")
)

// Entry is one item with its quantity on hand.
type Entry struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
}

// Inventory maps item names to quantities on hand.
// Stored quantities are always strictly positive: any operation that would
// leave an item at zero or below removes the item instead. Listings are
// ordered lexicographically by item name.
type Inventory struct {
	items map[string]int64
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{items: make(map[string]int64)}
}

// Add increases the quantity of item by qty and returns the new total.
// An absent item is created. A negative qty decreases the quantity; when
// the total reaches zero or below the item is removed and 0 is returned.
// Returns ErrInvalidItem if the item name is empty.
func (inv *Inventory) Add(item string, qty int64) (int64, error) {
	if item == "" {
		return 0, ErrInvalidItem
	}
	total := inv.items[item] + qty
	if total <= 0 {
		delete(inv.items, item)
		return 0, nil
	}
	inv.items[item] = total
	return total, nil
}

// Remove decreases the quantity of item by qty and returns the remaining
// total. When the total reaches zero or below the item is removed and 0 is
// returned. Returns ErrInvalidItem if the item name is empty and
// ErrItemNotFound if the item is not stocked; neither mutates the inventory.
func (inv *Inventory) Remove(item string, qty int64) (int64, error) {
	if item == "" {
		return 0, ErrInvalidItem
	}
	current, ok := inv.items[item]
	if !ok {
		return 0, ErrItemNotFound
	}
	remaining := current - qty
	if remaining <= 0 {
		delete(inv.items, item)
		return 0, nil
	}
	inv.items[item] = remaining
	return remaining, nil
}

// Quantity returns the quantity on hand for item, or 0 if the item is not
// stocked. Quantity never fails; absence and zero are indistinguishable.
func (inv *Inventory) Quantity(item string) int64 {
	return inv.items[item]
}

// LowStock returns the names of items whose quantity is strictly below
// threshold, in lexicographic order. Returns nil when no item qualifies.
func (inv *Inventory) LowStock(threshold int64) []string {
	var low []string
	for item, qty := range inv.items {
		if qty < threshold {
			low = append(low, item)
		}
	}
	sort.Strings(low)
	return low
}

// Entries returns all items with their quantities in lexicographic order.
func (inv *Inventory) Entries() []Entry {
	entries := make([]Entry, 0, len(inv.items))
	for item, qty := range inv.items {
		entries = append(entries, Entry{Item: item, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Item < entries[j].Item })
	return entries
}

// Len returns the number of distinct items stocked.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Snapshot returns a copy of the item-to-quantity mapping.
func (inv *Inventory) Snapshot() map[string]int64 {
	snapshot := make(map[string]int64, len(inv.items))
	for item, qty := range inv.items {
		snapshot[item] = qty
	}
	return snapshot
}

// ParseQuantity coerces a JSON-decoded value into an integer quantity.
// Accepted: Go integers, json.Number holding an integer, and floats with
// no fractional part. Returns ErrInvalidQuantity for everything else.
func ParseQuantity(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil || f != float64(int64(f)) {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidQuantity, v.String())
		}
		return int64(f), nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidQuantity,
				strconv.FormatFloat(v, 'g', -1, 64))
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidQuantity, value)
	}
}
