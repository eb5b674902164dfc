package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Mutation operation constants.
const (
	OpAdd    = "add"
	OpRemove = "remove"
)

// validOps is the set of recognized mutation operations.
var validOps = map[string]bool{
	OpAdd:    true,
	OpRemove: true,
}

// ErrInvalidOp reports a mutation whose operation is not recognized.
var ErrInvalidOp = errors.New("invalid operation")

// Mutation is one decoded add or remove instruction.
type Mutation struct {
	Op   string `json:"op"`
	Item string `json:"item"`
	Qty  int64  `json:"qty"`
}

// rawMutation separates decoding from validation. Qty is a pointer so a
// missing or null qty is distinguishable from zero.
type rawMutation struct {
	Op   string `json:"op"`
	Item string `json:"item"`
	Qty  *int64 `json:"qty"`
}

// DecodeMutation parses a JSON mutation of the form
// {"op":"add","item":"apple","qty":10}. The op must be "add" or "remove"
// (ErrInvalidOp), the item a non-empty string (ErrInvalidItem), and the qty
// an integer (ErrInvalidQuantity). A field holding the wrong JSON type maps
// to the matching sentinel, so an ill-typed Mutation value cannot be
// constructed from input.
func DecodeMutation(data []byte) (Mutation, error) {
	var raw rawMutation
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			switch typeErr.Field {
			case "item":
				return Mutation{}, fmt.Errorf("%w: item must be a string, got %s",
					ErrInvalidItem, typeErr.Value)
			case "qty":
				return Mutation{}, fmt.Errorf("%w: qty must be an integer, got %s",
					ErrInvalidQuantity, typeErr.Value)
			}
		}
		return Mutation{}, fmt.Errorf("decoding mutation: %w", err)
	}
	if !validOps[raw.Op] {
		return Mutation{}, fmt.Errorf("%w: %q", ErrInvalidOp, raw.Op)
	}
	if raw.Item == "" {
		return Mutation{}, fmt.Errorf("%w: item must not be empty", ErrInvalidItem)
	}
	if raw.Qty == nil {
		return Mutation{}, fmt.Errorf("%w: qty is required", ErrInvalidQuantity)
	}
	return Mutation{Op: raw.Op, Item: raw.Item, Qty: *raw.Qty}, nil
}

// Apply runs the mutation against inv and returns the resulting total.
func (m Mutation) Apply(inv *Inventory) (int64, error) {
	switch m.Op {
	case OpAdd:
		return inv.Add(m.Item, m.Qty)
	case OpRemove:
		return inv.Remove(m.Item, m.Qty)
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOp, m.Op)
	}
}
