// Package report renders inventory listings for the console.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Report styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

const emptyMessage = "Inventory is empty."

// Render returns the bordered items report: a title, then one row per item
// in lexicographic order with quantities right-aligned, or a placeholder
// when the inventory is empty.
func Render(inv *types.Inventory) string {
	lines := []string{titleStyle.Render("Items Report"), ""}

	entries := inv.Entries()
	if len(entries) == 0 {
		lines = append(lines, emptyMessage)
		return boxStyle.Render(strings.Join(lines, "\n"))
	}

	nameWidth, qtyWidth := 0, 0
	for _, e := range entries {
		if len(e.Item) > nameWidth {
			nameWidth = len(e.Item)
		}
		if w := len(strconv.FormatInt(e.Quantity, 10)); w > qtyWidth {
			qtyWidth = w
		}
	}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-*s  %*d", nameWidth, e.Item, qtyWidth, e.Quantity))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
