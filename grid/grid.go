// Package grid lays out portfolio items as an endless masonry listing.
package grid

import (
	"strconv"

	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/media"
	"github.com/spf13/viper"
)

// MaxCount bounds how many cells a single listing renders.
const MaxCount = 600

// Span is how many columns and rows a cell covers.
type Span struct {
	Cols int
	Rows int
}

// Class is the CSS modifier used by the web templates.
func (s Span) Class() string {
	switch {
	case s.Rows == 2:
		return "tall"
	case s.Cols == 2:
		return "wide"
	default:
		return ""
	}
}

var (
	tall   = Span{Cols: 1, Rows: 2}
	wide   = Span{Cols: 2, Rows: 1}
	single = Span{Cols: 1, Rows: 1}
)

// patterns repeat every 18 cells: three cycles of six positions.
var patterns = [3][6]Span{
	{tall, single, single, single, wide, single},
	{single, single, single, tall, single, wide},
	{single, wide, single, tall, single, single},
}

// SpanAt returns the span of the cell at index.
func SpanAt(index int) Span {
	if index < 0 {
		return single
	}
	return patterns[(index/6)%3][index%6]
}

// Cell is one slot of the listing.
type Cell struct {
	Slot int
	// Index is the position of Item in the source list.
	Index int
	Item  *media.Item
	Span  Span
}

// Window fills count slots by cycling through items.
// An empty list yields an empty window.
func Window(items []*media.Item, count int) []Cell {
	if len(items) == 0 || count <= 0 {
		return nil
	}

	cells := make([]Cell, count)
	for slot := range cells {
		idx := slot % len(items)
		cells[slot] = Cell{Slot: slot, Index: idx, Item: items[idx], Span: SpanAt(slot)}
	}
	return cells
}

// Initial is the number of cells shown before loading more.
func Initial() int {
	return max(1, viper.GetInt(key.GridInitial))
}

// Step is the number of cells each load adds.
func Step() int {
	return max(1, viper.GetInt(key.GridStep))
}

// Count parses a requested cell count, falling back to Initial and
// clamping to [Initial, MaxCount].
func Count(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < Initial() {
		return Initial()
	}
	return min(n, MaxCount)
}

// More returns the count after one more load.
func More(count int) int {
	return min(count+Step(), MaxCount)
}
