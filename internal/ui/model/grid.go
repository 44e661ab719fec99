package model

import "github.com/leighmacdonald/zodiac-tui/internal/ui/input"

// Grid is a row major layout of Count cells, Columns wide. The last row may be short.
type Grid struct {
	Columns int
	Count   int
}

// Next moves the selection one cell in dir. Left and right wrap across rows, up and down stop at
// the edges.
func (g Grid) Next(current int, dir input.Direction) int {
	if g.Count <= 0 {
		return 0
	}

	columns := max(g.Columns, 1)
	if current < 0 || current >= g.Count {
		return 0
	}

	switch dir {
	case input.Left:
		// Wrap into the last entry
		if current-1 < 0 {
			return g.Count - 1
		}

		return current - 1
	case input.Right:
		// Wrap into the first entry
		if current+1 >= g.Count {
			return 0
		}

		return current + 1
	case input.Up:
		if current-columns < 0 {
			return current
		}

		return current - columns
	case input.Down:
		if current+columns >= g.Count {
			return current
		}

		return current + columns
	default:
		return current
	}
}

// Row returns the row holding index.
func (g Grid) Row(index int) int {
	return index / max(g.Columns, 1)
}

// Column returns the column holding index.
func (g Grid) Column(index int) int {
	return index % max(g.Columns, 1)
}
