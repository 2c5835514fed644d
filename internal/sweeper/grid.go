// Package sweeper implements the Minesweeper rules core: the cell grid,
// bomb placement, the rules engine and difficulty policy.
// It has no UI dependencies so every rule can be tested in isolation.
package sweeper

import "fmt"

// Cell is one addressable grid position.
type Cell struct {
	Index    int  // 1-based, row-major
	Revealed bool // Safely uncovered
	Flagged  bool // Marked by the player
}

// Grid holds per-cell state for a fixed-size board.
// Indices are assigned row-major: index = row*cols + col + 1.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a rows x cols grid with every cell hidden and unflagged.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, ErrInvalidConfig)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	g.Reset()
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cell returns a pointer to the cell with the given 1-based index.
func (g *Grid) Cell(index int) (*Cell, error) {
	if index < 1 || index > len(g.cells) {
		return nil, fmt.Errorf("index %d not in [1, %d]: %w", index, len(g.cells), ErrOutOfRange)
	}
	return &g.cells[index-1], nil
}

// Reset returns every cell to its initial state in place.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell{Index: i + 1}
	}
}

// IndexAt returns the index of the cell at (row, col), both 0-based.
// Returns 0 if the position is outside the grid.
func (g *Grid) IndexAt(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0
	}
	return row*g.cols + col + 1
}

// Position returns the 0-based (row, col) of a 1-based index.
func (g *Grid) Position(index int) (row, col int) {
	return (index - 1) / g.cols, (index - 1) % g.cols
}

// Each calls fn for every cell in index order.
func (g *Grid) Each(fn func(c Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// RevealedCount returns the number of safely revealed cells.
func (g *Grid) RevealedCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Revealed {
			n++
		}
	}
	return n
}

// FlaggedCount returns the number of flagged cells.
func (g *Grid) FlaggedCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Flagged {
			n++
		}
	}
	return n
}
