package puzzle

import "strings"

// Empty is the sentinel value of a cell no word or fill letter occupies yet.
const Empty byte = ' '

// Grid is a fixed-size rows x cols array of letter cells. It is mutated
// only by its owning Builder during generation and read-only afterwards.
type Grid struct {
	rows, cols int
	cells      [][]byte
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]byte, rows)
	for r := range cells {
		cells[r] = make([]byte, cols)
		for c := range cells[r] {
			cells[r][c] = Empty
		}
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// At returns the letter at (row, col). The coordinates must be in bounds.
func (g *Grid) At(row, col int) byte { return g.cells[row][col] }

func (g *Grid) set(row, col int, ch byte) { g.cells[row][col] = ch }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// String renders the grid as rows lines of exactly cols characters each,
// one character per cell, each line terminated by a newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for _, row := range g.cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
