package model

// Cell is the content of a single board square
type Cell uint8

const (
	CellEmpty Cell = iota
	CellPlayerOne
	CellPlayerTwo
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from bottom
	Col int // 0-indexed from left
}

// Board is the Connect-N grid. Pieces fall toward row 0.
type Board struct {
	Rows  int
	Cols  int
	Cells [][]Cell // Row-major: Cells[row][col]
}

// NewBoard creates an empty board with the given dimensions
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimension
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: cells,
	}, nil
}

// Get returns the cell at the given position, or CellEmpty if out of bounds
func (b *Board) Get(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return CellEmpty
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set writes a cell at the given position
func (b *Board) Set(pos Position, cell Cell) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = cell
	}
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == CellEmpty
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Rows && pos.Col >= 0 && pos.Col < b.Cols
}

// IsValidColumn returns true if col is in [0, Cols)
func (b *Board) IsValidColumn(col int) bool {
	return col >= 0 && col < b.Cols
}

// ColumnHasSpace returns true if the column has at least one empty cell
func (b *Board) ColumnHasSpace(col int) bool {
	if !b.IsValidColumn(col) {
		return false
	}
	for row := 0; row < b.Rows; row++ {
		if b.Cells[row][col] == CellEmpty {
			return true
		}
	}
	return false
}

// DropPiece places cell in the lowest empty row of col and returns where it landed
func (b *Board) DropPiece(col int, cell Cell) (Position, error) {
	if !b.IsValidColumn(col) {
		return Position{}, ErrOutOfRange
	}
	for row := 0; row < b.Rows; row++ {
		if b.Cells[row][col] == CellEmpty {
			b.Cells[row][col] = cell
			return Position{Row: row, Col: col}, nil
		}
	}
	return Position{}, ErrColumnFull
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if b.Cells[row][col] == CellEmpty {
				return false
			}
		}
	}
	return true
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if b.Cells[row][col] == CellEmpty {
				count++
			}
		}
	}
	return count
}

// GetRow returns a copy of the cells in the given row
func (b *Board) GetRow(row int) []Cell {
	if row < 0 || row >= b.Rows {
		return nil
	}
	result := make([]Cell, b.Cols)
	copy(result, b.Cells[row])
	return result
}

// GetCol returns a copy of the cells in the given column, bottom first
func (b *Board) GetCol(col int) []Cell {
	if !b.IsValidColumn(col) {
		return nil
	}
	result := make([]Cell, b.Rows)
	for row := 0; row < b.Rows; row++ {
		result[row] = b.Cells[row][col]
	}
	return result
}
