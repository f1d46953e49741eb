package domain

// Board is indexed [column][row]. Row 0 is the top of a column, tokens
// stack upward from row Rows-1. Assignment copies the whole grid.
type Board [Columns][Rows]Player

func NewBoard() Board {
	return Board{}
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

// IsColumnFull reports whether the top slot of the column is taken.
func (b *Board) IsColumnFull(column int) bool {
	return b[column][0] != Empty
}

// LandingRow returns the row a token dropped into column comes to rest on.
// ok is false when the column is full.
func (b *Board) LandingRow(column int) (row int, ok bool) {
	for r := 0; r < Rows; r++ {
		if b[column][r] != Empty {
			if r == 0 {
				return -1, false
			}
			return r - 1, true
		}
	}
	return Rows - 1, true
}

// Place returns a copy of the board with player at (column, row). The
// receiver is left untouched.
func (b Board) Place(column, row int, player Player) (Board, error) {
	if b[column][row] != Empty {
		return b, ErrCellOccupied
	}
	b[column][row] = player
	return b, nil
}

// DropDisk drops a token into column in place and returns its row.
func (b *Board) DropDisk(column int, player Player) (int, error) {
	if !IsValidColumn(column) {
		return -1, ErrColumnOutOfRange
	}
	row, ok := b.LandingRow(column)
	if !ok {
		return -1, ErrColumnFull
	}
	b[column][row] = player
	return row, nil
}

// Count returns the number of tokens on the board.
func (b *Board) Count() int {
	n := 0
	for col := range b {
		for row := range b[col] {
			if b[col][row] != Empty {
				n++
			}
		}
	}
	return n
}

// Grid converts the board to the column-major integer grid sent to clients.
func (b *Board) Grid() [][]int {
	grid := make([][]int, Columns)
	for col := range b {
		grid[col] = make([]int, Rows)
		for row := range b[col] {
			grid[col][row] = int(b[col][row])
		}
	}
	return grid
}
