package domain

var directions = [4][2]int{
	{0, 1},  // vertical
	{1, 0},  // horizontal
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// this counts the number of disks in a specific direction
func CountDiskInDirection(b *Board, column, row, deltaCol, deltaRow int, player Player) int {
	count := 0
	c, r := column+deltaCol, row+deltaRow
	for c >= 0 && c < Columns && r >= 0 && r < Rows && b[c][r] == player {
		count++
		c += deltaCol
		r += deltaRow
	}
	return count
}

// CheckWin reports whether the token at (column, row) belongs to a line of
// at least ToWin tokens of player.
func CheckWin(b *Board, column, row int, player Player) bool {
	for _, dir := range directions {
		forward := CountDiskInDirection(b, column, row, dir[0], dir[1], player)
		backward := CountDiskInDirection(b, column, row, -dir[0], -dir[1], player)
		if 1+forward+backward >= ToWin {
			return true
		}
	}
	return false
}

// DetectOutcome classifies the position around (column, row) as seen on the
// given turn: the player moving on that turn wins if the cell completes a
// line, the game is drawn if that turn fills the last cell, otherwise it
// continues. It does not depend on any live game, so the search may call it
// on hypothetical boards and turns.
func DetectOutcome(b *Board, column, row, turn int) Result {
	player := PlayerForTurn(turn)
	if CheckWin(b, column, row, player) {
		return WinFor(player)
	}
	if turn+1 >= MaxTurns {
		return Draw
	}
	return InProgress
}
