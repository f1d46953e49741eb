package domain

// Player is both the occupant of a cell and the side to move.
// The numeric values are the cell encoding exposed on the wire.
type Player int

const (
	Empty  Player = 0
	Red    Player = 1 // moves on even turns
	Yellow Player = 2 // moves on odd turns, played by the computer
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	// MaxTurns is the turn counter value of a completely filled board.
	MaxTurns = Rows * Columns
)

// PlayerForTurn returns whose token is dropped on the given turn.
func PlayerForTurn(turn int) Player {
	if turn%2 == 0 {
		return Red
	}
	return Yellow
}

func (p Player) String() string {
	switch p {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	}
	return "empty"
}

// Result is the derived state of a game after the last placement.
type Result int

const (
	InProgress Result = iota
	InvalidMove
	RedWins
	YellowWins
	Draw
)

func (r Result) String() string {
	switch r {
	case InProgress:
		return "continue"
	case InvalidMove:
		return "invalid_move"
	case RedWins:
		return "red_wins"
	case YellowWins:
		return "yellow_wins"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Message is the text shown to players for the result.
func (r Result) Message() string {
	switch r {
	case InvalidMove:
		return "Invalid move; play a token in an empty column"
	case RedWins:
		return "Red wins!"
	case YellowWins:
		return "Yellow wins!"
	case Draw:
		return "Game is a draw!"
	}
	return "Click on a column to play a token"
}

// Terminal reports whether no further moves are accepted.
func (r Result) Terminal() bool {
	return r == RedWins || r == YellowWins || r == Draw
}

// Winner returns the winning player, or Empty when the result is not a win.
func (r Result) Winner() Player {
	switch r {
	case RedWins:
		return Red
	case YellowWins:
		return Yellow
	}
	return Empty
}

// WinFor maps a player to its winning result.
func WinFor(p Player) Result {
	if p == Red {
		return RedWins
	}
	return YellowWins
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull       Error = "column is full"
	ErrColumnOutOfRange Error = "column out of range"
	ErrCellOccupied     Error = "cell is already occupied"
)

// Move identifies the cell a token landed on.
type Move struct {
	Column int
	Row    int
}
