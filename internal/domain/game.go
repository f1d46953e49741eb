package domain

// Game owns the board, the turn counter and the last result. It is not safe
// for concurrent use; callers serialize access to a handle.
type Game struct {
	Board  Board
	Turn   int
	Result Result
}

// State is a read-only snapshot of a game.
type State struct {
	Result Result
	Board  Board
	Turn   int
}

func NewGame() *Game {
	return &Game{Board: NewBoard(), Result: InProgress}
}

// GameFromBoard resumes play from an existing position. The turn counter is
// the number of tokens on the board.
func GameFromBoard(b Board) *Game {
	return &Game{Board: b, Turn: b.Count(), Result: InProgress}
}

func (g *Game) State() State {
	return State{Result: g.Result, Board: g.Board, Turn: g.Turn}
}

func (g *Game) IsFinished() bool {
	return g.Result.Terminal()
}

// CurrentPlayer is the player whose token the next accepted move drops.
func (g *Game) CurrentPlayer() Player {
	return PlayerForTurn(g.Turn)
}

// PlayMove drops the current player's token into column. A decided game is
// returned unchanged. A full column sets InvalidMove and leaves the board
// and turn counter alone.
func (g *Game) PlayMove(column int) State {
	if g.IsFinished() {
		return g.State()
	}

	if !IsValidColumn(column) || g.Board.IsColumnFull(column) {
		g.Result = InvalidMove
		return g.State()
	}

	row, err := g.Board.DropDisk(column, g.CurrentPlayer())
	if err != nil {
		g.Result = InvalidMove
		return g.State()
	}

	g.Result = DetectOutcome(&g.Board, column, row, g.Turn)
	if g.Result != RedWins && g.Result != YellowWins {
		g.Turn++
	}
	return g.State()
}

// Reset clears the board regardless of the current result.
func (g *Game) Reset() State {
	g.Board = NewBoard()
	g.Turn = 0
	g.Result = InProgress
	return g.State()
}
