package bot

import (
	"fmt"
	"math"

	"github.com/iamasit07/connect4-solo/backend/internal/domain"
)

// searcher holds the parameters shared by every node of one search.
type searcher struct {
	startTurn int
	maxDepth  int
	nodes     int
}

func newSearcher(startTurn, maxDepth int) *searcher {
	return &searcher{startTurn: startTurn, maxDepth: maxDepth}
}

// turnAt returns the turn reached after maxDepth-depth hypothetical moves.
func (s *searcher) turnAt(depth int) int {
	return s.startTurn + s.maxDepth - depth
}

// minimax implements the minimax algorithm with alpha-beta pruning. Yellow
// maximizes and Red minimizes. Columns are tried left to right and a later
// column only replaces the incumbent on a strict improvement. ok is false
// when the node has no move to report (depth cutoff or no legal column).
func (s *searcher) minimax(board domain.Board, depth, alpha, beta int) (move domain.Move, score int, ok bool) {
	s.nodes++

	if depth == 0 {
		return domain.Move{}, Evaluate(&board, s.turnAt(0)), false
	}

	turn := s.turnAt(depth)
	player := domain.PlayerForTurn(turn)
	maximizing := player == domain.Yellow

	best := domain.Move{Column: -1, Row: -1}
	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}

	for col := 0; col < domain.Columns; col++ {
		row, legal := board.LandingRow(col)
		if !legal {
			continue
		}

		child := s.apply(board, col, row, player)
		_, eval, _ := s.minimax(child, depth-1, alpha, beta)

		if maximizing {
			if !ok || eval > bestScore {
				bestScore = eval
				best = domain.Move{Column: col, Row: row}
			}
			alpha = max(alpha, bestScore)
		} else {
			if !ok || eval < bestScore {
				bestScore = eval
				best = domain.Move{Column: col, Row: row}
			}
			beta = min(beta, bestScore)
		}
		ok = true

		if beta <= alpha {
			break
		}
	}

	if !ok {
		return best, Evaluate(&board, turn), false
	}
	return best, bestScore, true
}

// apply places a hypothetical token on a copy of board. The landing row was
// just resolved, so an occupied target means the search itself is broken.
func (s *searcher) apply(board domain.Board, col, row int, player domain.Player) domain.Board {
	child, err := board.Place(col, row, player)
	if err != nil {
		panic(fmt.Errorf("bot: hypothetical move at column %d row %d: %w", col, row, err))
	}
	return child
}
