package bot

import (
	"math"
	"sync"
	"time"

	"github.com/iamasit07/connect4-solo/backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// DEFAULT_DEPTH is odd, so cutoffs are scored on Red's turn and the engine
// plays defensively: it sees Red's completed lines but not its own.
const DEFAULT_DEPTH = 5

// Engine picks the computer's column with a depth-bounded minimax search.
// It only reads the boards it is given and is safe for concurrent use.
type Engine struct {
	Depth    int
	Parallel bool
}

func NewEngine(depth int, parallel bool) *Engine {
	if depth < 1 {
		depth = 1
	}
	return &Engine{Depth: depth, Parallel: parallel}
}

// BestMove returns the move for the player on turn and its score. ok is
// false when every column is full.
func (e *Engine) BestMove(board domain.Board, turn int) (domain.Move, int, bool) {
	start := time.Now()

	var (
		move  domain.Move
		score int
		ok    bool
		nodes int
	)
	if e.Parallel {
		move, score, ok, nodes = e.searchParallel(board, turn)
	} else {
		s := newSearcher(turn, e.Depth)
		move, score, ok = s.minimax(board, e.Depth, math.MinInt, math.MaxInt)
		nodes = s.nodes
	}

	log.Debug().
		Str("component", "bot").
		Int("turn", turn).
		Int("depth", e.Depth).
		Bool("parallel", e.Parallel).
		Int("column", move.Column).
		Int("score", score).
		Int("nodes", nodes).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")

	return move, score, ok
}

type rootResult struct {
	move  domain.Move
	score int
	nodes int
	legal bool
}

// searchParallel searches every root column with a full window in its own
// goroutine, then folds the results left to right with the same strict
// improvement rule as the sequential search.
func (e *Engine) searchParallel(board domain.Board, turn int) (domain.Move, int, bool, int) {
	player := domain.PlayerForTurn(turn)
	results := make([]rootResult, domain.Columns)

	var wg sync.WaitGroup
	for col := 0; col < domain.Columns; col++ {
		row, legal := board.LandingRow(col)
		if !legal {
			continue
		}
		wg.Add(1)
		go func(col, row int) {
			defer wg.Done()
			s := newSearcher(turn, e.Depth)
			child := s.apply(board, col, row, player)
			_, score, _ := s.minimax(child, e.Depth-1, math.MinInt, math.MaxInt)
			results[col] = rootResult{
				move:  domain.Move{Column: col, Row: row},
				score: score,
				nodes: s.nodes,
				legal: true,
			}
		}(col, row)
	}
	wg.Wait()

	maximizing := player == domain.Yellow
	nodes := 1
	var best rootResult
	found := false
	for _, r := range results {
		if !r.legal {
			continue
		}
		nodes += r.nodes
		if !found ||
			(maximizing && r.score > best.score) ||
			(!maximizing && r.score < best.score) {
			best = r
			found = true
		}
	}

	if !found {
		return domain.Move{Column: -1, Row: -1}, Evaluate(&board, turn), false, nodes
	}
	return best.move, best.score, true, nodes
}
