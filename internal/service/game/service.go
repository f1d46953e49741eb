package game

import (
	"github.com/iamasit07/connect4-solo/backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// MoveSearcher chooses the column to play for the side moving on turn.
type MoveSearcher interface {
	BestMove(board domain.Board, turn int) (domain.Move, int, bool)
}

// Service is the entry point for game logic. It holds no game state: every
// call works on the handle it is given, and callers serialize access to a
// handle themselves.
type Service struct {
	bot MoveSearcher
}

func NewService(bot MoveSearcher) *Service {
	return &Service{bot: bot}
}

func (s *Service) GetGameState(g *domain.Game) domain.State {
	return g.State()
}

// PlayMove drops the current player's token into column.
func (s *Service) PlayMove(g *domain.Game, column int) domain.State {
	wasFinished := g.IsFinished()
	state := g.PlayMove(column)
	log.Debug().
		Str("component", "game").
		Int("column", column).
		Str("result", state.Result.String()).
		Int("turn", state.Turn).
		Msg("move played")
	if !wasFinished && state.Result.Terminal() {
		log.Info().
			Str("component", "game").
			Str("result", state.Result.String()).
			Str("winner", state.Result.Winner().String()).
			Int("turn", state.Turn).
			Msg("game over")
	}
	return state
}

// PlayWithAI plays the human move and, if it was accepted and the game is
// still open, answers with the computer's move through the same path.
func (s *Service) PlayWithAI(g *domain.Game, column int) domain.State {
	before := g.Turn
	state := s.PlayMove(g, column)
	if state.Turn == before || state.Result.Terminal() {
		return state
	}

	move, score, ok := s.bot.BestMove(state.Board, state.Turn)
	if !ok {
		return state
	}

	log.Info().
		Str("component", "game").
		Int("column", move.Column).
		Int("score", score).
		Msg("computer move chosen")

	return s.PlayMove(g, move.Column)
}

// ClearBoard resets the game whatever its result.
func (s *Service) ClearBoard(g *domain.Game) domain.State {
	log.Info().Str("component", "game").Int("turn", g.Turn).Msg("board cleared")
	return g.Reset()
}
