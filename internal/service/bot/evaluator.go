package bot

import (
	"github.com/iamasit07/connect4-solo/backend/internal/domain"
)

const (
	SCORE_YELLOW_LINE = 1000 // computer completes a line
	SCORE_RED_LINE    = 1000 // human completes a line
	SCORE_DRAW        = 50
)

// Evaluate scores a cutoff position from the computer's (Yellow's) point of
// view. Only the tokens of the player moving on turn are inspected, and only
// complete lines count; partial lines score nothing.
func Evaluate(b *domain.Board, turn int) int {
	player := domain.PlayerForTurn(turn)
	score := 0

	for col := 0; col < domain.Columns; col++ {
		for row := 0; row < domain.Rows; row++ {
			if b[col][row] != player {
				continue
			}
			switch domain.DetectOutcome(b, col, row, turn) {
			case domain.YellowWins:
				score += SCORE_YELLOW_LINE
			case domain.RedWins:
				score -= SCORE_RED_LINE
			case domain.Draw:
				return SCORE_DRAW
			}
		}
	}

	return score
}
