package http

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-solo/backend/internal/domain"
	"github.com/iamasit07/connect4-solo/backend/internal/service/game"
)

// GameHandler exposes one game over HTTP. Requests are serialized on mu
// because the game handle is not safe for concurrent use.
type GameHandler struct {
	Service *game.Service
	Game    *domain.Game
	mu      sync.Mutex
}

func NewGameHandler(svc *game.Service, g *domain.Game) *GameHandler {
	return &GameHandler{Service: svc, Game: g}
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

type stateResponse struct {
	Result     string  `json:"result"`
	Status     string  `json:"status"`
	Board      [][]int `json:"board"`
	PlayerTurn int     `json:"playerTurn"`
}

func newStateResponse(s domain.State) stateResponse {
	return stateResponse{
		Result:     s.Result.Message(),
		Status:     s.Result.String(),
		Board:      s.Board.Grid(),
		PlayerTurn: s.Turn,
	}
}

func (h *GameHandler) Register(r gin.IRouter) {
	r.GET("/game-state", h.GetGameState)
	r.POST("/clear-board", h.ClearBoard)
	r.POST("/play-move", h.PlayMove)
	r.POST("/play-ai", h.PlayWithAI)
}

// locked runs f while holding the game lock. The lock is released even if f
// panics, so Recovery can answer 500 without wedging later requests.
func (h *GameHandler) locked(f func() domain.State) domain.State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return f()
}

func (h *GameHandler) GetGameState(c *gin.Context) {
	state := h.locked(func() domain.State {
		return h.Service.GetGameState(h.Game)
	})

	c.JSON(http.StatusOK, newStateResponse(state))
}

func (h *GameHandler) ClearBoard(c *gin.Context) {
	state := h.locked(func() domain.State {
		return h.Service.ClearBoard(h.Game)
	})

	c.JSON(http.StatusOK, newStateResponse(state))
}

func (h *GameHandler) PlayMove(c *gin.Context) {
	column, ok := bindColumn(c)
	if !ok {
		return
	}

	state := h.locked(func() domain.State {
		return h.Service.PlayMove(h.Game, column)
	})

	c.JSON(http.StatusOK, newStateResponse(state))
}

func (h *GameHandler) PlayWithAI(c *gin.Context) {
	column, ok := bindColumn(c)
	if !ok {
		return
	}

	state := h.locked(func() domain.State {
		return h.Service.PlayWithAI(h.Game, column)
	})

	c.JSON(http.StatusOK, newStateResponse(state))
}

// bindColumn reads the column from the request body and rejects anything the
// game cannot take, writing the 400 response itself.
func bindColumn(c *gin.Context) (int, bool) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil || !domain.IsValidColumn(*req.Column) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid column index. Must be between 0 and %d.", domain.Columns-1),
		})
		return 0, false
	}
	return *req.Column, true
}
