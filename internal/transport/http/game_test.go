package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-solo/backend/internal/domain"
	"github.com/iamasit07/connect4-solo/backend/internal/service/bot"
	"github.com/iamasit07/connect4-solo/backend/internal/service/game"
)

const testOrigin = "http://localhost:5173"

func newTestRouter() (*gin.Engine, *domain.Game) {
	gin.SetMode(gin.TestMode)
	g := domain.NewGame()
	h := NewGameHandler(game.NewService(bot.NewEngine(2, false)), g)
	return NewRouter(h, []string{testOrigin}), g
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, stateResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp stateResponse
	if w.Code == http.StatusOK && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return w, resp
}

func TestGameStateOnFreshGame(t *testing.T) {
	r, _ := newTestRouter()
	w, resp := do(t, r, http.MethodGet, "/game-state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Result != "Click on a column to play a token" || resp.Status != "continue" || resp.PlayerTurn != 0 {
		t.Fatalf("unexpected state: %+v", resp)
	}
	if len(resp.Board) != domain.Columns || len(resp.Board[0]) != domain.Rows {
		t.Fatalf("expected %dx%d column-major board, got %d columns", domain.Columns, domain.Rows, len(resp.Board))
	}
}

func TestPlayMoveUpdatesBoard(t *testing.T) {
	r, g := newTestRouter()
	w, resp := do(t, r, http.MethodPost, "/play-move", `{"column": 2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp.PlayerTurn != 1 || resp.Board[2][domain.Rows-1] != int(domain.Red) {
		t.Fatalf("unexpected state: %+v", resp)
	}
	if g.Turn != 1 {
		t.Fatalf("handler did not play on the shared game")
	}
}

func TestPlayMoveRejectsBadColumns(t *testing.T) {
	r, g := newTestRouter()
	for _, body := range []string{`{"column": -1}`, `{"column": 7}`, `{"column": "3"}`, `{}`, `not json`} {
		w, _ := do(t, r, http.MethodPost, "/play-move", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
	if g.Turn != 0 {
		t.Fatalf("rejected requests changed the game")
	}
}

func TestPlayAIAddsComputerMove(t *testing.T) {
	r, _ := newTestRouter()
	w, resp := do(t, r, http.MethodPost, "/play-ai", `{"column": 3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.PlayerTurn != 2 {
		t.Fatalf("expected human and computer moves, got turn %d", resp.PlayerTurn)
	}
	yellow := 0
	for _, col := range resp.Board {
		for _, cell := range col {
			if cell == int(domain.Yellow) {
				yellow++
			}
		}
	}
	if yellow != 1 {
		t.Fatalf("expected one computer token, got %d", yellow)
	}
}

func TestFullColumnReportsInvalidMove(t *testing.T) {
	r, _ := newTestRouter()
	for i := 0; i < domain.Rows; i++ {
		do(t, r, http.MethodPost, "/play-move", `{"column": 0}`)
	}
	_, resp := do(t, r, http.MethodPost, "/play-move", `{"column": 0}`)
	if resp.Status != "invalid_move" || resp.Result != "Invalid move; play a token in an empty column" {
		t.Fatalf("expected invalid move, got %+v", resp)
	}
	if resp.PlayerTurn != domain.Rows {
		t.Fatalf("invalid move advanced the turn to %d", resp.PlayerTurn)
	}
}

func TestClearBoardResets(t *testing.T) {
	r, _ := newTestRouter()
	for _, col := range []string{"0", "0", "1", "1", "2", "2", "3"} {
		do(t, r, http.MethodPost, "/play-move", `{"column": `+col+`}`)
	}
	_, resp := do(t, r, http.MethodGet, "/game-state", "")
	if resp.Result != "Red wins!" {
		t.Fatalf("expected red win, got %+v", resp)
	}

	w, resp := do(t, r, http.MethodPost, "/clear-board", "")
	if w.Code != http.StatusOK || resp.Status != "continue" || resp.PlayerTurn != 0 {
		t.Fatalf("expected reset state, got %d %+v", w.Code, resp)
	}
}

func TestCORS(t *testing.T) {
	r, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/play-move", nil)
	req.Header.Set("Origin", testOrigin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != testOrigin {
		t.Fatalf("expected allow origin %s, got %q", testOrigin, got)
	}

	req = httptest.NewRequest(http.MethodGet, "/game-state", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown origin, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("unexpected health response: %d %s", w.Code, w.Body.String())
	}
}

type panickingSearcher struct{}

func (panickingSearcher) BestMove(domain.Board, int) (domain.Move, int, bool) {
	panic(domain.ErrCellOccupied)
}

func TestPanicInSearchReleasesGameLock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := domain.NewGame()
	h := NewGameHandler(game.NewService(panickingSearcher{}), g)
	r := NewRouter(h, []string{testOrigin})

	w, _ := do(t, r, http.MethodPost, "/play-ai", `{"column": 3}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 from a panicking search, got %d", w.Code)
	}

	done := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(http.MethodGet, "/game-state", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		done <- rec.Code
	}()

	select {
	case code := <-done:
		if code != http.StatusOK {
			t.Fatalf("expected 200 after recovered panic, got %d", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("game-state blocked after a panicking request")
	}
}
