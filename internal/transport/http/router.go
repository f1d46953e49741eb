package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-solo/backend/internal/transport/http/middleware"
)

// NewRouter wires the middleware chain and the game routes.
func NewRouter(games *GameHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from the backend!")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	games.Register(router)
	return router
}
