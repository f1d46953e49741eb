package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-solo/backend/internal/config"
	"github.com/iamasit07/connect4-solo/backend/internal/domain"
	"github.com/iamasit07/connect4-solo/backend/internal/service/bot"
	"github.com/iamasit07/connect4-solo/backend/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-solo/backend/internal/transport/http"
	"github.com/iamasit07/connect4-solo/backend/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Info().Str("component", "api").Msg("No .env file found")
	}

	// 1. Initialize Services (Business Logic Layer)
	engine := bot.NewEngine(cfg.SearchDepth, cfg.SearchParallel)
	gameService := game.NewService(engine)

	// 2. Initialize HTTP Handlers (API Layer)
	gameHandler := transportHttp.NewGameHandler(gameService, domain.NewGame())

	// 3. Setup Gin Router
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := transportHttp.NewRouter(gameHandler, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("component", "api").
			Str("port", cfg.Port).
			Int("search_depth", cfg.SearchDepth).
			Bool("search_parallel", cfg.SearchParallel).
			Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Str("component", "api").Msg("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Str("component", "api").Msg("Server exited gracefully")
}
