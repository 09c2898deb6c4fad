package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meepleworks/reviews-api/internal/config"
	"github.com/meepleworks/reviews-api/internal/handler"
	"github.com/meepleworks/reviews-api/internal/logger"
	"github.com/meepleworks/reviews-api/internal/middleware"
	"github.com/meepleworks/reviews-api/internal/repository"
	"github.com/meepleworks/reviews-api/internal/router"
	"github.com/meepleworks/reviews-api/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		fallback := logger.New("local")
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Primary.Env)

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	handlers := handler.NewHandlers(srv, repos)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
