package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/sqlai/server/internal/config"
	"codeberg.org/sqlai/server/internal/logger"
)

// @title SQL AI API
// @version 1.0
// @description Product assistant grounded on vector-similarity search over the product catalog
// @description
// @description Features:
// @description - Similarity search through the get_similar_items stored procedure
// @description - Grounded chat answers and structured product recommendations
// @description - Paginated product listing proxied from Data API Builder

// @host localhost:8000

func main() {
	logger.Info("starting sqlai server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Setup(cfg.Environment)

	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// model calls are slow; the write timeout has to outlast them
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.ModelTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			"port", cfg.Port,
			"dialect", cfg.Dialect,
			"model_provider", cfg.ModelProvider,
			"model", srv.services.LLM.Model(),
		)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
