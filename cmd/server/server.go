package main

import (
	"fmt"

	"codeberg.org/sqlai/server/internal/config"
	"codeberg.org/sqlai/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return newServer(cfg, services), nil
}

func newServer(cfg *config.Config, services *Services) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		config:   cfg,
		services: services,
		router:   router,
	}

	RegisterRoutes(router, server)

	logger.Debug("routes registered", "count", len(router.Routes()))

	return server
}
