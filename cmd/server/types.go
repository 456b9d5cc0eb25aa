package main

import (
	"codeberg.org/sqlai/server/internal/agent"
	"codeberg.org/sqlai/server/internal/config"
	"codeberg.org/sqlai/server/internal/listing"
	"codeberg.org/sqlai/server/internal/llm"
	"codeberg.org/sqlai/server/internal/retriever"
	"github.com/gin-gonic/gin"
)

// holds all dependencies for the API server. there is no shared database
// handle: each search dials its own connection.
type Server struct {
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds all external service clients
type Services struct {
	Agent     *agent.Agent
	LLM       llm.TextGenerator
	Retriever *retriever.Client
	Listing   *listing.Client
}
