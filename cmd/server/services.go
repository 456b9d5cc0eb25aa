package main

import (
	"fmt"

	"codeberg.org/sqlai/server/internal/agent"
	"codeberg.org/sqlai/server/internal/config"
	"codeberg.org/sqlai/server/internal/listing"
	"codeberg.org/sqlai/server/internal/llm"
	"codeberg.org/sqlai/server/internal/retriever"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) (*Services, error) {
	dialer, err := retriever.NewSQLDialer(cfg.Dialect, cfg.ConnectionString, cfg.SearchProcedure)
	if err != nil {
		return nil, fmt.Errorf("failed to create database dialer: %w", err)
	}

	llmClient, err := llm.NewTextGenerator(llm.ConfigFromApp(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	retrieverClient := retriever.New(dialer)
	agentClient := agent.New(retrieverClient, llmClient)
	listingClient := listing.New(cfg.DABURL, cfg.DABTimeout)

	return &Services{
		Agent:     agentClient,
		LLM:       llmClient,
		Retriever: retrieverClient,
		Listing:   listingClient,
	}, nil
}
