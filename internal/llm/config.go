package llm

import "codeberg.org/sqlai/server/internal/config"

// maps process configuration onto generator settings
func ConfigFromApp(cfg *config.Config) *Config {
	return &Config{
		Provider:   Provider(cfg.ModelProvider),
		APIKey:     cfg.ModelAPIKey,
		Endpoint:   cfg.ModelEndpoint,
		Model:      cfg.ModelName,
		APIVersion: cfg.ModelAPIVersion,
		MaxTokens:  cfg.ModelMaxTokens,
		Timeout:    cfg.ModelTimeout,
	}
}
