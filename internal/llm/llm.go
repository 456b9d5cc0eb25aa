package llm

import (
	"fmt"
)

// creates the configured text generator
func NewTextGenerator(config *Config) (TextGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required for provider %s", config.Provider)
	}

	switch config.Provider {
	case ProviderAzure, ProviderOpenAI:
		if config.Endpoint == "" {
			return nil, fmt.Errorf("endpoint is required for provider %s", config.Provider)
		}

		return NewOpenAIGenerator(OpenAIConfig{
			APIKey:      config.APIKey,
			BaseURL:     config.Endpoint,
			Azure:       config.Provider == ProviderAzure,
			APIVersion:  config.APIVersion,
			Model:       config.Model,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
			Timeout:     config.Timeout,
		}), nil

	case ProviderAnthropic:
		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:      config.APIKey,
			BaseURL:     config.Endpoint,
			Model:       config.Model,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
			Timeout:     config.Timeout,
		}), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}
