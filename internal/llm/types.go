package llm

import (
	"context"
	"time"
)

// represents different LLM providers
type Provider string

const (
	ProviderAzure     Provider = "azure"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// generates a completion for a system prompt plus user/assistant turns
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int // 0 uses the generator's configured limit
}

type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// holds configuration for LLM initialization
type Config struct {
	Provider    Provider
	APIKey      string
	Endpoint    string // base URL; Azure resource endpoint for ProviderAzure
	Model       string // model or Azure deployment name
	APIVersion  string // Azure only
	MaxTokens   int
	Temperature float32 // 0 leaves the provider default
	Timeout     time.Duration
}
