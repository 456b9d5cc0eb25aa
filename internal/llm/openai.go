package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/azure"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

const (
	defaultOpenAIChatModel = "gpt-5-mini"
	defaultAzureAPIVersion = "2024-10-21"
)

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string // OpenAI-compatible base URL, or the Azure resource endpoint
	Azure       bool
	APIVersion  string // Azure only
	Model       string // model name, or Azure deployment name
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// chat completions against OpenAI, Azure OpenAI or any compatible endpoint
type OpenAIGenerator struct {
	config OpenAIConfig
	client openai.Client
}

func NewOpenAIGenerator(config OpenAIConfig) *OpenAIGenerator {
	if config.Model == "" {
		config.Model = defaultOpenAIChatModel
	}

	if config.Azure && config.APIVersion == "" {
		config.APIVersion = defaultAzureAPIVersion
	}

	// a failed completion is surfaced to the caller, never retried
	opts := []option.RequestOption{option.WithMaxRetries(0)}

	if config.Azure {
		opts = append(opts,
			azure.WithEndpoint(config.BaseURL, config.APIVersion),
			azure.WithAPIKey(config.APIKey),
		)
	} else {
		opts = append(opts, option.WithAPIKey(config.APIKey))
		if config.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(config.BaseURL))
		}
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(config.Timeout))
	}

	if config.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(config.HTTPClient))
	}

	return &OpenAIGenerator{
		config: config,
		client: openai.NewClient(opts...),
	}
}

func (g *OpenAIGenerator) Model() string {
	return g.config.Model
}

func (g *OpenAIGenerator) GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)

	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}

	for _, msg := range req.Messages {
		if msg.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(msg.Content))
			continue
		}

		messages = append(messages, openai.UserMessage(msg.Content))
	}

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    shared.ChatModel(g.config.Model),
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.config.MaxTokens
	}

	if maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(maxTokens))
	}

	// reasoning models reject anything but the default temperature
	if g.config.Temperature > 0 {
		params.Temperature = openai.Float(float64(g.config.Temperature))
	}

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &TextGenerationResponse{
		Text: completion.Choices[0].Message.Content,
		Usage: Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}
