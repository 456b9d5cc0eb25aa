package agent

import (
	"context"
	"fmt"

	"codeberg.org/sqlai/server/internal/llm"
	"codeberg.org/sqlai/server/internal/logger"
	"codeberg.org/sqlai/server/internal/retriever"
)

func New(searcher Searcher, generator llm.TextGenerator) *Agent {
	return &Agent{
		searcher:  searcher,
		generator: generator,
	}
}

// answers a product question in free text
func (a *Agent) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	reply, err := a.respond(ctx, message, ModeConversational)
	if err != nil {
		return nil, err
	}

	return &reply.Chat, nil
}

// answers a product question with a recommendation JSON object, or the raw text fallback
func (a *Agent) ChatStructured(ctx context.Context, message string) (*StructuredResponse, error) {
	reply, err := a.respond(ctx, message, ModeStructured)
	if err != nil {
		return nil, err
	}

	return &reply.Structured, nil
}

// exposes the similarity search directly. a procedure-reported error is
// returned as *retriever.ProcedureError.
func (a *Agent) SearchProducts(ctx context.Context, query string) (*SearchResponse, error) {
	outcome, err := a.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	if err := outcome.Err(); err != nil {
		return nil, err
	}

	return &SearchResponse{
		Query:   query,
		Results: decodeResults(outcome),
	}, nil
}

// search → ground → complete → normalize
func (a *Agent) respond(ctx context.Context, message string, mode Mode) (*Reply, error) {
	log := logger.FromContext(ctx)

	outcome, err := a.searcher.Search(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	// the chat flows only ground on results; a procedure error degrades to no products
	if outcome.Kind == retriever.OutcomeFailed {
		log.Warn("product search reported an error, answering without products",
			"reason", outcome.Reason,
		)
	}

	resp, err := a.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: buildSystemPrompt(mode, outcome),
		Messages: []llm.Message{
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	log.Debug("completion generated",
		"model", a.generator.Model(),
		"search_outcome", outcome.Kind.String(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)

	reply := normalize(mode, message, outcome, resp.Text)

	return &reply, nil
}
