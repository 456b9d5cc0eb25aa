package agent

import (
	"context"
	"encoding/json"

	"codeberg.org/sqlai/server/internal/llm"
	"codeberg.org/sqlai/server/internal/retriever"
)

// runs a similarity search for a free-text term
type Searcher interface {
	Search(ctx context.Context, term string) (retriever.Outcome, error)
}

// orchestrates search, grounding and completion per request; holds no per-request state
type Agent struct {
	searcher  Searcher
	generator llm.TextGenerator
}

// selects how the completion text is shaped
type Mode int

const (
	ModeConversational Mode = iota
	ModeStructured
)

// conversational reply envelope
type ChatResponse struct {
	UserMessage       string `json:"user_message"`
	AssistantResponse string `json:"assistant_response"`
	ProductsFound     bool   `json:"products_found"`
}

// structured reply: the model's JSON verbatim, or the raw text when it did not parse
type StructuredResponse struct {
	Payload     json.RawMessage
	RawResponse string
}

type fallbackResponse struct {
	RawResponse string `json:"raw_response"`
}

// shape the structured prompt asks the model for; never enforced
type RecommendationPayload struct {
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}

type Recommendation struct {
	ProductName string `json:"productName"`
	Reason      string `json:"reason"`
	Confidence  string `json:"confidence"` // "high", "medium" or "low"
}

type SearchResponse struct {
	Query   string `json:"query"`
	Results []any  `json:"results"`
}

// output of the normalizer; exactly one of Chat or Structured is meaningful, per Mode
type Reply struct {
	Mode       Mode
	Chat       ChatResponse
	Structured StructuredResponse
}
