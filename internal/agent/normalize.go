package agent

import (
	"encoding/json"

	"codeberg.org/sqlai/server/internal/retriever"
)

// shapes raw completion text for the requested mode
func normalize(mode Mode, message string, outcome retriever.Outcome, text string) Reply {
	if mode == ModeStructured {
		return Reply{Mode: mode, Structured: parseStructured(text)}
	}

	return Reply{
		Mode: mode,
		Chat: ChatResponse{
			UserMessage:       message,
			AssistantResponse: text,
			ProductsFound:     outcome.HasProducts(),
		},
	}
}

// keeps any syntactically valid JSON verbatim; no schema checks
func parseStructured(text string) StructuredResponse {
	if json.Valid([]byte(text)) {
		return StructuredResponse{Payload: json.RawMessage(text)}
	}

	return StructuredResponse{RawResponse: text}
}

func (r StructuredResponse) Parsed() bool {
	return r.Payload != nil
}

func (r StructuredResponse) MarshalJSON() ([]byte, error) {
	if r.Parsed() {
		return r.Payload, nil
	}

	return json.Marshal(fallbackResponse{RawResponse: r.RawResponse})
}

// best-effort typed view of the payload; false when it is not a recommendation object
func (r StructuredResponse) Recommendations() (*RecommendationPayload, bool) {
	if !r.Parsed() {
		return nil, false
	}

	var payload RecommendationPayload
	if err := json.Unmarshal(r.Payload, &payload); err != nil {
		return nil, false
	}

	return &payload, true
}

// decodes a found result into a list; anything undecodable becomes empty
func decodeResults(outcome retriever.Outcome) []any {
	if outcome.Kind != retriever.OutcomeFound {
		return []any{}
	}

	var results []any
	if err := json.Unmarshal([]byte(outcome.JSON), &results); err != nil || results == nil {
		return []any{}
	}

	return results
}
