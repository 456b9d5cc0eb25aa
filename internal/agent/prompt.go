package agent

import (
	"strings"

	"codeberg.org/sqlai/server/internal/retriever"
)

const (
	conversationalInstructions = `You are a helpful product assistant. Use the following product catalog data to answer user questions.
Be concise and helpful. Only recommend products from the provided data.`

	conversationalClosing = `If no relevant products are found, politely inform the user.`

	structuredInstructions = `You are a product recommendation assistant. Analyze the user's request and the available products.
Return a JSON response with the following structure:
{
    "recommendations": [
        {
            "productName": "string",
            "reason": "string",
            "confidence": "high|medium|low"
        }
    ],
    "summary": "Brief summary of recommendations"
}`

	productsHeading = "Available Products:"
)

// assembles the grounding system prompt. the retrieved JSON is embedded as-is,
// without truncation, so very large results can exceed the model's context window.
func buildSystemPrompt(mode Mode, outcome retriever.Outcome) string {
	var builder strings.Builder

	if mode == ModeStructured {
		builder.WriteString(structuredInstructions)
	} else {
		builder.WriteString(conversationalInstructions)
	}

	builder.WriteString("\n\n")
	builder.WriteString(productsHeading)
	builder.WriteString("\n")
	builder.WriteString(outcome.ContextText())

	if mode == ModeConversational {
		builder.WriteString("\n\n")
		builder.WriteString(conversationalClosing)
	}

	return builder.String()
}
