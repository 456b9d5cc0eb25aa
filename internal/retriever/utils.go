package retriever

import (
	"fmt"
	"strings"
)

const (
	resultColumn = "result"
	errorColumn  = "error"

	// context placeholder used when nothing was found
	EmptyResults = "[]"
)

func Found(json string) Outcome {
	return Outcome{Kind: OutcomeFound, JSON: json}
}

func Failed(reason string) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}

func Empty() Outcome {
	return Outcome{Kind: OutcomeEmpty}
}

// true when the search produced a non-empty product list
func (o Outcome) HasProducts() bool {
	return o.Kind == OutcomeFound && strings.TrimSpace(o.JSON) != EmptyResults
}

// the literal text to embed in a prompt
func (o Outcome) ContextText() string {
	if o.Kind == OutcomeFound {
		return o.JSON
	}

	return EmptyResults
}

// the procedure error, if the outcome is a failure
func (o Outcome) Err() error {
	if o.Kind == OutcomeFailed {
		return &ProcedureError{Reason: o.Reason}
	}

	return nil
}

// combines two outcomes: a failure wins over everything, the first found
// result wins over later ones, and empty is the identity.
func (o Outcome) merge(next Outcome) Outcome {
	switch {
	case o.Kind == OutcomeFailed:
		return o
	case next.Kind == OutcomeFailed:
		return next
	case o.Kind == OutcomeFound:
		return o
	default:
		return next
	}
}

// resolves a single decoded row into an outcome
func recordOutcome(rec Record) Outcome {
	if reason := toText(rec[errorColumn]); reason != "" {
		return Failed(reason)
	}

	if json := toText(rec[resultColumn]); json != "" {
		return Found(json)
	}

	return Empty()
}

// converts a scanned column value into text; NULL becomes ""
func toText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
