package retriever

import "context"

// distinguishes the three ways a similarity search can resolve
type OutcomeKind int

const (
	OutcomeEmpty OutcomeKind = iota
	OutcomeFound
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeFailed:
		return "failed"
	default:
		return "empty"
	}
}

// the resolved result of one similarity search.
// JSON is set only for OutcomeFound, Reason only for OutcomeFailed.
type Outcome struct {
	Kind   OutcomeKind
	JSON   string
	Reason string
}

// reported by the similarity procedure through its error output
type ProcedureError struct {
	Reason string
}

func (e *ProcedureError) Error() string {
	return "search error: " + e.Reason
}

// opens one dedicated connection per search
type Dialer interface {
	Dial(ctx context.Context) (Conn, error)
}

// a single, unpooled database connection
type Conn interface {
	// runs the similarity procedure batch for term
	CallSimilarItems(ctx context.Context, term string) (Rows, error)
	Close() error
}

// cursor over one or more result sets; satisfied by *sql.Rows
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	NextResultSet() bool
	Err() error
	Close() error
}

// decoded row keyed by column name
type Record map[string]any

type Client struct {
	dialer Dialer
}
