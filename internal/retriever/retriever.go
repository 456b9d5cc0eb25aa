package retriever

import (
	"context"
	"fmt"
)

func New(dialer Dialer) *Client {
	return &Client{dialer: dialer}
}

// runs the similarity procedure for term on a fresh connection.
// a procedure-reported error is an OutcomeFailed, not a Go error; the
// returned error covers connection, driver and decoding failures only.
// the connection and cursor are released before Search returns on every
// path, including a panic raised by the driver.
func (c *Client) Search(ctx context.Context, term string) (Outcome, error) {
	conn, err := c.dialer.Dial(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to open database connection: %w", err)
	}

	defer conn.Close() //nolint:errcheck

	rows, err := conn.CallSimilarItems(ctx, term)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to execute similarity search: %w", err)
	}

	defer rows.Close() //nolint:errcheck

	return collect(rows)
}

// walks every result set the driver exposes and folds each row into one outcome.
// the OUTPUT row is usually the last set, but drivers differ in what precedes it.
func collect(rows Rows) (Outcome, error) {
	outcome := Empty()

	for {
		columns, err := rows.Columns()
		if err != nil {
			return Outcome{}, fmt.Errorf("failed to read result set columns: %w", err)
		}

		// sets without row metadata carry nothing to decode
		for len(columns) > 0 && rows.Next() {
			rec, err := scanRecord(rows, columns)
			if err != nil {
				return Outcome{}, err
			}

			outcome = outcome.merge(recordOutcome(rec))
		}

		if err := rows.Err(); err != nil {
			return Outcome{}, fmt.Errorf("error iterating rows: %w", err)
		}

		if !rows.NextResultSet() {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return Outcome{}, fmt.Errorf("error advancing result sets: %w", err)
	}

	return outcome, nil
}

func scanRecord(rows Rows, columns []string) (Record, error) {
	values := make([]any, len(columns))
	dest := make([]any, len(columns))

	for i := range values {
		dest[i] = &values[i]
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	rec := make(Record, len(columns))
	for i, name := range columns {
		rec[name] = values[i]
	}

	return rec, nil
}
