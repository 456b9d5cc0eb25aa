package retriever

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"     // registers the "pgx" driver
	_ "github.com/microsoft/go-mssqldb" // registers the "sqlserver" driver

	"codeberg.org/sqlai/server/internal/config"
)

// opens a private *sql.DB per search and pins a single connection from it
type sqlDialer struct {
	driverName string
	dsn        string
	query      string
	bind       func(term string) []any
}

type sqlConn struct {
	db    *sql.DB
	conn  *sql.Conn
	query string
	bind  func(term string) []any
}

// builds a dialer for the configured dialect. procedure overrides the
// default procedure/function name and is trusted configuration, not input.
func NewSQLDialer(dialect, dsn, procedure string) (Dialer, error) {
	if dsn == "" {
		return nil, fmt.Errorf("connection string cannot be empty")
	}

	switch dialect {
	case config.DialectSQLServer, "":
		if procedure == "" {
			procedure = defaultSQLServerProcedure
		}

		return &sqlDialer{
			driverName: "sqlserver",
			dsn:        dsn,
			query:      fmt.Sprintf(sqlServerSearchBatch, procedure),
			bind: func(term string) []any {
				return []any{sql.Named("searchTerm", term)}
			},
		}, nil

	case config.DialectPostgres:
		if procedure == "" {
			procedure = defaultPostgresFunction
		}

		return &sqlDialer{
			driverName: "pgx",
			dsn:        dsn,
			query:      fmt.Sprintf(postgresSearchQuery, procedure),
			bind: func(term string) []any {
				return []any{term}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database dialect: %s", dialect)
	}
}

func (d *sqlDialer) Dial(ctx context.Context) (Conn, error) {
	db, err := sql.Open(d.driverName, d.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d.driverName, err)
	}

	// never pooled: one physical connection, discarded on Close
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close() //nolint:errcheck,gosec // best-effort cleanup on connect failure
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &sqlConn{db: db, conn: conn, query: d.query, bind: d.bind}, nil
}

func (c *sqlConn) CallSimilarItems(ctx context.Context, term string) (Rows, error) {
	rows, err := c.conn.QueryContext(ctx, c.query, c.bind(term)...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *sqlConn) Close() error {
	connErr := c.conn.Close()
	dbErr := c.db.Close()

	if connErr != nil {
		return connErr
	}

	return dbErr
}
