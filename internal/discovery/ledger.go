package discovery

import (
	"context"
	"database/sql"

	"github.com/cinedaily/cinedaily/internal/database/sqlc"
)

// SQLSeedLedger implements SeedLedger using the database.
type SQLSeedLedger struct {
	queries *sqlc.Queries
}

// NewSQLSeedLedger creates a new SQLSeedLedger.
func NewSQLSeedLedger(db *sql.DB) *SQLSeedLedger {
	return &SQLSeedLedger{queries: sqlc.New(db)}
}

// Contains reports whether the exact term has been recorded before.
func (l *SQLSeedLedger) Contains(ctx context.Context, term string) (bool, error) {
	exists, err := l.queries.SeedTermExists(ctx, term)
	if err != nil {
		return false, err
	}
	return exists != 0, nil
}

// Record marks a term as consumed. Recording the same term twice is a no-op.
func (l *SQLSeedLedger) Record(ctx context.Context, term string) error {
	return l.queries.CreateSeedTerm(ctx, term)
}
