package discovery

import (
	"context"
	"testing"

	"github.com/cinedaily/cinedaily/internal/testutil"
)

func TestSQLSeedLedger(t *testing.T) {
	tdb := testutil.NewTestDB(t)
	defer tdb.Close()

	ledger := NewSQLSeedLedger(tdb.Conn)
	ctx := context.Background()

	used, err := ledger.Contains(ctx, "liam")
	if err != nil {
		t.Fatalf("Contains() error = %v", err)
	}
	if used {
		t.Error("Contains() = true for an unrecorded term")
	}

	if err := ledger.Record(ctx, "liam"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	used, err = ledger.Contains(ctx, "liam")
	if err != nil {
		t.Fatalf("Contains() error = %v", err)
	}
	if !used {
		t.Error("Contains() = false after Record()")
	}

	// Recording the same term twice must not fail.
	if err := ledger.Record(ctx, "liam"); err != nil {
		t.Errorf("Record() twice error = %v", err)
	}
}
