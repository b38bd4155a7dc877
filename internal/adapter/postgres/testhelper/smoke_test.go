package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}

	pool := SetupTestDB(t)

	// Migrations applied: the vocabulary table is queryable.
	var count int
	err := pool.QueryRow(
		context.Background(),
		`SELECT count(*) FROM vocab_words`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("expected vocab_words table, got error: %v", err)
	}
	if count != 0 {
		t.Fatalf("fresh database should be empty, got %d rows", count)
	}
}
