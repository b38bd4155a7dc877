package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/langmix/internal/adapter/postgres"
	"github.com/heartmarshall/langmix/internal/adapter/postgres/testhelper"
)

// wordExists checks whether a vocab_words row with the given import ID exists.
func wordExists(t *testing.T, pool *pgxpool.Pool, importID uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM vocab_words WHERE import_id = $1)`,
		importID,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("wordExists query: %v", err)
	}
	return exists
}

func insertWord(ctx context.Context, q postgres.Querier, importID uuid.UUID, lang string, pos int) error {
	_, err := q.Exec(ctx,
		`INSERT INTO vocab_words (lang, tier, position, word, import_id)
		 VALUES ($1, 'easy', $2, 'word', $3)`,
		lang, pos, importID,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	importID := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		return insertWord(ctx, q, importID, "tx-commit", 0)
	})
	if err != nil {
		t.Fatalf("RunInTx: %v", err)
	}

	if !wordExists(t, pool, importID) {
		t.Fatal("committed row should exist")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	importID := uuid.New()
	boom := errors.New("boom")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if err := insertWord(ctx, q, importID, "tx-rollback", 0); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("RunInTx should return the callback error, got %v", err)
	}

	if wordExists(t, pool, importID) {
		t.Fatal("rolled-back row should not exist")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	importID := uuid.New()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("RunInTx should re-panic")
			}
		}()
		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
			q := postgres.QuerierFromCtx(ctx, pool)
			if err := insertWord(ctx, q, importID, "tx-panic", 0); err != nil {
				return err
			}
			panic("boom")
		})
	}()

	if wordExists(t, pool, importID) {
		t.Fatal("row from panicked transaction should not exist")
	}
}
