// Command seed-vocab imports a vocabulary wordlist JSON into PostgreSQL so
// generation runs can read word lists from the database instead of a file.
// It is intended to be run offline, not as part of generation.
//
// Flags:
//
//	--wordlist  path to the vocabulary JSON file
//	--langs     comma-separated list of languages to import (default: all)
//	--dry-run   parse and validate the wordlist without writing to DB
//	--migrate   apply embedded schema migrations before importing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/langmix/internal/adapter/postgres"
	"github.com/heartmarshall/langmix/internal/adapter/postgres/vocabentry"
	"github.com/heartmarshall/langmix/internal/app"
	"github.com/heartmarshall/langmix/internal/app/importer"
	"github.com/heartmarshall/langmix/internal/config"
	"github.com/heartmarshall/langmix/internal/domain"
	"github.com/heartmarshall/langmix/internal/vocab"
	"github.com/heartmarshall/langmix/migrations"
)

func main() {
	wordlistFlag := flag.String("wordlist", "", "path to the vocabulary JSON file")
	langsFlag := flag.String("langs", "", "comma-separated languages to import (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the wordlist without writing to DB")
	migrateFlag := flag.Bool("migrate", false, "apply schema migrations before importing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.DSN == "" {
		log.Fatal("database.dsn is required (set DATABASE_DSN)")
	}

	logger := app.NewLogger(cfg.Log)

	wordlist := cfg.Vocabulary.Path
	if *wordlistFlag != "" {
		wordlist = *wordlistFlag
	}

	var langs []string
	if *langsFlag != "" {
		langs = strings.Split(*langsFlag, ",")
		for i := range langs {
			langs[i] = strings.TrimSpace(langs[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	store, err := vocab.LoadFile(wordlist)
	if err != nil {
		logger.Error("load wordlist", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, w := range store.ValidateCounts(domain.ExpectedTierCounts) {
		logger.Warn("vocabulary count mismatch",
			slog.String("lang", w.Lang),
			slog.String("tier", w.Tier.String()),
			slog.Int("expected", w.Expected),
			slog.Int("actual", w.Actual),
		)
	}

	if *migrateFlag {
		if err := applyMigrations(ctx, cfg.Database.DSN); err != nil {
			logger.Error("apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	var repo importer.VocabRepo
	if !*dryRunFlag {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		repo = vocabentry.New(pool, postgres.NewTxManager(pool))
	}

	im := importer.New(logger, repo, *dryRunFlag)
	if err := im.Run(ctx, store, langs); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if im.HasErrors() {
		logger.Warn("import completed with errors")
		os.Exit(1)
	}

	logger.Info("import completed successfully")
}

// applyMigrations runs the embedded goose migrations. goose requires a
// *sql.DB, so a short-lived database/sql connection is used here.
func applyMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
