// Package vocabentry implements the vocabulary word repository using
// PostgreSQL. Words are stored one row per (lang, tier, position) so the
// on-disk order of a wordlist survives the round trip through the database.
package vocabentry

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/langmix/internal/adapter/postgres"
	"github.com/heartmarshall/langmix/internal/domain"
)

const table = "vocab_words"

// psql builds queries with PostgreSQL $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ReplaceLanguage atomically swaps the stored word lists of one language
// for the given tiers, tagging every row with the import batch ID.
// Returns the number of inserted words.
func (r *Repo) ReplaceLanguage(ctx context.Context, importID uuid.UUID, lang string, tiers map[domain.Tier][]string) (int, error) {
	inserted := 0

	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		del, args, err := psql.Delete(table).Where(squirrel.Eq{"lang": lang}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}
		if _, err := q.Exec(ctx, del, args...); err != nil {
			return mapError(err, "vocabulary", lang)
		}

		ins := psql.Insert(table).Columns("lang", "tier", "position", "word", "import_id")
		rows := 0
		for _, tier := range domain.AllTiers {
			for pos, word := range tiers[tier] {
				ins = ins.Values(lang, tier.String(), pos, word, importID)
				rows++
			}
		}
		if rows == 0 {
			return nil
		}

		sql, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return mapError(err, "vocabulary", lang)
		}

		inserted = rows
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// LoadAll returns every stored word list keyed by language and tier, with
// words in their original positions. Every returned language carries all
// three tiers, empty or not.
func (r *Repo) LoadAll(ctx context.Context) (map[string]map[domain.Tier][]string, error) {
	sql, args, err := psql.
		Select("lang", "tier", "word").
		From(table).
		OrderBy("lang", "tier", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	defer rows.Close()

	out := make(map[string]map[domain.Tier][]string)
	for rows.Next() {
		var lang, tier, word string
		if err := rows.Scan(&lang, &tier, &word); err != nil {
			return nil, fmt.Errorf("scan vocabulary row: %w", err)
		}
		if _, ok := out[lang]; !ok {
			out[lang] = emptyTiers()
		}
		out[lang][domain.Tier(tier)] = append(out[lang][domain.Tier(tier)], word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vocabulary rows: %w", err)
	}

	return out, nil
}

// Languages returns the distinct stored language codes in sorted order.
func (r *Repo) Languages(ctx context.Context) ([]string, error) {
	sql, args, err := psql.Select("DISTINCT lang").From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	var langs []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		langs = append(langs, lang)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate languages: %w", err)
	}

	sort.Strings(langs)
	return langs, nil
}

func emptyTiers() map[domain.Tier][]string {
	m := make(map[domain.Tier][]string, len(domain.AllTiers))
	for _, tier := range domain.AllTiers {
		m[tier] = nil
	}
	return m
}
