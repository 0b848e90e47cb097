package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueSlug returns prefix plus a short random suffix so tests sharing the
// container do not collide.
func UniqueSlug(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedDataset inserts an empty dataset row under slug and returns its id.
func SeedDataset(t *testing.T, pool *pgxpool.Pool, slug string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocab_datasets (id, slug, kind, source_lang, target_lang, group_count, item_count)
		 VALUES ($1, $2, 'chinese', 'chinese', 'english', 0, 0)`,
		id, slug,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDataset insert: %v", err)
	}
	return id
}

// DatasetExists reports whether a dataset row with slug is present.
func DatasetExists(t *testing.T, pool *pgxpool.Pool, slug string) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM vocab_datasets WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: DatasetExists query: %v", err)
	}
	return exists
}
