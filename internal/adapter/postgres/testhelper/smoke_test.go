//go:build integration

package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	slug := UniqueSlug("smoke")
	id := SeedDataset(t, pool, slug)

	var kind string
	err := pool.QueryRow(context.Background(),
		`SELECT kind FROM vocab_datasets WHERE id = $1`, id,
	).Scan(&kind)
	if err != nil {
		t.Fatalf("expected dataset in DB, got error: %v", err)
	}
	if kind != "chinese" {
		t.Fatalf("expected kind %q, got %q", "chinese", kind)
	}
	if !DatasetExists(t, pool, slug) {
		t.Fatal("DatasetExists should report the seeded slug")
	}
}
