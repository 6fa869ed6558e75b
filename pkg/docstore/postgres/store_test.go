package postgres_test

import (
	"context"
	"os"
	"testing"

	"inventory-management/pkg/docstore/docstoretest"
	"inventory-management/pkg/docstore/postgres"
)

// Requires a running server; set POSTGRES_TEST_DSN to enable.
func TestStore(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	store, err := postgres.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer store.Close()

	docstoretest.Run(t, store)
}
