package redis_test

import (
	"context"
	"os"
	"testing"

	"inventory-management/pkg/docstore/docstoretest"
	"inventory-management/pkg/docstore/redis"
)

// Requires a running server; set REDIS_TEST_ADDR to enable.
func TestStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	store, err := redis.New(context.Background(), redis.Config{Addr: addr, Prefix: "inventory_test"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer store.Close()

	docstoretest.Run(t, store)
}
