// Package docstoretest holds the behaviour every docstore.Store driver must share.
package docstoretest

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-management/pkg/docstore"
)

// Run exercises store against a fresh collection name per subtest.
func Run(t *testing.T, store docstore.Store) {
	t.Helper()
	ctx := context.Background()
	suffix := time.Now().Format("150405.000000000")

	t.Run("CreateGet", func(t *testing.T) {
		col := "categorias_" + suffix + "_cg"
		ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		id, err := store.Create(ctx, col, map[string]any{"nome": "Ferramentas", "atualizadoEm": ts})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if id == "" {
			t.Fatalf("expected non-empty id")
		}

		doc, err := store.Get(ctx, col, id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if name, _ := docstore.String(doc.Fields, "nome"); name != "Ferramentas" {
			t.Errorf("expected nome Ferramentas, got %q", name)
		}
		if got, ok := docstore.Time(doc.Fields, "atualizadoEm"); !ok || !got.Equal(ts) {
			t.Errorf("expected timestamp %v, got %v (%v)", ts, got, ok)
		}
	})

	t.Run("NumbersRoundTrip", func(t *testing.T) {
		col := "itens_" + suffix + "_num"
		id, err := store.Create(ctx, col, map[string]any{"quantidade": int64(7), "valor": 19.9})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		doc, err := store.Get(ctx, col, id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if q, _ := docstore.Int64(doc.Fields, "quantidade"); q != 7 {
			t.Errorf("expected quantidade 7, got %d", q)
		}
		if v, _ := docstore.Decimal(doc.Fields, "valor", 2); v.String() != "19.9" {
			t.Errorf("expected valor 19.9, got %s", v)
		}
	})

	t.Run("Query", func(t *testing.T) {
		col := "itens_" + suffix + "_q"
		for _, c := range []string{"c1", "c2", "c1"} {
			if _, err := store.Create(ctx, col, map[string]any{"categoriaId": c}); err != nil {
				t.Fatalf("Create: %v", err)
			}
		}
		docs, err := store.Query(ctx, col, "categoriaId", "c1")
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if len(docs) != 2 {
			t.Errorf("expected 2 matches, got %d", len(docs))
		}
		docs, err = store.Query(ctx, col, "categoriaId", "none")
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if len(docs) != 0 {
			t.Errorf("expected no matches, got %d", len(docs))
		}
	})

	t.Run("UpdateIsPartial", func(t *testing.T) {
		col := "itens_" + suffix + "_u"
		id, _ := store.Create(ctx, col, map[string]any{"nome": "a", "descricao": "d"})
		if err := store.Update(ctx, col, id, map[string]any{"nome": "b"}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		doc, _ := store.Get(ctx, col, id)
		if n, _ := docstore.String(doc.Fields, "nome"); n != "b" {
			t.Errorf("expected nome b, got %q", n)
		}
		if d, _ := docstore.String(doc.Fields, "descricao"); d != "d" {
			t.Errorf("expected descricao kept, got %q", d)
		}
	})

	t.Run("DeleteAndNotFound", func(t *testing.T) {
		col := "itens_" + suffix + "_d"
		id, _ := store.Create(ctx, col, map[string]any{"nome": "x"})
		if err := store.Delete(ctx, col, id); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := store.Get(ctx, col, id); !errors.Is(err, docstore.ErrNotFound) {
			t.Errorf("Get after delete: expected ErrNotFound, got %v", err)
		}
		if err := store.Delete(ctx, col, id); !errors.Is(err, docstore.ErrNotFound) {
			t.Errorf("second Delete: expected ErrNotFound, got %v", err)
		}
		if err := store.Update(ctx, col, id, map[string]any{"nome": "y"}); !errors.Is(err, docstore.ErrNotFound) {
			t.Errorf("Update after delete: expected ErrNotFound, got %v", err)
		}
		docs, err := store.List(ctx, col)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(docs) != 0 {
			t.Errorf("expected empty list, got %d", len(docs))
		}
	})
}
