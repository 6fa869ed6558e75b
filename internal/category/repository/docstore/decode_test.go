package docstore

import (
	"testing"
	"time"

	"inventory-management/internal/model"
	pkgDocstore "inventory-management/pkg/docstore"
)

func TestDecode(t *testing.T) {
	ts := time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		fields   map[string]any
		wantName string
	}{
		{"name present", map[string]any{fieldName: "Limpeza"}, "Limpeza"},
		{"name missing", map[string]any{}, model.UnnamedPlaceholder},
		{"name blank", map[string]any{fieldName: "  "}, model.UnnamedPlaceholder},
		{"name wrong type", map[string]any{fieldName: 42}, model.UnnamedPlaceholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := decode(pkgDocstore.Document{ID: "c1", Fields: tt.fields})
			if c.ID != "c1" || c.Name != tt.wantName {
				t.Errorf("expected %q, got %+v", tt.wantName, c)
			}
		})
	}

	t.Run("timestamps", func(t *testing.T) {
		c := decode(pkgDocstore.Document{ID: "c1", Fields: map[string]any{fieldUpdatedAt: ts}})
		if !c.UpdatedAt.Equal(ts) || !c.CreatedAt.IsZero() {
			t.Errorf("unexpected timestamps %+v", c)
		}
	})
}
