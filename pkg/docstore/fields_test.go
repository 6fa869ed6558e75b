package docstore_test

import (
	"encoding/json"
	"testing"
	"time"

	"inventory-management/pkg/docstore"
)

func TestInt64(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int64
		wantOK bool
	}{
		{"int", 3, 3, true},
		{"int64", int64(4), 4, true},
		{"float64", float64(5), 5, true},
		{"json number", json.Number("6"), 6, true},
		{"numeric string", " 7 ", 7, true},
		{"garbage string", "sete", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := docstore.Int64(map[string]any{"q": tt.value}, "q")
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("expected (%d, %v), got (%d, %v)", tt.want, tt.wantOK, got, ok)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		if _, ok := docstore.Int64(map[string]any{}, "q"); ok {
			t.Errorf("expected missing field to report !ok")
		}
	})
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"float64", 12.5, "12.5"},
		{"float64 binary noise", 0.1 + 0.2, "0.3"},
		{"int64", int64(10), "10"},
		{"string", "3.14", "3.14"},
		{"json number", json.Number("9.99"), "9.99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := docstore.Decimal(map[string]any{"v": tt.value}, "v", 2)
			if !ok {
				t.Fatalf("expected ok")
			}
			if got.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got.String())
			}
		})
	}
}

func TestTime(t *testing.T) {
	ref := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("time.Time", func(t *testing.T) {
		got, ok := docstore.Time(map[string]any{"t": ref}, "t")
		if !ok || !got.Equal(ref) {
			t.Errorf("unexpected %v %v", got, ok)
		}
	})

	t.Run("RFC3339 string", func(t *testing.T) {
		got, ok := docstore.Time(map[string]any{"t": ref.Format(time.RFC3339)}, "t")
		if !ok || !got.Equal(ref) {
			t.Errorf("unexpected %v %v", got, ok)
		}
	})

	t.Run("unix seconds", func(t *testing.T) {
		got, ok := docstore.Time(map[string]any{"t": float64(ref.Unix())}, "t")
		if !ok || !got.Equal(ref) {
			t.Errorf("unexpected %v %v", got, ok)
		}
	})
}

func TestEqual(t *testing.T) {
	if !docstore.Equal("c1", "c1") {
		t.Errorf("expected equal strings")
	}
	if docstore.Equal("1", 1) {
		t.Errorf("expected string and number to differ")
	}
	if !docstore.Equal(int64(2), 2.0) {
		t.Errorf("expected numeric equality")
	}
	if !docstore.Equal(true, true) {
		t.Errorf("expected equal bools")
	}
}
