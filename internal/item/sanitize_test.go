package item_test

import (
	"testing"

	"inventory-management/internal/item"
	"inventory-management/internal/model"
)

func TestSanitizeQuantity(t *testing.T) {
	tests := map[string]string{
		"12":     "12",
		"1a2b":   "12",
		"-5":     "5",
		" 3 un ": "3",
		"":       "",
		"٣":      "",
	}
	for in, want := range tests {
		if got := item.SanitizeQuantity(in); got != want {
			t.Errorf("SanitizeQuantity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizePrice(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		input    string
		want     string
	}{
		{"digits", "", "12", "12"},
		{"dot", "", "12.5", "12.5"},
		{"comma becomes dot", "", "12,50", "12.50"},
		{"strips currency", "", "R$ 9.99", "9.99"},
		{"second separator keeps previous", "12.5", "12.5.", "12.5"},
		{"mixed separators keep previous", "1", "1,2.3", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := item.SanitizePrice(tt.previous, tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCategoryName(t *testing.T) {
	categories := []model.Category{{ID: "c1", Name: "Ferramentas"}}

	if got := item.CategoryName(categories, "c1"); got != "Ferramentas" {
		t.Errorf("expected Ferramentas, got %q", got)
	}
	if got := item.CategoryName(categories, "gone"); got != model.CategoryPlaceholder {
		t.Errorf("expected placeholder for dangling reference, got %q", got)
	}
}
