package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"inventory-management/internal/category"
	categoryRepo "inventory-management/internal/category/repository/docstore"
	categoryUC "inventory-management/internal/category/usecase"
	itemRepo "inventory-management/internal/item/repository/docstore"
	itemUC "inventory-management/internal/item/usecase"
	"inventory-management/internal/model"
	"inventory-management/pkg/docstore/memory"
	"inventory-management/pkg/log"
)

type testEnv struct {
	router     *gin.Engine
	categories category.UseCase
}

func newTestEnv() testEnv {
	gin.SetMode(gin.TestMode)
	store := memory.New()
	l := log.NewNop()

	cats := categoryUC.New(categoryRepo.New(store, l), l)
	h := New(l, itemUC.New(itemRepo.New(store, l), l), cats)

	r := gin.New()
	r.POST("/items", h.Create)
	r.GET("/items/:id", h.Detail)
	r.PUT("/items/:id", h.Update)
	return testEnv{router: r, categories: cats}
}

func (e testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeItem(t *testing.T, w *httptest.ResponseRecorder) itemResp {
	t.Helper()
	var env struct {
		Data detailResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, w.Body.String())
	}
	return env.Data.Item
}

func TestCreate_Lenient(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name         string
		body         string
		wantCode     int
		wantQuantity int64
		wantPrice    string
	}{
		{
			name:     "strict rejects formatted numbers",
			body:     `{"name":"Pera","quantity":"3 un","price":"R$ 12,5","category_id":"c1"}`,
			wantCode: nethttp.StatusBadRequest,
		},
		{
			name:         "lenient cleans formatted numbers",
			body:         `{"name":"Pera","quantity":"3 un","price":"R$ 12,5","category_id":"c1","lenient":true}`,
			wantCode:     nethttp.StatusCreated,
			wantQuantity: 3,
			wantPrice:    "12.50",
		},
		{
			name:         "lenient completes a leading separator",
			body:         `{"name":"Pera","quantity":"1","price":",75","category_id":"c1","lenient":true}`,
			wantCode:     nethttp.StatusCreated,
			wantQuantity: 1,
			wantPrice:    "0.75",
		},
		{
			name:     "missing category",
			body:     `{"name":"Pera","quantity":"1","price":"1"}`,
			wantCode: nethttp.StatusBadRequest,
		},
		{
			name:     "malformed json",
			body:     `{"name":`,
			wantCode: nethttp.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(nethttp.MethodPost, "/items", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d (%s)", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.wantCode != nethttp.StatusCreated {
				return
			}
			got := decodeItem(t, w)
			if got.Quantity != tt.wantQuantity || got.Price != tt.wantPrice {
				t.Errorf("expected %d/%s, got %d/%s", tt.wantQuantity, tt.wantPrice, got.Quantity, got.Price)
			}
		})
	}
}

func TestDetail_CategoryName(t *testing.T) {
	env := newTestEnv()
	ctx := httptest.NewRequest(nethttp.MethodGet, "/", nil).Context()

	cat, err := env.categories.Create(ctx, category.CreateInput{Name: "Frutas"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	w := env.do(nethttp.MethodPost, "/items", `{"name":"Pera","quantity":"1","price":"2","category_id":"`+cat.Category.ID+`"}`)
	if w.Code != nethttp.StatusCreated {
		t.Fatalf("create item: %d (%s)", w.Code, w.Body.String())
	}
	id := decodeItem(t, w).ID

	w = env.do(nethttp.MethodGet, "/items/"+id, "")
	if got := decodeItem(t, w).CategoryName; got != "Frutas" {
		t.Errorf("expected category name Frutas, got %q", got)
	}

	if err := env.categories.Delete(ctx, cat.Category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	w = env.do(nethttp.MethodGet, "/items/"+id, "")
	if w.Code != nethttp.StatusOK {
		t.Fatalf("expected orphaned item to stay readable, got %d", w.Code)
	}
	if got := decodeItem(t, w).CategoryName; got != model.CategoryPlaceholder {
		t.Errorf("expected placeholder, got %q", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	env := newTestEnv()
	w := env.do(nethttp.MethodPut, "/items/missing", `{"name":"Pera","quantity":"1","price":"2","category_id":"c1"}`)
	if w.Code != nethttp.StatusNotFound {
		t.Errorf("expected 404, got %d (%s)", w.Code, w.Body.String())
	}
}
