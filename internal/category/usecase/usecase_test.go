package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inventory-management/internal/category"
	repo "inventory-management/internal/category/repository"
	categoryRepo "inventory-management/internal/category/repository/docstore"
	"inventory-management/internal/category/usecase"
	"inventory-management/internal/model"
	"inventory-management/pkg/docstore/memory"
	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/log"
)

func newMemoryUseCase() category.UseCase {
	return usecase.New(categoryRepo.New(memory.New(), log.NewNop()), log.NewNop())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank names are rejected before the store", func(t *testing.T) {
		for _, name := range []string{"", " ", "\t\n "} {
			f := &fakeRepo{}
			uc := usecase.New(f, log.NewNop())
			_, err := uc.Create(ctx, category.CreateInput{Name: name})
			if !pkgErrors.IsInvalidArgument(err) || !errors.Is(err, category.ErrNameRequired) {
				t.Errorf("name %q: expected invalid argument, got %v", name, err)
			}
			if f.calls != 0 {
				t.Errorf("name %q: expected no store call, got %d", name, f.calls)
			}
		}
	})

	t.Run("Too long", func(t *testing.T) {
		f := &fakeRepo{}
		uc := usecase.New(f, log.NewNop())
		_, err := uc.Create(ctx, category.CreateInput{Name: strings.Repeat("a", model.CategoryNameMaxLength+1)})
		if !errors.Is(err, category.ErrNameTooLong) || !pkgErrors.IsInvalidArgument(err) {
			t.Errorf("expected ErrNameTooLong, got %v", err)
		}
		if f.calls != 0 {
			t.Errorf("expected no store call")
		}
	})

	t.Run("Length counts characters not bytes", func(t *testing.T) {
		uc := newMemoryUseCase()
		name := strings.Repeat("ç", model.CategoryNameMaxLength)
		if _, err := uc.Create(ctx, category.CreateInput{Name: name}); err != nil {
			t.Errorf("expected 50 multibyte characters to be accepted, got %v", err)
		}
	})

	t.Run("Round trip stores the trimmed name", func(t *testing.T) {
		uc := newMemoryUseCase()
		out, err := uc.Create(ctx, category.CreateInput{Name: "  Ferramentas  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.ID == "" {
			t.Fatalf("expected store-assigned id")
		}

		got, err := uc.Detail(ctx, out.Category.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Category.Name != "Ferramentas" {
			t.Errorf("expected trimmed name, got %q", got.Category.Name)
		}
		if got.Category.UpdatedAt.IsZero() {
			t.Errorf("expected updatedAt to be set")
		}
	})

	t.Run("Store failure is unavailable", func(t *testing.T) {
		f := &fakeRepo{createFunc: func(repo.CreateCategoryOptions) (model.Category, error) {
			return model.Category{}, pkgErrors.Unavailable(repo.ErrFailedToInsert)
		}}
		uc := usecase.New(f, log.NewNop())
		_, err := uc.Create(ctx, category.CreateInput{Name: "x"})
		if !pkgErrors.IsUnavailable(err) {
			t.Errorf("expected unavailable, got %v", err)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank id is not found without a store call", func(t *testing.T) {
		f := &fakeRepo{}
		uc := usecase.New(f, log.NewNop())
		_, err := uc.Detail(ctx, "  ")
		if !pkgErrors.IsNotFound(err) || !errors.Is(err, category.ErrCategoryNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
		if f.calls != 0 {
			t.Errorf("expected no store call")
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := newMemoryUseCase().Detail(ctx, "missing")
		if !pkgErrors.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing names get the placeholder", func(t *testing.T) {
		store := memory.New()
		store.Create(ctx, "categorias", map[string]any{})
		store.Create(ctx, "categorias", map[string]any{"nome": "Limpeza"})
		uc := usecase.New(categoryRepo.New(store, log.NewNop()), log.NewNop())

		out, err := uc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(out.Categories))
		}
		if out.Categories[0].Name != model.UnnamedPlaceholder {
			t.Errorf("expected placeholder, got %q", out.Categories[0].Name)
		}
		if out.Categories[1].Name != "Limpeza" {
			t.Errorf("expected Limpeza, got %q", out.Categories[1].Name)
		}
	})

	t.Run("Empty collection", func(t *testing.T) {
		out, err := newMemoryUseCase().List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Categories) != 0 {
			t.Errorf("expected no categories, got %d", len(out.Categories))
		}
	})
}

func TestRename(t *testing.T) {
	ctx := context.Background()

	t.Run("Same name is rejected", func(t *testing.T) {
		uc := newMemoryUseCase()
		created, _ := uc.Create(ctx, category.CreateInput{Name: "Ferramentas"})

		_, err := uc.Rename(ctx, category.RenameInput{ID: created.Category.ID, Name: " Ferramentas "})
		if !pkgErrors.IsInvalidArgument(err) || !errors.Is(err, category.ErrNameUnchanged) {
			t.Errorf("expected ErrNameUnchanged, got %v", err)
		}
	})

	t.Run("Blank name is rejected before the store", func(t *testing.T) {
		f := &fakeRepo{}
		uc := usecase.New(f, log.NewNop())
		_, err := uc.Rename(ctx, category.RenameInput{ID: "c1", Name: "   "})
		if !pkgErrors.IsInvalidArgument(err) {
			t.Errorf("expected invalid argument, got %v", err)
		}
		if f.calls != 0 {
			t.Errorf("expected no store call")
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := newMemoryUseCase().Rename(ctx, category.RenameInput{ID: "missing", Name: "Nova"})
		if !pkgErrors.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("Renames and persists", func(t *testing.T) {
		uc := newMemoryUseCase()
		created, _ := uc.Create(ctx, category.CreateInput{Name: "Ferramentas"})

		out, err := uc.Rename(ctx, category.RenameInput{ID: created.Category.ID, Name: "  Ferramentas manuais "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.Name != "Ferramentas manuais" {
			t.Errorf("expected renamed category, got %q", out.Category.Name)
		}

		got, _ := uc.Detail(ctx, created.Category.ID)
		if got.Category.Name != "Ferramentas manuais" {
			t.Errorf("expected persisted rename, got %q", got.Category.Name)
		}
	})

	t.Run("Document vanished before update", func(t *testing.T) {
		f := &fakeRepo{
			getFunc: func(id string) (model.Category, error) {
				return model.Category{ID: id, Name: "old"}, nil
			},
			updateFunc: func(repo.UpdateCategoryOptions) (model.Category, error) {
				return model.Category{}, repo.ErrNotFound
			},
		}
		uc := usecase.New(f, log.NewNop())
		_, err := uc.Rename(ctx, category.RenameInput{ID: "c1", Name: "new"})
		if !pkgErrors.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown id", func(t *testing.T) {
		err := newMemoryUseCase().Delete(ctx, "missing")
		if !pkgErrors.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("Deletes", func(t *testing.T) {
		uc := newMemoryUseCase()
		created, _ := uc.Create(ctx, category.CreateInput{Name: "Ferramentas"})
		if err := uc.Delete(ctx, created.Category.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Detail(ctx, created.Category.ID); !pkgErrors.IsNotFound(err) {
			t.Errorf("expected category to be gone, got %v", err)
		}
	})
}
