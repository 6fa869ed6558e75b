package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"inventory-management/internal/model"
	"inventory-management/internal/search"
	pkgErrors "inventory-management/pkg/errors"
)

// Search loads both collections concurrently and indexes them. A blank query fails
// before anything is fetched.
func (uc *implUseCase) Search(ctx context.Context, input search.SearchInput) (search.SearchOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return search.SearchOutput{}, pkgErrors.InvalidArgument(search.ErrEmptyQuery)
	}

	var (
		categories []model.Category
		items      []model.Item
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := uc.categories.List(gctx)
		if err != nil {
			return err
		}
		categories = out.Categories
		return nil
	})
	g.Go(func() error {
		out, err := uc.items.List(gctx)
		if err != nil {
			return err
		}
		items = out.Items
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.Search load: %v", err)
		return search.SearchOutput{}, err
	}

	results, err := search.Index(input.Query, categories, items)
	if err != nil {
		return search.SearchOutput{}, err
	}
	return search.SearchOutput{Results: results}, nil
}
