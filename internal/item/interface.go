package item

import "context"

// UseCase manages the items collection. Failures carry a pkg/errors kind.
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	// ListByCategory never fails with NotFound: an unknown category has no items.
	ListByCategory(ctx context.Context, categoryID string) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	// Update replaces every editable field; concurrent updates resolve to the last write.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error
}
