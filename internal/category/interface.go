package category

import "context"

// UseCase manages the categories collection. Failures carry a pkg/errors kind:
// InvalidArgument for bad input, NotFound for unknown ids, Unavailable for store errors.
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Rename(ctx context.Context, input RenameInput) (RenameOutput, error)
	Delete(ctx context.Context, id string) error
}
