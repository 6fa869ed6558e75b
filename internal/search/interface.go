package search

import "context"

// UseCase searches across categories and items currently in the store.
type UseCase interface {
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
}
