package auth

import (
	"context"

	"inventory-management/internal/model"
)

// UseCase opens and closes sessions.
type UseCase interface {
	SignIn(ctx context.Context, input SignInInput) (SignInOutput, error)
	SignOut(ctx context.Context, sc model.Scope) error
}
