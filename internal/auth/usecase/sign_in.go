package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-management/internal/auth"
	"inventory-management/internal/model"
	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/identity"
)

// SignIn checks the credentials with the provider and opens a session.
func (uc *implUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.SignInOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return auth.SignInOutput{}, pkgErrors.InvalidArgument(auth.ErrEmailRequired)
	}
	if input.Password == "" {
		return auth.SignInOutput{}, pkgErrors.InvalidArgument(auth.ErrPasswordRequired)
	}

	user, err := uc.provider.VerifyPassword(ctx, email, input.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		uc.l.Infof(ctx, "uc.SignIn: refused sign-in for %s", email)
		return auth.SignInOutput{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignIn VerifyPassword: %v", err)
		return auth.SignInOutput{}, pkgErrors.Unavailablef(err, "identity provider")
	}

	token, sc, err := uc.sessions.Issue(user.ID, user.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SignIn Issue: %v", err)
		return auth.SignInOutput{}, err
	}
	return auth.SignInOutput{Token: token, Scope: sc}, nil
}

// SignOut ends the session. Signing out twice is harmless.
func (uc *implUseCase) SignOut(ctx context.Context, sc model.Scope) error {
	uc.sessions.Revoke(sc)
	uc.l.Infof(ctx, "uc.SignOut: session %s ended", sc.SessionID)
	return nil
}
