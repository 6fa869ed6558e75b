package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Messages the Identity Toolkit returns for a refused sign-in.
var refusedSignIn = []string{
	"EMAIL_NOT_FOUND",
	"INVALID_PASSWORD",
	"INVALID_LOGIN_CREDENTIALS",
	"USER_DISABLED",
	"INVALID_EMAIL",
}

type firebaseProvider struct {
	svc *identitytoolkit.Service
}

// NewFirebase signs users in with Firebase Authentication email/password accounts.
// opts must carry the project's Web API key (option.WithAPIKey).
func NewFirebase(ctx context.Context, opts ...option.ClientOption) (Provider, error) {
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit.NewService: %w", err)
	}
	return &firebaseProvider{svc: svc}, nil
}

func (p *firebaseProvider) VerifyPassword(ctx context.Context, email, password string) (User, error) {
	resp, err := p.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		if isRefused(err) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	return User{ID: resp.LocalId, Email: resp.Email}, nil
}

func isRefused(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusBadRequest {
		return false
	}
	for _, refused := range refusedSignIn {
		if strings.HasPrefix(apiErr.Message, refused) {
			return true
		}
	}
	return false
}
