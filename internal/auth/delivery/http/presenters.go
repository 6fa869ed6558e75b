package http

import (
	"time"

	"inventory-management/internal/auth"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) toInput() auth.SignInInput {
	return auth.SignInInput{Email: r.Email, Password: r.Password}
}

type loginResp struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
}

func (h *handler) newLoginResp(out auth.SignInOutput) loginResp {
	return loginResp{
		Token:     out.Token,
		TokenType: "Bearer",
		ExpiresAt: out.Scope.ExpiresAt,
		UserID:    out.Scope.UserID,
		Email:     out.Scope.Email,
	}
}
