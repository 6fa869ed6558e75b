package auth

import "inventory-management/internal/model"

type SignInInput struct {
	Email    string
	Password string
}

type SignInOutput struct {
	Token string
	Scope model.Scope
}
