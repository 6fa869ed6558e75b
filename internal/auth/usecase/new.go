package usecase

import (
	"inventory-management/pkg/identity"
	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
)

type implUseCase struct {
	provider identity.Provider
	sessions scope.Manager
	l        log.Logger
}

// New creates an auth UseCase backed by an identity provider and a session manager.
func New(provider identity.Provider, sessions scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		provider: provider,
		sessions: sessions,
		l:        l,
	}
}
