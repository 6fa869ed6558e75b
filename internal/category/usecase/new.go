package usecase

import (
	"time"

	"inventory-management/internal/category/repository"
	"inventory-management/pkg/log"
)

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new category UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
