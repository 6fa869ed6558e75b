package category

import "inventory-management/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Name string
}

type RenameInput struct {
	ID   string
	Name string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Categories []model.Category
}

type DetailOutput struct {
	Category model.Category
}

type CreateOutput struct {
	Category model.Category
}

type RenameOutput struct {
	Category model.Category
}
