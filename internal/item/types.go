package item

import "inventory-management/internal/model"

// --- UseCase Inputs ---

// Quantity and Price arrive as typed by the user and are parsed by the use case.

type CreateInput struct {
	Name        string
	Description string
	Quantity    string
	Price       string
	CategoryID  string
}

type UpdateInput struct {
	ID          string
	Name        string
	Description string
	Quantity    string
	Price       string
	CategoryID  string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Items []model.Item
}

type DetailOutput struct {
	Item model.Item
}

type CreateOutput struct {
	Item model.Item
}

type UpdateOutput struct {
	Item model.Item
}
