package http

import (
	"time"

	"inventory-management/internal/category"
	"inventory-management/internal/model"
	"inventory-management/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name string `json:"name"`
}

func (r createReq) toInput() category.CreateInput {
	return category.CreateInput{Name: r.Name}
}

type listReq struct {
	Query string `form:"q"`
}

type renameReq struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}

func (r renameReq) toInput() category.RenameInput {
	return category.RenameInput{ID: r.ID, Name: r.Name}
}

// --- Response DTOs ---

type categoryResp struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CreatedAt *response.DateTime `json:"created_at,omitempty"`
	UpdatedAt *response.DateTime `json:"updated_at,omitempty"`
}

func newCategoryResp(c model.Category) categoryResp {
	return categoryResp{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: dateTime(c.CreatedAt),
		UpdatedAt: dateTime(c.UpdatedAt),
	}
}

func dateTime(t time.Time) *response.DateTime {
	if t.IsZero() {
		return nil
	}
	d := response.DateTime(t)
	return &d
}

type listResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newListResp(categories []model.Category) listResp {
	out := make([]categoryResp, len(categories))
	for i, c := range categories {
		out[i] = newCategoryResp(c)
	}
	return listResp{Categories: out}
}

type detailResp struct {
	Category categoryResp `json:"category"`
}

func (h *handler) newDetailResp(c model.Category) detailResp {
	return detailResp{Category: newCategoryResp(c)}
}
