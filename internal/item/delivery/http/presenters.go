package http

import (
	"strings"
	"time"

	"inventory-management/internal/item"
	"inventory-management/internal/model"
	"inventory-management/pkg/response"
)

// --- Request DTOs ---

// itemReq is the item form. Quantity and price are strings as typed; with Lenient
// set they are cleaned the way the mobile form cleaned keystrokes.
type itemReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	CategoryID  string `json:"category_id"`
	Lenient     bool   `json:"lenient"`
}

func (r itemReq) numbers() (quantity, price string) {
	if !r.Lenient {
		return r.Quantity, r.Price
	}
	price = item.SanitizePrice("", r.Price)
	if strings.HasPrefix(price, ".") {
		price = "0" + price
	}
	return item.SanitizeQuantity(r.Quantity), strings.TrimSuffix(price, ".")
}

func (r itemReq) toCreateInput() item.CreateInput {
	q, p := r.numbers()
	return item.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		Quantity:    q,
		Price:       p,
		CategoryID:  r.CategoryID,
	}
}

func (r itemReq) toUpdateInput(id string) item.UpdateInput {
	q, p := r.numbers()
	return item.UpdateInput{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Quantity:    q,
		Price:       p,
		CategoryID:  r.CategoryID,
	}
}

type listReq struct {
	Query string `form:"q"`
}

// --- Response DTOs ---

type itemResp struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Quantity     int64              `json:"quantity"`
	Price        string             `json:"price"`
	CategoryID   string             `json:"category_id"`
	CategoryName string             `json:"category_name,omitempty"`
	CreatedAt    *response.DateTime `json:"created_at,omitempty"`
	UpdatedAt    *response.DateTime `json:"updated_at,omitempty"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Quantity:    it.Quantity,
		Price:       it.Price.StringFixed(model.PriceDecimalPlaces),
		CategoryID:  it.CategoryID,
		CreatedAt:   dateTime(it.CreatedAt),
		UpdatedAt:   dateTime(it.UpdatedAt),
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
	Items []itemResp `json:"items"`
}

func (h *handler) newListResp(items []model.Item) listResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return listResp{Items: out}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(it model.Item, categoryName string) detailResp {
	resp := newItemResp(it)
	resp.CategoryName = categoryName
	return detailResp{Item: resp}
}
