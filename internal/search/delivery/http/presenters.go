package http

import "inventory-management/internal/search"

type searchReq struct {
	Query string `form:"q"`
}

type resultResp struct {
	Kind             string `json:"kind"`
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	CategoryID       string `json:"category_id,omitempty"`
	TargetCategoryID string `json:"target_category_id"`
}

type searchResp struct {
	Results []resultResp `json:"results"`
	Count   int          `json:"count"`
}

func (h *handler) newSearchResp(out search.SearchOutput) searchResp {
	results := make([]resultResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = resultResp{
			Kind:             string(r.Kind),
			ID:               r.ID,
			Name:             r.Name,
			Description:      r.Description,
			CategoryID:       r.CategoryID,
			TargetCategoryID: r.TargetCategoryID(),
		}
	}
	return searchResp{Results: results, Count: len(results)}
}
