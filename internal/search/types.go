package search

// Kind tags a Result as a category or an item match.
type Kind string

const (
	KindCategory Kind = "category"
	KindItem     Kind = "item"
)

// Result is one search hit. Description and CategoryID are set for items only.
type Result struct {
	Kind        Kind
	ID          string
	Name        string
	Description string
	CategoryID  string
}

// TargetCategoryID is the category whose item list a result leads to: the category
// itself, or the item's owning category.
func (r Result) TargetCategoryID() string {
	if r.Kind == KindCategory {
		return r.ID
	}
	return r.CategoryID
}

type SearchInput struct {
	Query string
}

type SearchOutput struct {
	Results []Result
}
