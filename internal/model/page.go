package model

// DefaultPageSize is the number of items the backend returns per listing page.
// Page-count math on the client relies on the two agreeing.
const DefaultPageSize = 10

// ListingPage is the currently displayed page of saved items.
type ListingPage struct {
	Items       []SavedItem
	TotalCount  int
	CurrentPage int
}

// Pagination describes the page control for a listing.
type Pagination struct {
	Current    int
	TotalPages int
	PageSize   int
	Total      int
}

// Paginate computes the page control for total items at pageSize per page.
// There is always at least one page.
func Paginate(total, pageSize, current int) Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return Pagination{
		Current:    current,
		TotalPages: pages,
		PageSize:   pageSize,
		Total:      total,
	}
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a following page exists.
func (p Pagination) HasNext() bool { return p.Current < p.TotalPages }
