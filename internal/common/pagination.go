package common

// Pagination bounds, matching the public API contract.
const (
	DefaultPageSize = 10
	MaxPageSize     = 25
)

// PaginationParams carries the page/size query parameters.
type PaginationParams struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Normalize clamps page and size into their allowed ranges.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
}

// Offset returns the row offset for the current page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Size
}

// Limit returns the row limit for the current page.
func (p PaginationParams) Limit() int {
	return p.Size
}

// PaginatedResponse is the envelope for every paginated listing.
type PaginatedResponse[T any] struct {
	Items   []T  `json:"items"`
	Page    int  `json:"page"`
	Size    int  `json:"size"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// NewPaginatedResponse assembles the envelope from a page of items and the
// total row count.
func NewPaginatedResponse[T any](items []T, page, size, total int) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return PaginatedResponse[T]{
		Items:   items,
		Page:    page,
		Size:    size,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}
}
