package shared

// Filter narrows a repository listing. Search is matched against the
// context's natural text columns, repositories decide which.
type Filter struct {
	Page     int
	PageSize int
	Search   string
}

// DefaultFilter returns the first page at the standard size.
func DefaultFilter() Filter {
	return Filter{Page: 1, PageSize: 20}
}

// Paginated wraps one page of a listing together with its totals.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated derives TotalPages from the total count and page size.
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	pages := 0
	if pageSize > 0 {
		pages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			pages++
		}
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}
}
