package finance

// DefaultPageLimit applies when a request does not specify one.
const DefaultPageLimit = 10

// Pagination is the 1-indexed page convention used by every listing.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// NewPagination normalizes page/limit and derives the page metadata.
func NewPagination(page, limit, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	totalPages := (total + limit - 1) / limit
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page*limit < total,
		HasPrevPage: page > 1,
	}
}

// Bounds returns the half-open slice range for the current page, clamped
// to the set size.
func (p Pagination) Bounds() (int, int) {
	start := (p.Page - 1) * p.Limit
	if start > p.Total {
		start = p.Total
	}
	end := start + p.Limit
	if end > p.Total {
		end = p.Total
	}
	return start, end
}
