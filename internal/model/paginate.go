package model

// Paginated wraps one page of a listing. Total always reflects the full
// unfiltered count; Data holds only the current page, at most Limit items.
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// TotalPagesFor computes ceil(total / limit) without floating point.
func TotalPagesFor(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// PaginatedUsers is the users listing page.
type PaginatedUsers struct {
	Users      []UserListItem `json:"users"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}
