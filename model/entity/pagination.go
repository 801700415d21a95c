package entity

// Pagination is the envelope the backend attaches to list responses. Two
// conventions coexist: orders carry currentPage/totalPages, while items,
// categories and queries carry a hasNextPage flag. Both fields are kept and
// each resource picks its own has-more rule.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages,omitempty"`
	HasNextPage bool `json:"hasNextPage,omitempty"`
	TotalItems  int  `json:"totalItems,omitempty"`
}
