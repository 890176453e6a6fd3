package component

import (
	"context"
	"strconv"
)

type Pagination struct {
	Page       int
	TotalPages int
	Previous   string
	Next       string
}

// NewPagination builds the links to the pages surrounding the current one,
// keeping the current query string.
func NewPagination(ctx context.Context, page, totalPages int, hasPrevious, hasNext bool) Pagination {
	pagination := Pagination{
		Page:       page,
		TotalPages: totalPages,
	}

	if hasPrevious {
		pagination.Previous = CurrentURL(ctx, WithValuesReset("page", strconv.Itoa(page-1)))
	}

	if hasNext {
		pagination.Next = CurrentURL(ctx, WithValuesReset("page", strconv.Itoa(page+1)))
	}

	return pagination
}
