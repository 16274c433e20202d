package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wbvaa/portal/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParsePaginationParams reads the 1-based page and the page size from the
// query string. Missing, malformed or out-of-range values fall back to the
// defaults; a large page number is kept and handled by Paginate.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err = strconv.Atoi(c.Query("size"))
	if err != nil || size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return page, size
}

// Paginate returns the items of one 1-based page together with its metadata.
// A page past the last one is empty. An empty list still has one page.
func Paginate[T any](items []T, page, size int) ([]T, dto.PaginationInfo) {
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	info := dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  int64(total),
	}

	// Compared before multiplying so huge page numbers cannot overflow.
	if page > totalPages {
		return []T{}, info
	}
	start := (page - 1) * size
	end := min(start+size, total)
	return items[start:end], info
}
