package models

import "math"

// Page bounds shared by every paginated listing
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 1000
	// MaxPage keeps (page-1)*limit far from overflowing
	MaxPage = math.MaxInt32
)

// PageRows is the inner row container of a paginated payload
type PageRows[T any] struct {
	Count int `json:"count"`
	Rows  []T `json:"rows"`
}

// PaginatedData represents one page of a listing
type PaginatedData[T any] struct {
	TotalPages  int         `json:"total_pages"`
	CurrentPage int         `json:"current_page"`
	Count       int64       `json:"count"`
	Rows        PageRows[T] `json:"rows"`
}

// NewPaginatedData builds the payload for a page of rows out of total
func NewPaginatedData[T any](rows []T, total int64, page, limit int) *PaginatedData[T] {
	if rows == nil {
		rows = []T{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int(total) / limit
		if int(total)%limit > 0 {
			totalPages++
		}
	}
	return &PaginatedData[T]{
		TotalPages:  totalPages,
		CurrentPage: page,
		Count:       total,
		Rows: PageRows[T]{
			Count: len(rows),
			Rows:  rows,
		},
	}
}

// NormalizePage clamps page and limit to usable values
func NormalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// PageOffset returns the row offset of a 1-based page out of total rows.
// ok is false when the page lies past the data or the arguments are unusable.
func PageOffset(page, limit int, total int64) (offset int64, ok bool) {
	if page < 1 || limit < 1 || total < 1 {
		return 0, false
	}
	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}
	if int64(page) > pages {
		return 0, false
	}
	return int64(page-1) * int64(limit), true
}
