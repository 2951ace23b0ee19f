package domain

import "math"

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// Normalize clamps paging input to sane bounds.
func (p Pagination) Normalize(defaultSize, maxSize int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	// keep Offset inside a signed 32-bit OFFSET
	if p.PageSize > 0 && p.Page > math.MaxInt32/p.PageSize {
		p.Page = math.MaxInt32 / p.PageSize
	}
	return p
}

// Offset is the SQL OFFSET for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// AdminIdentity is the decoded admin session principal.
type AdminIdentity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
