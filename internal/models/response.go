package models

// Response is the uniform JSON envelope returned by every endpoint.
type Response struct {
	Success bool   `json:"success"`           // Operation outcome
	Message string `json:"message,omitempty"` // Human-readable message
	Data    any    `json:"data,omitempty"`    // Payload
	Errors  any    `json:"errors,omitempty"`  // Field-level validation messages
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int `json:"page"`       // 1-based page number
	Limit      int `json:"limit"`      // Page size
	Total      int `json:"total"`      // Total matching rows
	TotalPages int `json:"totalPages"` // ceil(Total / Limit)
}

// NewPagination computes the page count for a window.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
