package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Default pagination values
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params represents pagination query parameters
type Params struct {
	Page  int `json:"page"`  // Current page number (1-based)
	Limit int `json:"limit"` // Number of items per page
}

// Meta contains pagination metadata for responses
type Meta struct {
	CurrentPage  int  `json:"current_page"`
	PerPage      int  `json:"per_page"`
	TotalPages   int  `json:"total_pages"`
	TotalRecords int  `json:"total_records"`
	HasNext      bool `json:"has_next"`
	HasPrevious  bool `json:"has_previous"`
}

// NewParams returns params for the first page with the default page size.
func NewParams() Params {
	return Params{Page: DefaultPage, Limit: DefaultLimit}
}

// ParseParams extracts and validates pagination parameters from HTTP request
func ParseParams(r *http.Request) Params {
	page := DefaultPage
	limit := DefaultLimit

	// Parse page parameter
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	// Parse limit parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
			// Enforce maximum limit
			if limit > MaxLimit {
				limit = MaxLimit
			}
		}
	}

	return Params{
		Page:  page,
		Limit: limit,
	}
}

// Validate ensures pagination parameters are valid and sets defaults if needed
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// CalculateOffset returns the index of the first record on the page
func (p *Params) CalculateOffset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(totalRecords / limit); zero records means zero pages.
func (p *Params) TotalPages(totalRecords int) int {
	if totalRecords <= 0 {
		return 0
	}
	return (totalRecords + p.Limit - 1) / p.Limit // Ceiling division
}

// Window returns the half-open [start, end) slice bounds of the current page,
// clipped to totalRecords. A page past the end yields an empty window.
func (p *Params) Window(totalRecords int) (start, end int) {
	start = p.CalculateOffset()
	if start > totalRecords {
		start = totalRecords
	}
	end = start + p.Limit
	if end > totalRecords {
		end = totalRecords
	}
	return start, end
}

// CalculateMeta creates pagination metadata based on total records
func (p *Params) CalculateMeta(totalRecords int) Meta {
	totalPages := p.TotalPages(totalRecords)

	return Meta{
		CurrentPage:  p.Page,
		PerPage:      p.Limit,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		HasNext:      p.Page < totalPages,
		HasPrevious:  p.Page > 1,
	}
}

// Next moves to the following page if one exists and reports whether it moved.
func (p *Params) Next(totalRecords int) bool {
	if p.Page >= p.TotalPages(totalRecords) {
		return false
	}
	p.Page++
	return true
}

// Previous moves back one page unless already on the first.
func (p *Params) Previous() bool {
	if p.Page <= 1 {
		return false
	}
	p.Page--
	return true
}

// Clamp pulls the page back onto the last page when it overshoots.
func (p *Params) Clamp(totalRecords int) {
	last := p.TotalPages(totalRecords)
	if last < 1 {
		last = 1
	}
	if p.Page > last {
		p.Page = last
	}
}

// Label renders "Page X of Y". An empty result still reads "of 1".
func (m Meta) Label() string {
	total := m.TotalPages
	if total < 1 {
		total = 1
	}
	return fmt.Sprintf("Page %d of %d", m.CurrentPage, total)
}
