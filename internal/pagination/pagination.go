package pagination

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params are the page/limit query parameters, clamped to sane bounds.
type Params struct {
	Page  int
	Limit int
}

// FromCtx reads and validates pagination parameters from the query string.
func FromCtx(c *fiber.Ctx) Params {
	p := Params{
		Page:  c.QueryInt("page", DefaultPage),
		Limit: c.QueryInt("limit", DefaultLimit),
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the 0-indexed offset for database queries.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Links holds navigation links for paginated responses.
type Links struct {
	Self string  `json:"self"`
	Next *string `json:"next,omitempty"`
	Prev *string `json:"prev,omitempty"`
}

// Metadata describes one page of a paginated result set.
type Metadata struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	PageCount  int   `json:"page_count"`
	TotalPages int   `json:"total_pages"`
	TotalCount int64 `json:"total_count"`
	Links      Links `json:"_links"`
}

// NewMetadata builds the pagination metadata for a page of totalCount items,
// with next/prev links relative to selfLink.
func NewMetadata(p Params, totalCount int64, selfLink string) Metadata {
	totalPages := int((totalCount + int64(p.Limit) - 1) / int64(p.Limit))

	pageCount := 0
	if p.Page < totalPages {
		pageCount = p.Limit
	} else if p.Page == totalPages {
		pageCount = int(totalCount) - (p.Page-1)*p.Limit
	}

	links := Links{Self: selfLink}
	if p.Page < totalPages {
		next := fmt.Sprintf("%s?page=%d&limit=%d", selfLink, p.Page+1, p.Limit)
		links.Next = &next
	}
	if p.Page > 1 {
		prev := fmt.Sprintf("%s?page=%d&limit=%d", selfLink, p.Page-1, p.Limit)
		links.Prev = &prev
	}

	return Metadata{
		Page:       p.Page,
		Limit:      p.Limit,
		PageCount:  pageCount,
		TotalPages: totalPages,
		TotalCount: totalCount,
		Links:      links,
	}
}
