package models

import (
	"net/url"
	"strconv"
)

// Pagination selects a window of an offset-paginated listing.
// Zero values are omitted from the query string.
type Pagination struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

// NewPagination returns a pagination window starting at offset.
func NewPagination(offset, limit int) Pagination {
	return Pagination{Offset: offset, Limit: limit}
}

// Page returns the window for a 1-based page number. Page 0 is treated as
// page 1.
func Page(page, perPage int) Pagination {
	if page < 1 {
		page = 1
	}
	return Pagination{Offset: (page - 1) * perPage, Limit: perPage}
}

// Values encodes the window as query parameters.
func (p *Pagination) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

// PaginatedResponse is one window of an offset-paginated listing.
type PaginatedResponse[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HasMore reports whether items remain past this window.
func (r *PaginatedResponse[T]) HasMore() bool {
	return r.Offset+r.Limit < r.Total
}

// NextPage returns the window following this one, or nil on the last page.
func (r *PaginatedResponse[T]) NextPage() *Pagination {
	if !r.HasMore() {
		return nil
	}
	return &Pagination{Offset: r.Offset + r.Limit, Limit: r.Limit}
}

// CursorPage is one page of a cursor-paginated listing. Resource families
// report either Total or HasMore; NextCursor is set whenever another page
// exists.
type CursorPage[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	Total      *int64 `json:"total,omitempty"`
	HasMore    bool   `json:"hasMore,omitempty"`
}

// More reports whether another page can be requested with NextCursor.
func (p *CursorPage[T]) More() bool {
	return p.NextCursor != ""
}

// CursorOptions are the paging parameters shared by cursor-paginated
// listings.
type CursorOptions struct {
	// After is the opaque cursor returned as NextCursor by the previous page.
	After string
	// Limit caps the number of items per page. Zero uses the server default.
	Limit int
}

// Values encodes the options as query parameters.
func (o CursorOptions) Values() url.Values {
	v := url.Values{}
	if o.After != "" {
		v.Set("after", o.After)
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	return v
}
