package apiclient

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// Envelope is the wrapper every backend JSON response uses.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  json.RawMessage `json:"errors,omitempty"`
}

// Pagination is the canonical paging block. Endpoints that answer with the
// flat {data,total,page,limit,totalPages} shape are adapted into it.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// Page is one page of a collection.
type Page[T any] struct {
	Items      []T             `json:"items"`
	Pagination Pagination      `json:"pagination"`
	Statistics json.RawMessage `json:"statistics,omitempty"`
}

// FlatPage is the second paginated shape some endpoints return, at the top
// level of the body rather than inside an envelope.
type FlatPage[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Canonical converts the flat shape into a Page.
func (f FlatPage[T]) Canonical() *Page[T] {
	p := &Page[T]{
		Items: f.Data,
		Pagination: Pagination{
			CurrentPage: f.Page,
			PerPage:     f.Limit,
			Total:       f.Total,
			LastPage:    f.TotalPages,
		},
	}
	if p.Items == nil {
		p.Items = []T{}
	}
	if p.Pagination.CurrentPage == 0 {
		p.Pagination.CurrentPage = 1
	}
	if p.Pagination.LastPage == 0 && f.Limit > 0 {
		p.Pagination.LastPage = (f.Total + f.Limit - 1) / f.Limit
	}
	if len(f.Data) > 0 {
		p.Pagination.From = (p.Pagination.CurrentPage-1)*f.Limit + 1
		p.Pagination.To = p.Pagination.From + len(f.Data) - 1
	}
	return p
}

// ListParams are the common collection filters.
type ListParams struct {
	Page      int
	PerPage   int
	Search    string
	Status    string
	SortBy    string
	SortOrder string
	Filters   map[string]string
}

// Query encodes the params for endpoints using page/per_page.
func (p ListParams) Query() url.Values {
	return p.values("per_page")
}

// FlatQuery encodes the params for endpoints using page/limit.
func (p ListParams) FlatQuery() url.Values {
	return p.values("limit")
}

func (p ListParams) values(perPageKey string) url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set(perPageKey, strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.SortBy != "" {
		q.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sort_order", p.SortOrder)
	}
	for k, v := range p.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}
