package paging

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPerPage is used when no positive page size is configured
const DefaultPerPage = 10

// Params holds the requested page as received from the query string
type Params struct {
	Page    string `form:"page"`
	PerPage int    `form:"-"`
}

// Page holds the items of one page and its position in the collection
type Page[T any] struct {
	Items    []T `json:"items"`
	Number   int `json:"number"`
	PerPage  int `json:"per_page"`
	Total    int `json:"total"`
	NumPages int `json:"num_pages"`
}

// CountFunc returns the size of the whole collection
type CountFunc func() (int64, error)

// FetchFunc returns the items in [offset, offset+limit) of the collection
type FetchFunc[T any] func(offset, limit int) ([]T, error)

// NormalizePerPage returns perPage, or DefaultPerPage when it is not positive
func NormalizePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}
	return perPage
}

// NumPages returns the number of pages; an empty collection has one page
func NumPages(total, perPage int) int {
	perPage = NormalizePerPage(perPage)
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// Resolve turns a raw page number into a valid one. Anything that is not an
// integer resolves to the first page, out of range values clamp to the
// nearest valid page.
func Resolve(raw string, numPages int) int {
	if numPages < 1 {
		numPages = 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case err != nil, n < 1:
		return 1
	case n > numPages:
		return numPages
	default:
		return n
	}
}

// Paginate counts the collection, resolves the requested page and fetches it
func Paginate[T any](params Params, count CountFunc, fetch FetchFunc[T]) (*Page[T], error) {
	perPage := NormalizePerPage(params.PerPage)

	total, err := count()
	if err != nil {
		return nil, fmt.Errorf("pagination count error: %w", err)
	}

	numPages := NumPages(int(total), perPage)
	number := Resolve(params.Page, numPages)

	var items []T
	if total > 0 {
		items, err = fetch((number-1)*perPage, perPage)
		if err != nil {
			return nil, fmt.Errorf("pagination fetch error: %w", err)
		}
	}
	if len(items) > perPage {
		items = items[:perPage]
	}
	if items == nil {
		items = make([]T, 0)
	}

	return &Page[T]{
		Items:    items,
		Number:   number,
		PerPage:  perPage,
		Total:    int(total),
		NumPages: numPages,
	}, nil
}

// PaginateSlice pages an in-memory, already ordered slice
func PaginateSlice[T any](items []T, params Params) *Page[T] {
	page, _ := Paginate(params,
		func() (int64, error) { return int64(len(items)), nil },
		func(offset, limit int) ([]T, error) {
			end := min(offset+limit, len(items))
			return items[offset:end], nil
		},
	)
	return page
}

// HasNext reports whether a page follows this one
func (p *Page[T]) HasNext() bool {
	return p.Number < p.NumPages
}

// HasPrevious reports whether a page precedes this one
func (p *Page[T]) HasPrevious() bool {
	return p.Number > 1
}

// HasOtherPages reports whether the collection spans more than one page
func (p *Page[T]) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

// NextPageNumber returns the number of the next page, or the current one on the last page
func (p *Page[T]) NextPageNumber() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.Number
}

// PreviousPageNumber returns the number of the previous page, or 1 on the first page
func (p *Page[T]) PreviousPageNumber() int {
	if p.HasPrevious() {
		return p.Number - 1
	}
	return 1
}

// PageRange returns the page numbers 1..NumPages
func (p *Page[T]) PageRange() []int {
	r := make([]int, p.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}

// StartIndex returns the 1-based index of the first item on the page, 0 when empty
func (p *Page[T]) StartIndex() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Number-1)*p.PerPage + 1
}

// EndIndex returns the 1-based index of the last item on the page
func (p *Page[T]) EndIndex() int {
	if p.Number == p.NumPages {
		return p.Total
	}
	return p.Number * p.PerPage
}
