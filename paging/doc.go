// Package paging splits an ordered collection into numbered pages.
//
// The requested page comes straight from the query string and is never an
// error: garbage resolves to the first page and numbers past the end resolve
// to the last page.
//
//	page, err := paging.Paginate(paging.Params{Page: c.Query("page"), PerPage: 10},
//	    func() (int64, error) { return repo.Count(ctx) },
//	    func(offset, limit int) ([]*Post, error) { return repo.List(ctx, offset, limit) },
//	)
package paging
