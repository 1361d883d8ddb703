package paging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		raw      string
		numPages int
		want     int
	}{
		{"", 3, 1},
		{"abc", 3, 1},
		{"2.5", 3, 1},
		{"0", 3, 1},
		{"-4", 3, 1},
		{"2", 3, 2},
		{" 3 ", 3, 3},
		{"99", 3, 3},
		{"5", 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.raw, tt.numPages), "Resolve(%q, %d)", tt.raw, tt.numPages)
	}
}

func TestNumPages(t *testing.T) {
	assert.Equal(t, 1, NumPages(0, 10))
	assert.Equal(t, 1, NumPages(10, 10))
	assert.Equal(t, 2, NumPages(11, 10))
	assert.Equal(t, 3, NumPages(21, 0))
}

func TestPaginateSlice(t *testing.T) {
	items := seq(23)

	first := PaginateSlice(items, Params{PerPage: 10})
	assert.Equal(t, seq(10), first.Items)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 3, first.NumPages)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())
	assert.Equal(t, 2, first.NextPageNumber())
	assert.Equal(t, []int{1, 2, 3}, first.PageRange())

	last := PaginateSlice(items, Params{Page: "3", PerPage: 10})
	assert.Equal(t, []int{21, 22, 23}, last.Items)
	assert.False(t, last.HasNext())
	assert.Equal(t, 2, last.PreviousPageNumber())
	assert.Equal(t, 21, last.StartIndex())
	assert.Equal(t, 23, last.EndIndex())

	clamped := PaginateSlice(items, Params{Page: "42", PerPage: 10})
	assert.Equal(t, 3, clamped.Number)
	assert.Equal(t, last.Items, clamped.Items)
}

func TestPaginateEmpty(t *testing.T) {
	page := PaginateSlice([]string{}, Params{Page: "7"})
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.False(t, page.HasOtherPages())
	assert.Equal(t, 0, page.StartIndex())
	assert.Equal(t, DefaultPerPage, page.PerPage)
}

func TestPaginateUsesOffsets(t *testing.T) {
	var gotOffset, gotLimit int
	page, err := Paginate(Params{Page: "2", PerPage: 5},
		func() (int64, error) { return 12, nil },
		func(offset, limit int) ([]int, error) {
			gotOffset, gotLimit = offset, limit
			return seq(12)[offset : offset+limit], nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 5, gotOffset)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, page.Items)
}

func TestPaginateErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Paginate(Params{},
		func() (int64, error) { return 0, boom },
		func(offset, limit int) ([]int, error) { return nil, nil },
	)
	assert.ErrorIs(t, err, boom)

	_, err = Paginate(Params{},
		func() (int64, error) { return 3, nil },
		func(offset, limit int) ([]int, error) { return nil, boom },
	)
	assert.ErrorIs(t, err, boom)
}
