package handlers

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/console"
	"github.com/ottermq/mbconsole/internal/core/models"
	"github.com/ottermq/mbconsole/internal/persistdb"
)

var pageSizes = []int{5, 10, 25, 50}

// ParseListQuery reads q, column, page and size. Unparseable or negative values fall
// back to the first page and the default page size.
func ParseListQuery(c *fiber.Ctx, defaultSize int) models.ListQuery {
	q := models.ListQuery{
		Term:   c.Query("q"),
		Column: strings.TrimSpace(c.Query("column")),
		Page:   c.QueryInt("page", 0),
		Size:   c.QueryInt("size", defaultSize),
	}
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = defaultSize
	}
	if q.Size <= 0 {
		q.Size = console.DefaultRowsPerPage
	}
	return q
}

// NewListState loads rows into a list state and applies the query. A blank column
// selects the first of columns.
func NewListState[R console.Row](rows []R, q models.ListQuery, columns []string) *console.ListState[R] {
	state := console.NewListState[R](q.Size)
	state.SetRows(rows)
	column := q.Column
	if column == "" && len(columns) > 0 {
		column = columns[0]
	}
	state.SetFilter(column, q.Term)
	state.SetPage(q.Page)
	return state
}

// PageOf describes the window a list state shows.
func PageOf[R console.Row](state *console.ListState[R]) models.Page {
	return models.Page{
		Page:     state.Page(),
		Size:     state.RowsPerPage(),
		Total:    len(state.Rows()),
		Filtered: len(state.Filtered()),
		Pages:    state.PageCount(),
	}
}

// ListView is the template binding of a filtered, paginated table.
type ListView struct {
	Rows     any
	Columns  []string
	Column   string
	Term     string
	Page     int
	Size     int
	Sizes    []int
	Pages    int
	Filtered int
	Total    int
	PrevURL  string
	NextURL  string
}

func NewListView[R console.Row](path string, state *console.ListState[R], columns []string) ListView {
	p := PageOf(state)
	v := ListView{
		Rows:     state.Visible(),
		Columns:  columns,
		Column:   state.FilterColumn(),
		Term:     state.FilterTerm(),
		Page:     p.Page,
		Size:     p.Size,
		Sizes:    sizesWith(p.Size),
		Pages:    p.Pages,
		Filtered: p.Filtered,
		Total:    p.Total,
	}
	if p.Page > 0 {
		prev := p.Page - 1
		if prev >= p.Pages {
			prev = p.Pages - 1
		}
		v.PrevURL = pageURL(path, v.Term, v.Column, prev, p.Size)
	}
	if p.Page < p.Pages-1 {
		v.NextURL = pageURL(path, v.Term, v.Column, p.Page+1, p.Size)
	}
	return v
}

func pageURL(path, term, column string, page, size int) string {
	q := url.Values{}
	if term != "" {
		q.Set("q", term)
	}
	if column != "" {
		q.Set("column", column)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return path + "?" + q.Encode()
}

func sizesWith(size int) []int {
	for _, s := range pageSizes {
		if s == size {
			return pageSizes
		}
	}
	sizes := append([]int{size}, pageSizes...)
	sort.Ints(sizes)
	return sizes
}

// ActivityPage reads one page of the activity journal, newest first.
func ActivityPage(ctx context.Context, journal persistdb.Journal, q models.ListQuery) ([]persistdb.Activity, int, error) {
	total, err := journal.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	entries, err := journal.List(ctx, q.Size, q.Page*q.Size)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
