package console

// ListState holds what a list view shows: the last fetched rows plus the
// search and pagination controls applied to them.
type ListState[R Row] struct {
	rows         []R
	page         int
	rowsPerPage  int
	filterTerm   string
	filterColumn string
}

func NewListState[R Row](rowsPerPage int) *ListState[R] {
	if rowsPerPage <= 0 {
		rowsPerPage = DefaultRowsPerPage
	}
	return &ListState[R]{rows: []R{}, rowsPerPage: rowsPerPage, filterColumn: ColumnName}
}

// SetRows replaces the rows with the result of a fetch.
func (s *ListState[R]) SetRows(rows []R) {
	if rows == nil {
		rows = []R{}
	}
	s.rows = rows
}

func (s *ListState[R]) SetFilter(column, term string) {
	if column != "" {
		s.filterColumn = column
	}
	s.filterTerm = term
}

func (s *ListState[R]) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	s.page = page
}

// SetRowsPerPage changes the page size without touching the page index.
func (s *ListState[R]) SetRowsPerPage(n int) {
	if n <= 0 {
		n = DefaultRowsPerPage
	}
	s.rowsPerPage = n
}

func (s *ListState[R]) Rows() []R { return s.rows }
func (s *ListState[R]) Page() int { return s.page }
func (s *ListState[R]) RowsPerPage() int { return s.rowsPerPage }
func (s *ListState[R]) FilterTerm() string { return s.filterTerm }
func (s *ListState[R]) FilterColumn() string { return s.filterColumn }

func (s *ListState[R]) Filtered() []R {
	return Filter(s.rows, s.filterColumn, s.filterTerm)
}

// Visible is the page of filtered rows currently on screen.
func (s *ListState[R]) Visible() []R {
	return Page(s.Filtered(), s.page, s.rowsPerPage)
}

func (s *ListState[R]) PageCount() int {
	return PageCount(len(s.Filtered()), s.rowsPerPage)
}

// Select returns the items whose index is the ID of a visible row.
func Select[T any, R Row](items []T, rows []R, id func(R) int) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if i := id(r); i >= 0 && i < len(items) {
			out = append(out, items[i])
		}
	}
	return out
}
