package console

const DefaultRowsPerPage = 5

// Page returns rows[page*rowsPerPage : min(n, page*rowsPerPage+rowsPerPage)].
// The page index is never clamped: a page past the end yields an empty slice.
// A non-positive rowsPerPage uses DefaultRowsPerPage and a negative page reads as 0.
func Page[R any](rows []R, page, rowsPerPage int) []R {
	if rowsPerPage <= 0 {
		rowsPerPage = DefaultRowsPerPage
	}
	if page < 0 {
		page = 0
	}
	// compare page indexes first so page*rowsPerPage cannot overflow
	if page >= PageCount(len(rows), rowsPerPage) {
		return []R{}
	}
	start := page * rowsPerPage
	end := min(len(rows), start+rowsPerPage)
	return rows[start:end]
}

// PageCount is the number of pages needed to show n rows.
func PageCount(n, rowsPerPage int) int {
	if rowsPerPage <= 0 {
		rowsPerPage = DefaultRowsPerPage
	}
	if n <= 0 {
		return 0
	}
	return (n-1)/rowsPerPage + 1
}
