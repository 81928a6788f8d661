package console

import "strings"

// Matches reports whether row passes the search control.
// An empty term matches every row. So does a column the row does not know.
func Matches(row Row, column, term string) bool {
	if term == "" {
		return true
	}
	value, ok := row.Column(column)
	if !ok {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// Filter keeps the rows that match, preserving order.
func Filter[R Row](rows []R, column, term string) []R {
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		if Matches(r, column, term) {
			out = append(out, r)
		}
	}
	return out
}
