package console

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// The visible slice is rows[page*per : min(n, page*per+per)] for every combination.
func TestPageSliceProperty(t *testing.T) {
	for n := 0; n <= 13; n++ {
		rows := ints(n)
		for per := 1; per <= 7; per++ {
			for page := 0; page <= 6; page++ {
				got := Page(rows, page, per)
				start := page * per
				if start >= n {
					assert.Empty(t, got, "n=%d page=%d per=%d", n, page, per)
					continue
				}
				end := min(n, start+per)
				assert.Equal(t, rows[start:end], got, "n=%d page=%d per=%d", n, page, per)
			}
		}
	}
}

func TestPageDefaults(t *testing.T) {
	rows := ints(12)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Page(rows, 0, 0))
	assert.Equal(t, []int{0, 1, 2}, Page(rows, -3, 3))
}

func TestPageHugeIndexes(t *testing.T) {
	rows := ints(12)
	assert.Empty(t, Page(rows, math.MaxInt, 2))
	assert.Empty(t, Page(rows, math.MaxInt/2+1, 2))
	assert.Equal(t, rows, Page(rows, 0, math.MaxInt))
	assert.Empty(t, Page(rows, 1, math.MaxInt))
	assert.Equal(t, 1, PageCount(12, math.MaxInt))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 5))
	assert.Equal(t, 1, PageCount(5, 5))
	assert.Equal(t, 2, PageCount(6, 5))
	assert.Equal(t, 3, PageCount(11, 0))
}

// Growing the page size does not pull the page index back into range.
func TestListStateStalePageIsEmpty(t *testing.T) {
	state := NewListState[ExchangeRow](5)
	state.SetRows(sampleExchanges())
	state.SetRowsPerPage(1)
	state.SetPage(3)
	assert.Len(t, state.Visible(), 1)
	assert.Equal(t, "billing", state.Visible()[0].Name)

	state.SetRowsPerPage(10)
	assert.Equal(t, 3, state.Page())
	assert.Empty(t, state.Visible())
	assert.Equal(t, 1, state.PageCount())
}

func TestListStateFilterAndPage(t *testing.T) {
	state := NewListState[ExchangeRow](0)
	assert.Equal(t, DefaultRowsPerPage, state.RowsPerPage())
	assert.Equal(t, ColumnName, state.FilterColumn())
	assert.Empty(t, state.Visible())

	state.SetRows(sampleExchanges())
	state.SetFilter("", "amq")
	assert.Equal(t, ColumnName, state.FilterColumn())
	assert.Len(t, state.Filtered(), 2)

	state.SetFilter(ColumnType, "direct")
	state.SetRowsPerPage(1)
	state.SetPage(1)
	visible := state.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "billing", visible[0].Name)
	assert.Equal(t, 2, state.PageCount())

	state.SetRows(nil)
	assert.NotNil(t, state.Rows())
	assert.Empty(t, state.Visible())
}
