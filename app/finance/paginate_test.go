package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 10, 35)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNextPage)
	assert.True(t, pg.HasPrevPage)

	start, end := pg.Bounds()
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)
}

func TestPaginationDefaults(t *testing.T) {
	pg := NewPagination(0, 0, 5)
	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, DefaultPageLimit, pg.Limit)
	assert.False(t, pg.HasPrevPage)
}

func TestPaginationHasNextPageBoundary(t *testing.T) {
	// Exactly full last page: page*limit == total means no next page.
	pg := NewPagination(3, 10, 30)
	assert.False(t, pg.HasNextPage)
	assert.Equal(t, 3, pg.TotalPages)
}

func TestPaginationBoundsPastEnd(t *testing.T) {
	pg := NewPagination(9, 10, 15)
	start, end := pg.Bounds()
	assert.Equal(t, 15, start)
	assert.Equal(t, 15, end)
}

func TestReceiptNumberFormat(t *testing.T) {
	n := GenerateReceiptNumber(date(2024, 3, 10))
	assert.Regexp(t, `^RCP-20240310-\d{5}$`, n)

	// Zero date falls back to the current day.
	assert.Regexp(t, `^RCP-\d{8}-\d{5}$`, GenerateReceiptNumber(time.Time{}))
}
