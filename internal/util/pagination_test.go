package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	q := ParsePage("2", "25", "name", "desc", "id", "id", "name")
	require.Equal(t, 2, q.Page)
	require.Equal(t, 25, q.Size)
	require.Equal(t, "name", q.SortBy)
	require.True(t, q.Desc)
	require.Equal(t, 25, q.Offset())
	require.Equal(t, "name DESC", q.Order())
}

func TestParsePageDefaults(t *testing.T) {
	q := ParsePage("", "", "", "", "id", "id", "name")
	require.Equal(t, 1, q.Page)
	require.Equal(t, DefaultPageSize, q.Size)
	require.Equal(t, "id", q.SortBy)
	require.False(t, q.Desc)
	require.Equal(t, "id ASC", q.Order())
}

func TestParsePageRejectsUnknownColumn(t *testing.T) {
	q := ParsePage("1", "10", "password_hash; DROP TABLE users", "asc", "id", "id", "name")
	require.Equal(t, "id", q.SortBy)
}

func TestParsePageClamps(t *testing.T) {
	q := ParsePage("-3", "5000", "id", "asc", "id", "id")
	require.Equal(t, 1, q.Page)
	require.Equal(t, MaxPageSize, q.Size)

	q = ParsePage("1", "100", "id", "asc", "id", "id")
	require.Equal(t, MaxPageSize, q.Size)

	q = ParsePage("junk", "junk", "id", "asc", "id", "id")
	require.Equal(t, 1, q.Page)
	require.Equal(t, DefaultPageSize, q.Size)
}

func TestCalculate(t *testing.T) {
	offset, limit := Calculate(3, 20)
	require.Equal(t, 40, offset)
	require.Equal(t, 20, limit)

	offset, limit = Calculate(0, -1)
	require.Equal(t, 0, offset)
	require.Equal(t, DefaultPageSize, limit)

	_, limit = Calculate(1, 5000)
	require.Equal(t, MaxPageSize, limit)
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(PageQuery{Page: 2, Size: 10}, 35)
	require.EqualValues(t, 35, meta.Total)
	require.EqualValues(t, 4, meta.TotalPages)
	require.True(t, meta.HasPrev)
	require.True(t, meta.HasNext)

	meta = NewPageMeta(PageQuery{Page: 4, Size: 10}, 35)
	require.False(t, meta.HasNext)

	meta = NewPageMeta(PageQuery{Page: 1, Size: 10}, 0)
	require.Zero(t, meta.TotalPages)
	require.False(t, meta.HasPrev)
	require.False(t, meta.HasNext)
}
