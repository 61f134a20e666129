package util

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageQuery is the parsed page/size/sortBy/direction query surface every
// list endpoint accepts.
type PageQuery struct {
	Page   int
	Size   int
	SortBy string
	Desc   bool
}

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Calculate clamps page/size and returns the DB offset and limit.
func Calculate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return (page - 1) * size, size
}

// ParsePage reads pagination params. sortBy is checked against the
// caller's column whitelist; anything else falls back to defaultSort.
func ParsePage(page, size, sortBy, direction, defaultSort string, sortable ...string) PageQuery {
	q := PageQuery{
		Page:   ParseIntDefault(page, 1),
		Size:   ParseIntDefault(size, DefaultPageSize),
		SortBy: defaultSort,
		Desc:   strings.EqualFold(direction, "desc"),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	if q.Size > MaxPageSize {
		q.Size = MaxPageSize
	}
	for _, col := range sortable {
		if sortBy == col {
			q.SortBy = col
			break
		}
	}
	return q
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

// Order renders the ORDER BY clause; SortBy is whitelisted so this is safe
// to interpolate.
func (q PageQuery) Order() string {
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", q.SortBy, dir)
}

// PageMeta is the meta block of paged responses.
type PageMeta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

func NewPageMeta(q PageQuery, total int64) PageMeta {
	return PageMeta{
		Page:       q.Page,
		Size:       q.Size,
		Total:      total,
		TotalPages: (total + int64(q.Size) - 1) / int64(q.Size),
		HasPrev:    q.Page > 1,
		HasNext:    int64(q.Offset()+q.Size) < total,
	}
}
