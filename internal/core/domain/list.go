package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// SortDirection is the direction half of a sortBy expression.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Sort is a single-column ordering.
type Sort struct {
	Field     string
	Direction SortDirection
}

// String encodes the sort as "<field>:<asc|desc>".
func (s Sort) String() string {
	return s.Field + ":" + string(s.Direction)
}

// ParseSort decodes a "<field>:<asc|desc>" expression. An empty string
// yields a nil sort.
func ParseSort(expr string) (*Sort, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	field, dir, ok := strings.Cut(expr, ":")
	if !ok || field == "" {
		return nil, fmt.Errorf("%w: sort %q must look like field:asc", ErrInvalidQuery, expr)
	}
	switch SortDirection(strings.ToLower(dir)) {
	case SortAscending:
		return &Sort{Field: field, Direction: SortAscending}, nil
	case SortDescending:
		return &Sort{Field: field, Direction: SortDescending}, nil
	}
	return nil, fmt.Errorf("%w: sort direction %q must be asc or desc", ErrInvalidQuery, dir)
}

// ListQuery describes one page request against a list resource.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
	Sort     *Sort
}

// Normalize fills in defaults for non-positive page values. Whitespace-only
// search text means "no filter"; any other text is sent unchanged.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if strings.TrimSpace(q.Search) == "" {
		q.Search = ""
	}
	return q
}

// SortBy returns the wire form of the sort, or "" when unsorted.
func (q ListQuery) SortBy() string {
	if q.Sort == nil || q.Sort.Field == "" {
		return ""
	}
	return q.Sort.String()
}

// ListResult is one page of a list resource.
type ListResult[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}
