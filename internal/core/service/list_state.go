package service

import (
	"sync"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// ListView is a read-only copy of a store's current page.
type ListView[T any] struct {
	domain.ListResult[T]
	Loading bool `json:"loading"`
}

// listState holds one page of a list resource. Every fetch takes a ticket
// from begin; only the holder of the newest ticket may write the page, so
// a slow response to an older request can never overwrite a newer one.
type listState[T any] struct {
	mu      sync.Mutex
	page    domain.ListResult[T]
	loading bool
	issued  uint64
}

func newListState[T any]() *listState[T] {
	return &listState[T]{
		page: domain.ListResult[T]{
			Items:    []T{},
			Page:     domain.DefaultPage,
			PageSize: domain.DefaultPageSize,
		},
	}
}

func (l *listState[T]) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	l.loading = true
	return l.issued
}

// finish settles ticket seq. res may be nil when the fetch failed. It
// reports false when seq was superseded and the result was dropped.
func (l *listState[T]) finish(seq uint64, res *domain.ListResult[T]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.issued {
		return false
	}
	if res != nil {
		l.page = *res
		if l.page.Items == nil {
			l.page.Items = []T{}
		}
	}
	l.loading = false
	return true
}

// position returns the last-known page and page size.
func (l *listState[T]) position() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page.Page, l.page.PageSize
}

func (l *listState[T]) view() ListView[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]T, len(l.page.Items))
	copy(items, l.page.Items)
	out := ListView[T]{ListResult: l.page, Loading: l.loading}
	out.Items = items
	return out
}

func (l *listState[T]) isLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *listState[T]) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page.Total
}
