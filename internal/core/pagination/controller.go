// Package pagination turns list-screen interactions (typing in a search
// box, paging, sorting a column) into list queries for a store.
package pagination

import (
	"context"
	"sync"
	"time"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// FetchFunc refreshes a store for q. Stores swallow read errors, so there
// is nothing to return.
type FetchFunc func(ctx context.Context, q domain.ListQuery)

// Source exposes the store state the table needs.
type Source interface {
	Loading() bool
	Total() int
}

// SortOrder is the table widget's column sort order.
type SortOrder string

const (
	SortAscend  SortOrder = "ascend"
	SortDescend SortOrder = "descend"
)

// PaginationChange is the pagination half of a table change event.
type PaginationChange struct {
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
}

// SortChange is the sorter half of a table change event. Multiple is set
// when the widget reports several sorted columns at once.
type SortChange struct {
	Field    string    `json:"field"`
	Order    SortOrder `json:"order"`
	Multiple bool      `json:"multiple"`
}

// Pagination is the pagination state handed back to the table.
type Pagination struct {
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// TableProps bundles what a table widget needs to render.
type TableProps struct {
	Loading    bool       `json:"loading"`
	Pagination Pagination `json:"pagination"`
	SortBy     string     `json:"sortBy,omitempty"`
}

// Option customises a Controller.
type Option func(*Controller)

// WithDebounce sets the search settle time.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// WithAfterFunc replaces the timer source, mainly for tests.
func WithAfterFunc(f AfterFunc) Option {
	return func(c *Controller) { c.after = f }
}

// Controller owns the search, page and sort state of one list screen and
// calls its fetch function whenever that state changes.
type Controller struct {
	ctx   context.Context
	fetch FetchFunc
	src   Source

	delay     time.Duration
	after     AfterFunc
	debouncer *Debouncer

	mu         sync.Mutex
	searchText string
	debounced  string
	page       int
	pageSize   int
	sort       *domain.Sort
}

// New returns a controller at page 1 with 10 rows and no filter. ctx
// bounds every fetch the controller issues, including debounced ones.
func New(ctx context.Context, fetch FetchFunc, src Source, opts ...Option) *Controller {
	c := &Controller{
		ctx:      ctx,
		fetch:    fetch,
		src:      src,
		delay:    DefaultDebounce,
		page:     domain.DefaultPage,
		pageSize: domain.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.debouncer = NewDebouncer(c.delay, c.after)
	return c
}

// Start issues the initial fetch for the default state.
func (c *Controller) Start() {
	c.fetch(c.ctx, c.Query())
}

// Refresh re-issues the fetch for the current state.
func (c *Controller) Refresh() {
	c.fetch(c.ctx, c.Query())
}

// SearchText returns the raw, not yet settled, search input.
func (c *Controller) SearchText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchText
}

// SetSearchText records keystroke-level input. The fetch happens once the
// input has been stable for the debounce window, and only if the settled
// value differs from the previous one.
func (c *Controller) SetSearchText(text string) {
	c.mu.Lock()
	c.searchText = text
	c.mu.Unlock()

	c.debouncer.Trigger(c.settleSearch)
}

func (c *Controller) settleSearch() {
	c.mu.Lock()
	if c.searchText == c.debounced {
		c.mu.Unlock()
		return
	}
	c.debounced = c.searchText
	q := c.queryLocked()
	c.mu.Unlock()

	c.fetch(c.ctx, q)
}

// HandleTableChange applies a table change event and fetches once. The
// page reported by the widget is kept as-is, also when the page size
// changed. A multi-column sort clears the sort.
func (c *Controller) HandleTableChange(p PaginationChange, s SortChange) {
	c.mu.Lock()
	c.page = p.Current
	if c.page < 1 {
		c.page = domain.DefaultPage
	}
	c.pageSize = p.PageSize
	if c.pageSize < 1 {
		c.pageSize = domain.DefaultPageSize
	}
	c.sort = sortFromChange(s)
	q := c.queryLocked()
	c.mu.Unlock()

	c.fetch(c.ctx, q)
}

// Query returns the query the controller would issue now.
func (c *Controller) Query() domain.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queryLocked()
}

// TableProps returns loading, pagination and sort for the table widget.
func (c *Controller) TableProps() TableProps {
	q := c.Query()
	return TableProps{
		Loading: c.src.Loading(),
		Pagination: Pagination{
			Current:  q.Page,
			PageSize: q.PageSize,
			Total:    c.src.Total(),
		},
		SortBy: q.SortBy(),
	}
}

// Close drops any pending debounced fetch.
func (c *Controller) Close() {
	c.debouncer.Stop()
}

func (c *Controller) queryLocked() domain.ListQuery {
	q := domain.ListQuery{
		Page:     c.page,
		PageSize: c.pageSize,
		Search:   c.debounced,
	}
	if c.sort != nil {
		s := *c.sort
		q.Sort = &s
	}
	return q
}

func sortFromChange(s SortChange) *domain.Sort {
	if s.Multiple || s.Field == "" {
		return nil
	}
	switch s.Order {
	case SortAscend:
		return &domain.Sort{Field: s.Field, Direction: domain.SortAscending}
	case SortDescend:
		return &domain.Sort{Field: s.Field, Direction: domain.SortDescending}
	}
	return nil
}
