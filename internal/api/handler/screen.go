package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/pagination"
)

// screenResponse is what a list screen renders: the current page, the raw
// search box content and the table widget props.
type screenResponse[T any] struct {
	Items      []T                   `json:"items"`
	SearchText string                `json:"searchText"`
	Table      pagination.TableProps `json:"table"`
}

type searchRequest struct {
	Text string `json:"text"`
}

// tableRequest mirrors a table widget change event. When the widget sorts
// by several columns it reports them all in Sorts.
type tableRequest struct {
	Pagination pagination.PaginationChange `json:"pagination"`
	Sort       pagination.SortChange       `json:"sort"`
	Sorts      []pagination.SortChange     `json:"sorts,omitempty"`
}

func (r tableRequest) sortChange() pagination.SortChange {
	s := r.Sort
	if len(r.Sorts) > 1 {
		s.Multiple = true
	}
	return s
}

// screen binds a list controller to the store it feeds.
type screen[T any] struct {
	table *pagination.Controller
	items func() []T
}

func (s screen[T]) view() screenResponse[T] {
	return screenResponse[T]{
		Items:      s.items(),
		SearchText: s.table.SearchText(),
		Table:      s.table.TableProps(),
	}
}

func (s screen[T]) render(c echo.Context, status int) error {
	return c.JSON(status, s.view())
}

// load fetches the current query and renders the result.
func (s screen[T]) load(c echo.Context) error {
	s.table.Refresh()
	return s.render(c, http.StatusOK)
}

// search records raw input. The fetch happens once typing settles.
func (s screen[T]) search(c echo.Context) error {
	var req searchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	s.table.SetSearchText(req.Text)
	return c.JSON(http.StatusAccepted, map[string]string{"searchText": s.table.SearchText()})
}

func (s screen[T]) change(c echo.Context) error {
	var req tableRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	s.table.HandleTableChange(req.Pagination, req.sortChange())
	return s.render(c, http.StatusOK)
}
