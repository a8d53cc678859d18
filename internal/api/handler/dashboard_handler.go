package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/service"
)

// DashboardService loads and holds the platform aggregates.
type DashboardService interface {
	FetchStats(ctx context.Context) error
	View() service.DashboardView
}

type DashboardHandler struct {
	dashboard DashboardService
}

func NewDashboardHandler(dashboard DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats reloads the dashboard aggregates.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  service.DashboardView
// @Failure      401  {object}  map[string]any
// @Failure      502  {object}  map[string]any
// @Router       /console/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	if err := h.dashboard.FetchStats(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dashboard.View())
}
