package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/pagination"
	"github.com/bakery-saas/superadmin-console/internal/core/service"
)

// TenantService is the tenant store as the tenants screen uses it.
type TenantService interface {
	CreateTenant(ctx context.Context, in domain.CreateTenantInput) error
	UpdateTenant(ctx context.Context, id string, in domain.UpdateTenantInput) error
	SetTenantStatus(ctx context.Context, id string, status domain.TenantStatus) error
	DeleteTenant(ctx context.Context, id string) error
	View() service.ListView[domain.Tenant]
}

// TenantHandler serves the tenants screen.
type TenantHandler struct {
	tenants TenantService
	screen  screen[domain.Tenant]
}

func NewTenantHandler(tenants TenantService, table *pagination.Controller) *TenantHandler {
	return &TenantHandler{
		tenants: tenants,
		screen: screen[domain.Tenant]{
			table: table,
			items: func() []domain.Tenant { return tenants.View().Items },
		},
	}
}

type renameTenantRequest struct {
	Name *string `json:"name"`
}

type tenantStatusRequest struct {
	Status domain.TenantStatus `json:"status"`
}

// List loads the tenants screen with its current query.
//
// @Summary      Tenants screen
// @Tags         tenants
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /console/tenants [get]
func (h *TenantHandler) List(c echo.Context) error {
	return h.screen.load(c)
}

// Search updates the search box. The list refreshes once typing settles.
//
// @Summary      Type into the tenant search box
// @Tags         tenants
// @Accept       json
// @Param        body  body  searchRequest  true  "Raw search text"
// @Success      202
// @Router       /console/tenants/search [put]
func (h *TenantHandler) Search(c echo.Context) error {
	return h.screen.search(c)
}

// Table applies a paging or sorting change.
//
// @Summary      Page or sort the tenant table
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        body  body      tableRequest  true  "Table change event"
// @Success      200   {object}  map[string]any
// @Router       /console/tenants/table [post]
func (h *TenantHandler) Table(c echo.Context) error {
	return h.screen.change(c)
}

// Create adds a shop owned by an existing user.
//
// @Summary      Create tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateTenantInput  true  "Shop name and owner"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Router       /console/tenants [post]
func (h *TenantHandler) Create(c echo.Context) error {
	var req domain.CreateTenantInput
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.tenants.CreateTenant(c.Request().Context(), req); err != nil {
		return err
	}
	return h.screen.render(c, http.StatusCreated)
}

// Rename changes a shop's name.
//
// @Summary      Rename tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Tenant ID"
// @Param        body  body      renameTenantRequest  true  "New name"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /console/tenants/{id} [patch]
func (h *TenantHandler) Rename(c echo.Context) error {
	var req renameTenantRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Name == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	in := domain.UpdateTenantInput{Name: req.Name}
	if err := h.tenants.UpdateTenant(c.Request().Context(), c.Param("id"), in); err != nil {
		return err
	}
	return h.screen.render(c, http.StatusOK)
}

// SetStatus activates or deactivates a shop.
//
// @Summary      Set tenant status
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Tenant ID"
// @Param        body  body      tenantStatusRequest  true  "ACTIVE or INACTIVE"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Router       /console/tenants/{id}/status [patch]
func (h *TenantHandler) SetStatus(c echo.Context) error {
	var req tenantStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.tenants.SetTenantStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return err
	}
	return h.screen.render(c, http.StatusOK)
}

// Delete removes a shop.
//
// @Summary      Delete tenant
// @Tags         tenants
// @Produce      json
// @Param        id   path      string  true  "Tenant ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /console/tenants/{id} [delete]
func (h *TenantHandler) Delete(c echo.Context) error {
	if err := h.tenants.DeleteTenant(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return h.screen.render(c, http.StatusOK)
}
