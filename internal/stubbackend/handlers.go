package stubbackend

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

type handlers struct {
	store  *store
	tokens issuer
}

type loginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type profileResponse struct {
	ID    string       `json:"id"`
	Phone string       `json:"phone"`
	Name  *string      `json:"name"`
	Role  *domain.Role `json:"role"`
}

type statusRequest struct {
	Status domain.TenantStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

type pageMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	Limit    int `json:"limit"`
	LastPage int `json:"lastPage"`
}

type pageResponse[T any] struct {
	Data []T      `json:"data"`
	Meta pageMeta `json:"meta"`
}

type tenantRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type userTenant struct {
	Role   domain.Role `json:"role"`
	Tenant tenantRef   `json:"tenant"`
}

// userView is the platform's user shape; memberships are nested.
type userView struct {
	ID        string            `json:"id"`
	Name      *string           `json:"name"`
	Phone     string            `json:"phone"`
	Role      *domain.Role      `json:"role"`
	Status    domain.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	Tenants   []userTenant      `json:"tenants"`
}

func toUserView(u domain.User) userView {
	v := userView{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		Tenants:   make([]userTenant, 0, len(u.Memberships)),
	}
	for _, m := range u.Memberships {
		v.Tenants = append(v.Tenants, userTenant{Role: m.Role, Tenant: tenantRef{ID: m.TenantID, Name: m.TenantName}})
	}
	return v
}

func page[T any](res domain.ListResult[T]) pageResponse[T] {
	last := 0
	if res.PageSize > 0 && res.Total > 0 {
		last = (res.Total-1)/res.PageSize + 1
	}
	return pageResponse[T]{
		Data: res.Items,
		Meta: pageMeta{Total: res.Total, Page: res.Page, Limit: res.PageSize, LastPage: last},
	}
}

func bindValid(c echo.Context, v any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(v)
}

// listQuery reads page, limit, search and sortBy.
func listQuery(c echo.Context) (domain.ListQuery, error) {
	q := domain.ListQuery{Search: c.QueryParam("search")}
	for name, dst := range map[string]*int{"page": &q.Page, "limit": &q.PageSize} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidQuery, name)
		}
		*dst = n
	}
	sort, err := domain.ParseSort(c.QueryParam("sortBy"))
	if err != nil {
		return q, err
	}
	q.Sort = sort
	return q.Normalize(), nil
}

func (h *handlers) login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	u, ok := h.store.userByPhone(strings.TrimSpace(req.Phone))
	if !ok || !checkPassword(u.passwordHash, req.Password) || u.status != domain.UserActive {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid phone number or password")
	}
	token, err := h.tokens.issue(u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}

func (h *handlers) profile(c echo.Context) error {
	id, _ := c.Get(ctxUserID).(string)
	u, ok := h.store.userByID(id)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
	}
	return c.JSON(http.StatusOK, profileResponse{ID: u.id, Phone: u.phone, Name: u.name, Role: u.role})
}

func (h *handlers) listTenants(c echo.Context) error {
	q, err := listQuery(c)
	if err != nil {
		return err
	}
	res, err := h.store.listTenants(q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page(res))
}

func (h *handlers) createTenant(c echo.Context) error {
	var req domain.CreateTenantInput
	if err := bindValid(c, &req); err != nil {
		return err
	}
	t, err := h.store.createTenant(strings.TrimSpace(req.Name), req.OwnerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *handlers) updateTenant(c echo.Context) error {
	var req domain.UpdateTenantInput
	if err := bindValid(c, &req); err != nil {
		return err
	}
	var (
		t   domain.Tenant
		err error
	)
	if req.Name == nil {
		t, err = h.store.tenant(c.Param("id"))
	} else {
		t, err = h.store.renameTenant(c.Param("id"), strings.TrimSpace(*req.Name))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

func (h *handlers) setTenantStatus(c echo.Context) error {
	var req statusRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	t, err := h.store.setTenantStatus(c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

func (h *handlers) deleteTenant(c echo.Context) error {
	if err := h.store.deleteTenant(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *handlers) listUsers(c echo.Context) error {
	q, err := listQuery(c)
	if err != nil {
		return err
	}
	res, err := h.store.listUsers(q)
	if err != nil {
		return err
	}
	out := domain.ListResult[userView]{Items: make([]userView, len(res.Items)), Total: res.Total, Page: res.Page, PageSize: res.PageSize}
	for i, u := range res.Items {
		out.Items[i] = toUserView(u)
	}
	return c.JSON(http.StatusOK, page(out))
}

func (h *handlers) createUser(c echo.Context) error {
	var req domain.CreateUserInput
	if err := bindValid(c, &req); err != nil {
		return err
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(req.Name)
	u, err := h.store.createUser(&name, strings.TrimSpace(req.Phone), hash, nil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserView(u))
}

func (h *handlers) updateUser(c echo.Context) error {
	var req domain.UpdateUserInput
	if err := bindValid(c, &req); err != nil {
		return err
	}
	patch := userPatch{name: req.Name, status: req.Status}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return err
		}
		patch.passwordHash = &hash
	}
	u, err := h.store.updateUser(c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserView(u))
}

func (h *handlers) dashboardStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.stats())
}

// batchImport imports every valid recipe whose name the tenant does not
// have yet. Invalid and existing recipes are skipped with a reason.
func (h *handlers) batchImport(c echo.Context) error {
	var records []domain.RecipeImportRecord
	if err := (&echo.DefaultBinder{}).BindBody(c, &records); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "body must be an array of recipes")
	}
	if len(records) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no recipes provided")
	}

	var skipped []string
	names := make([]string, 0, len(records))
	for _, rec := range records {
		if err := validation.Struct(rec); err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", recipeLabel(rec), err))
			continue
		}
		names = append(names, rec.Name)
	}

	imported, existing, err := h.store.importRecipes(c.Param("tenantId"), names)
	if err != nil {
		return err
	}
	for _, n := range existing {
		skipped = append(skipped, fmt.Sprintf("%s: a recipe with this name already exists", n))
	}
	if skipped == nil {
		skipped = []string{}
	}

	return c.JSON(http.StatusCreated, domain.ImportOutcome{
		TotalSubmitted: len(records),
		ImportedCount:  len(imported),
		SkippedCount:   len(skipped),
		SkippedReasons: skipped,
	})
}

func recipeLabel(rec domain.RecipeImportRecord) string {
	if rec.Name != "" {
		return rec.Name
	}
	return "(unnamed recipe)"
}
