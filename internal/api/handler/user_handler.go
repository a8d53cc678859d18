package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/pagination"
	"github.com/bakery-saas/superadmin-console/internal/core/service"
)

// UserService is the user store as the users screen uses it.
type UserService interface {
	FetchAllUsers(ctx context.Context)
	CreateUser(ctx context.Context, in domain.CreateUserInput) error
	UpdateUser(ctx context.Context, id string, in domain.UpdateUserInput) error
	View() service.ListView[domain.User]
	AllUsers() []domain.User
	AllUsersLoading() bool
}

// UserHandler serves the users screen and the owner picker.
type UserHandler struct {
	users  UserService
	screen screen[domain.User]
}

func NewUserHandler(users UserService, table *pagination.Controller) *UserHandler {
	return &UserHandler{
		users: users,
		screen: screen[domain.User]{
			table: table,
			items: func() []domain.User { return users.View().Items },
		},
	}
}

type selectionResponse struct {
	Items   []domain.User `json:"items"`
	Loading bool          `json:"loading"`
}

// List loads the users screen with its current query.
//
// @Summary      Users screen
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /console/users [get]
func (h *UserHandler) List(c echo.Context) error {
	return h.screen.load(c)
}

// @Summary      Type into the user search box
// @Tags         users
// @Accept       json
// @Param        body  body  searchRequest  true  "Raw search text"
// @Success      202
// @Router       /console/users/search [put]
func (h *UserHandler) Search(c echo.Context) error {
	return h.screen.search(c)
}

// @Summary      Page or sort the user table
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      tableRequest  true  "Table change event"
// @Success      200   {object}  map[string]any
// @Router       /console/users/table [post]
func (h *UserHandler) Table(c echo.Context) error {
	return h.screen.change(c)
}

// All reloads the full user list used to pick tenant owners.
//
// @Summary      All users
// @Tags         users
// @Produce      json
// @Success      200  {object}  selectionResponse
// @Router       /console/users/all [get]
func (h *UserHandler) All(c echo.Context) error {
	h.users.FetchAllUsers(c.Request().Context())
	return c.JSON(http.StatusOK, selectionResponse{
		Items:   h.users.AllUsers(),
		Loading: h.users.AllUsersLoading(),
	})
}

// Create adds a standalone account.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateUserInput  true  "Name, phone and password"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /console/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req domain.CreateUserInput
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.users.CreateUser(c.Request().Context(), req); err != nil {
		return err
	}
	return h.screen.render(c, http.StatusCreated)
}

// Update changes name, password or status. Omitted fields stay as they are.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "User ID"
// @Param        body  body      domain.UpdateUserInput  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Router       /console/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req domain.UpdateUserInput
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.users.UpdateUser(c.Request().Context(), c.Param("id"), req); err != nil {
		return err
	}
	return h.screen.render(c, http.StatusOK)
}
