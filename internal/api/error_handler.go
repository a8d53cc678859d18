package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/service"
	"github.com/bakery-saas/superadmin-console/internal/infrastructure/backend"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

// errorResponse is the error envelope of every console endpoint.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// NewHTTPErrorHandler maps domain, validation and backend errors to status
// codes and renders them as errorResponse. Unexpected errors are logged and
// hidden behind a generic message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var ve *validation.Error
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Error: "validation failed", Details: ve.Problems}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()}
	case errors.Is(err, domain.ErrNotSuperAdmin):
		return http.StatusForbidden, errorResponse{Error: domain.ErrNotSuperAdmin.Error()}
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrStatsUnavailable):
		return http.StatusBadGateway, errorResponse{Error: domain.ErrStatsUnavailable.Error()}
	case errors.Is(err, domain.ErrInvalidRecipeFile):
		return http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidRecipeFile.Error(), Details: service.RecipeProblems(err)}
	case errors.Is(err, domain.ErrMalformedRecipeFile),
		errors.Is(err, domain.ErrNoRecipes),
		errors.Is(err, domain.ErrNoTargetTenants),
		errors.Is(err, domain.ErrDuplicateTenant),
		errors.Is(err, domain.ErrInvalidQuery):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errorResponse{Error: "backend did not answer in time"}
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.Status
		if code >= http.StatusInternalServerError {
			code = http.StatusBadGateway
		}
		return code, errorResponse{Error: apiErr.Error(), Details: apiErr.Details}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
