package stubbackend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

// errorBody mirrors the platform's error envelope. Message is a string, or
// a list of strings for validation failures.
type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Error      string `json:"error"`
}

func newErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorBody{StatusCode: code, Message: msg, Error: http.StatusText(code)})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *validation.Error
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Problems
	}

	switch {
	case errors.Is(err, errNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errPhoneTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errOwnerNotFound), errors.Is(err, errBadSortField), errors.Is(err, domain.ErrInvalidQuery):
		return http.StatusBadRequest, err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")
	return http.StatusInternalServerError, "internal server error"
}
