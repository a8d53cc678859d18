package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bind decodes the request body into v. Field rules are checked by the
// stores, so only structural problems surface here.
func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}

// bindValid decodes v and runs the registered echo validator on it.
func bindValid(c echo.Context, v any) error {
	if err := bind(c, v); err != nil {
		return err
	}
	return c.Validate(v)
}
