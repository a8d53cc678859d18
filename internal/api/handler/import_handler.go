package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/service"
)

const (
	maxRecipeFileBytes = 10 << 20
	defaultHistorySize = 20
)

// Importer runs batch imports and lists earlier runs.
type Importer interface {
	Import(ctx context.Context, recipes []domain.RecipeImportRecord, targets []domain.ImportTarget) (*domain.ImportReport, error)
	Recent(ctx context.Context, limit int) ([]domain.ImportReport, error)
}

type ImportHandler struct {
	importer Importer
}

func NewImportHandler(importer Importer) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// importRequest is the JSON form of an import. Recipes holds the same
// document a recipe file would.
type importRequest struct {
	TenantIDs []string              `json:"tenantIds"`
	Tenants   []domain.ImportTarget `json:"tenants"`
	Recipes   json.RawMessage       `json:"recipes"`
}

// Import applies one recipe file to the selected tenants, one tenant at
// a time, and returns the combined report.
//
// @Summary      Batch import recipes
// @Tags         recipes
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        file       formData  file    false  "Recipe file (JSON)"
// @Param        tenantIds  formData  string  false  "Target tenant IDs, repeated or comma separated"
// @Success      200        {object}  domain.ImportReport
// @Failure      400        {object}  map[string]any
// @Router       /console/recipes/import [post]
func (h *ImportHandler) Import(c echo.Context) error {
	var (
		data    []byte
		targets []domain.ImportTarget
		err     error
	)

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		data, targets, err = readImportForm(c)
	} else {
		data, targets, err = readImportJSON(c)
	}
	if err != nil {
		return err
	}

	recipes, err := service.ParseRecipeFile(data)
	if err != nil {
		return err
	}

	report, err := h.importer.Import(c.Request().Context(), recipes, targets)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

func readImportForm(c echo.Context) ([]byte, []domain.ImportTarget, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open recipe file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxRecipeFileBytes+1))
	if err != nil {
		return nil, nil, fmt.Errorf("read recipe file: %w", err)
	}
	if len(data) > maxRecipeFileBytes {
		return nil, nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "recipe file is too large")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	return data, targetsFromIDs(form.Value["tenantIds"]), nil
}

func readImportJSON(c echo.Context) ([]byte, []domain.ImportTarget, error) {
	var req importRequest
	if err := bind(c, &req); err != nil {
		return nil, nil, err
	}
	targets := req.Tenants
	if len(targets) == 0 {
		targets = targetsFromIDs(req.TenantIDs)
	}
	return req.Recipes, targets, nil
}

// targetsFromIDs accepts ids as repeated values, comma separated, or both.
func targetsFromIDs(values []string) []domain.ImportTarget {
	var out []domain.ImportTarget
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, domain.ImportTarget{TenantID: id})
			}
		}
	}
	return out
}

// History lists the most recent import reports.
//
// @Summary      Import history
// @Tags         recipes
// @Produce      json
// @Param        limit  query     int  false  "Maximum reports"  default(20)
// @Success      200    {array}   domain.ImportReport
// @Failure      400    {object}  map[string]any
// @Router       /console/recipes/imports [get]
func (h *ImportHandler) History(c echo.Context) error {
	limit := defaultHistorySize
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: limit must be a positive integer", domain.ErrInvalidQuery)
		}
		limit = n
	}

	reports, err := h.importer.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}
