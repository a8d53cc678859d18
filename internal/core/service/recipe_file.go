package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

// ParseRecipeFile decodes a batch-import file: either a JSON array of
// recipe families or a single family object. Every record is checked
// against the import schema and all problems are reported together.
func ParseRecipeFile(data []byte) ([]domain.RecipeImportRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrMalformedRecipeFile)
	}

	var records []domain.RecipeImportRecord
	if trimmed[0] == '{' {
		var one domain.RecipeImportRecord
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecipeFile, err)
		}
		records = []domain.RecipeImportRecord{one}
	} else if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecipeFile, err)
	}

	if len(records) == 0 {
		return nil, domain.ErrNoRecipes
	}
	if err := ValidateRecipes(records); err != nil {
		return nil, err
	}
	return records, nil
}

// ValidateRecipes checks already-decoded records against the import schema.
func ValidateRecipes(records []domain.RecipeImportRecord) error {
	var result *multierror.Error
	for i, rec := range records {
		err := validation.Struct(rec)
		if err == nil {
			continue
		}
		var ve *validation.Error
		if !errors.As(err, &ve) {
			result = multierror.Append(result, fmt.Errorf("recipes[%d]: %w", i, err))
			continue
		}
		for _, p := range ve.Problems {
			result = multierror.Append(result, fmt.Errorf("recipes[%d].%s", i, p))
		}
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = listFormat
	return fmt.Errorf("%w: %w", domain.ErrInvalidRecipeFile, result)
}

func listFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// RecipeProblems splits a recipe validation error into its field messages
// for structured display. It returns nil for other errors.
func RecipeProblems(err error) []string {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return nil
	}
	out := make([]string, len(merr.Errors))
	for i, e := range merr.Errors {
		out[i] = e.Error()
	}
	return out
}
