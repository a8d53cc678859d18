package service

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
)

// RecipeStore wraps the per-tenant bulk import call.
type RecipeStore struct {
	api      ports.RecipeAPI
	inFlight atomic.Int32
	log      zerolog.Logger
}

func NewRecipeStore(api ports.RecipeAPI, log zerolog.Logger) *RecipeStore {
	return &RecipeStore{api: api, log: log.With().Str("store", "recipes").Logger()}
}

// BatchImportRecipes sends the whole recipe list to one tenant in a single
// call. It is a write path: errors are returned to the caller.
func (s *RecipeStore) BatchImportRecipes(ctx context.Context, tenantID string, recipes []domain.RecipeImportRecord) (*domain.ImportOutcome, error) {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	out, err := s.api.BatchImport(ctx, tenantID, recipes)
	if err != nil {
		return nil, surface(s.log.With().Str("tenant_id", tenantID).Logger(), "batch_import", err)
	}
	return out, nil
}

// Loading reports whether any import call is in flight.
func (s *RecipeStore) Loading() bool {
	return s.inFlight.Load() > 0
}
