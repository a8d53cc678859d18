package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
	"github.com/bakery-saas/superadmin-console/internal/pkg/metrics"
)

// TenantImporter performs one tenant's bulk import call.
type TenantImporter interface {
	BatchImportRecipes(ctx context.Context, tenantID string, recipes []domain.RecipeImportRecord) (*domain.ImportOutcome, error)
}

// BatchImporter applies one recipe list to several tenants, one tenant at
// a time, and aggregates a single report. A failing tenant is recorded and
// the run moves on.
type BatchImporter struct {
	importer  TenantImporter
	directory ports.TenantDirectory
	history   ports.ImportHistoryRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewBatchImporter wires the orchestrator. directory and history may be nil.
func NewBatchImporter(
	importer TenantImporter,
	directory ports.TenantDirectory,
	history ports.ImportHistoryRepository,
	log zerolog.Logger,
) *BatchImporter {
	return &BatchImporter{
		importer:  importer,
		directory: directory,
		history:   history,
		log:       log.With().Str("component", "batch_import").Logger(),
		now:       time.Now,
	}
}

// Import runs the batch. Input problems are rejected before any request is
// sent. If ctx is cancelled between tenants the remaining tenants are not
// attempted and the partial report is returned with the context error.
func (b *BatchImporter) Import(ctx context.Context, recipes []domain.RecipeImportRecord, targets []domain.ImportTarget) (*domain.ImportReport, error) {
	if err := checkImportInput(recipes, targets); err != nil {
		return nil, err
	}

	report := &domain.ImportReport{
		RecipeCount: len(recipes),
		SkippedLog:  []string{},
		Tenants:     make([]domain.TenantImportResult, 0, len(targets)),
		StartedAt:   b.now().UTC(),
	}

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = b.now().UTC()
			b.log.Warn().Err(err).Int("done", len(report.Tenants)).Msg("batch import cancelled")
			return report, err
		}
		b.importOne(ctx, report, b.label(target), recipes)
	}

	report.FinishedAt = b.now().UTC()
	b.log.Info().
		Int("tenants", len(targets)).
		Int("recipes", len(recipes)).
		Int("imported", report.TotalImported).
		Int("skipped", report.TotalSkipped).
		Msg("batch import finished")

	if b.history != nil {
		if err := b.history.Save(ctx, report); err != nil {
			b.log.Warn().Err(err).Msg("failed to record import history")
		}
	}
	return report, nil
}

func (b *BatchImporter) importOne(ctx context.Context, report *domain.ImportReport, target domain.ImportTarget, recipes []domain.RecipeImportRecord) {
	label := target.Label()
	res := domain.TenantImportResult{TenantID: target.TenantID, Name: label}

	outcome, err := b.importer.BatchImportRecipes(ctx, target.TenantID, recipes)
	if err != nil {
		res.Skipped = len(recipes)
		res.Error = err.Error()
		report.SkippedLog = append(report.SkippedLog, fmt.Sprintf("%s: import failed: %s", label, err.Error()))
		metrics.ImportTenantRunsTotal.WithLabelValues("failed").Inc()
		b.log.Error().Err(err).Str("tenant_id", target.TenantID).Msg("tenant import failed")
	} else {
		res.Imported = outcome.ImportedCount
		res.Skipped = outcome.SkippedCount
		for _, reason := range outcome.SkippedReasons {
			report.SkippedLog = append(report.SkippedLog, label+": "+reason)
		}
		metrics.ImportTenantRunsTotal.WithLabelValues("ok").Inc()
		b.log.Info().
			Str("tenant_id", target.TenantID).
			Int("imported", res.Imported).
			Int("skipped", res.Skipped).
			Msg("tenant import done")
	}

	report.TotalImported += res.Imported
	report.TotalSkipped += res.Skipped
	report.Tenants = append(report.Tenants, res)
	metrics.ImportRecipesTotal.WithLabelValues("imported").Add(float64(res.Imported))
	metrics.ImportRecipesTotal.WithLabelValues("skipped").Add(float64(res.Skipped))
}

// label fills a missing display name from the tenant directory.
func (b *BatchImporter) label(t domain.ImportTarget) domain.ImportTarget {
	if t.Name == "" && b.directory != nil {
		if name, ok := b.directory.Name(t.TenantID); ok {
			t.Name = name
		}
	}
	return t
}

// Recent returns the newest finished reports, or nothing when no history
// store is configured.
func (b *BatchImporter) Recent(ctx context.Context, limit int) ([]domain.ImportReport, error) {
	if b.history == nil {
		return []domain.ImportReport{}, nil
	}
	return b.history.Recent(ctx, limit)
}

// checkImportInput rejects empty inputs and repeated tenant ids.
func checkImportInput(recipes []domain.RecipeImportRecord, targets []domain.ImportTarget) error {
	if len(recipes) == 0 {
		return domain.ErrNoRecipes
	}
	if len(targets) == 0 {
		return domain.ErrNoTargetTenants
	}
	seen := make(map[string]struct{}, len(targets))
	for i, t := range targets {
		if t.TenantID == "" {
			return fmt.Errorf("%w: target %d has no tenant id", domain.ErrNoTargetTenants, i)
		}
		if _, dup := seen[t.TenantID]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateTenant, t.TenantID)
		}
		seen[t.TenantID] = struct{}{}
	}
	return nil
}
