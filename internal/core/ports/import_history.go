package ports

import (
	"context"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// ImportHistoryRepository keeps finished batch-import reports.
type ImportHistoryRepository interface {
	Save(ctx context.Context, report *domain.ImportReport) error
	// Recent returns up to limit reports, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ImportReport, error)
}

// TenantDirectory remembers tenant display names seen in list responses so
// that import reports can label tenants by name.
type TenantDirectory interface {
	Remember(tenants []domain.Tenant)
	Name(tenantID string) (string, bool)
}
