package ports

import (
	"context"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// SessionRepository persists the console session under a single named entry.
type SessionRepository interface {
	// Load returns the persisted session, or nil when none is stored.
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, s domain.Session) error
	Delete(ctx context.Context) error
}
