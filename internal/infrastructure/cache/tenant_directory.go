// Package cache implements the tenant directory on an in-process
// ristretto cache.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
)

// DefaultNameTTL is how long a tenant name seen in a list response is
// trusted for labelling.
const DefaultNameTTL = time.Hour

var _ ports.TenantDirectory = (*TenantDirectory)(nil)

// TenantDirectory maps tenant ids to display names.
type TenantDirectory struct {
	c   *ristretto.Cache[string, string]
	ttl time.Duration
}

// NewTenantDirectory sizes the cache for roughly maxTenants entries.
func NewTenantDirectory(maxTenants int64, ttl time.Duration) (*TenantDirectory, error) {
	if maxTenants <= 0 {
		maxTenants = 10_000
	}
	if ttl <= 0 {
		ttl = DefaultNameTTL
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: maxTenants * 10,
		MaxCost:     maxTenants,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &TenantDirectory{c: c, ttl: ttl}, nil
}

// Remember records the names of tenants. Each entry costs 1. The call
// waits for the writes to be applied so a following Name sees them.
func (d *TenantDirectory) Remember(tenants []domain.Tenant) {
	for _, t := range tenants {
		if t.ID == "" || t.Name == "" {
			continue
		}
		d.c.SetWithTTL(t.ID, t.Name, 1, d.ttl)
	}
	d.c.Wait()
}

func (d *TenantDirectory) Name(tenantID string) (string, bool) {
	return d.c.Get(tenantID)
}

// Close releases the cache's goroutines.
func (d *TenantDirectory) Close() {
	d.c.Close()
}
