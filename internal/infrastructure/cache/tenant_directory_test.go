package cache

import (
	"testing"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

func TestTenantDirectory_RememberAndName(t *testing.T) {
	d, err := NewTenantDirectory(100, 0)
	if err != nil {
		t.Fatalf("NewTenantDirectory returned error: %v", err)
	}
	defer d.Close()

	d.Remember([]domain.Tenant{
		{ID: "t-1", Name: "Main St Bakery"},
		{ID: "t-2", Name: ""},
	})

	if name, ok := d.Name("t-1"); !ok || name != "Main St Bakery" {
		t.Fatalf("expected cached name, got %q %v", name, ok)
	}
	if _, ok := d.Name("t-2"); ok {
		t.Fatalf("empty names must not be cached")
	}
	if _, ok := d.Name("t-3"); ok {
		t.Fatalf("unknown tenant should miss")
	}
}
