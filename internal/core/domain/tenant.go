package domain

import "time"

// TenantStatus is the lifecycle state of a shop.
type TenantStatus string

const (
	TenantActive   TenantStatus = "ACTIVE"
	TenantInactive TenantStatus = "INACTIVE"
)

// Valid reports whether s is a known tenant status.
func (s TenantStatus) Valid() bool {
	return s == TenantActive || s == TenantInactive
}

// Tenant is a shop record as seen by the super-admin.
type Tenant struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Status      TenantStatus `json:"status"`
	OwnerID     *string      `json:"ownerId"`
	OwnerName   *string      `json:"ownerName"`
	RecipeCount int          `json:"recipeCount"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// DisplayName is the label used in reports; it falls back to the id.
func (t Tenant) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

// CreateTenantInput carries the fields accepted by the create-tenant call.
type CreateTenantInput struct {
	Name    string `json:"name" validate:"required"`
	OwnerID string `json:"ownerId" validate:"required"`
}

// UpdateTenantInput carries the mutable tenant fields. Only the name can
// change through this call; status has its own operation.
type UpdateTenantInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}
