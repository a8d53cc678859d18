package domain

import "time"

// UserStatus is the account state of a platform user.
type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
	UserPending  UserStatus = "PENDING"
)

// Valid reports whether s is a known user status.
func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive, UserPending:
		return true
	}
	return false
}

// Membership links a user to one shop with a shop-scoped role.
type Membership struct {
	TenantID   string `json:"tenantId"`
	TenantName string `json:"tenantName"`
	Role       Role   `json:"role"`
}

// User is a platform account. Name and Role may be absent.
type User struct {
	ID          string       `json:"id"`
	Name        *string      `json:"name"`
	Phone       string       `json:"phone"`
	Role        *Role        `json:"role"`
	Status      UserStatus   `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	Memberships []Membership `json:"tenantMemberships"`
}

// CreateUserInput carries the fields of a standalone user account.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserInput carries optional user changes; nil fields are left alone.
type UpdateUserInput struct {
	Name     *string     `json:"name,omitempty" validate:"omitempty,min=1"`
	Password *string     `json:"password,omitempty" validate:"omitempty,min=6"`
	Status   *UserStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE PENDING"`
}

// DashboardStats are the platform-wide aggregate counts.
type DashboardStats struct {
	TotalTenants int `json:"totalTenants"`
	TotalUsers   int `json:"totalUsers"`
	TotalRecipes int `json:"totalRecipes"`
	TotalTasks   int `json:"totalTasks"`
}
