package backend

import (
	"net/url"
	"strconv"
	"time"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// pageMeta is the pagination block of every list response.
type pageMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	Limit    int `json:"limit"`
	LastPage int `json:"lastPage"`
}

type pageResponse[T any] struct {
	Data []T      `json:"data"`
	Meta pageMeta `json:"meta"`
}

func (p pageResponse[T]) result() *domain.ListResult[T] {
	items := p.Data
	if items == nil {
		items = []T{}
	}
	return &domain.ListResult[T]{
		Items:    items,
		Total:    p.Meta.Total,
		Page:     p.Meta.Page,
		PageSize: p.Meta.Limit,
	}
}

// listParams encodes q. Empty search and absent sort are left out.
func listParams(q domain.ListQuery) url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if sortBy := q.SortBy(); sortBy != "" {
		v.Set("sortBy", sortBy)
	}
	return v
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type profileResponse struct {
	ID    string      `json:"id"`
	Phone string      `json:"phone"`
	Name  *string     `json:"name"`
	Role  domain.Role `json:"role"`
}

func (p profileResponse) toDomain() *domain.CurrentUser {
	u := &domain.CurrentUser{ID: p.ID, Identifier: p.Phone, Role: p.Role}
	if p.Name != nil {
		u.Name = *p.Name
	}
	return u
}

type userTenant struct {
	Role   domain.Role `json:"role"`
	Tenant struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"tenant"`
}

type userResponse struct {
	ID        string            `json:"id"`
	Name      *string           `json:"name"`
	Phone     string            `json:"phone"`
	Role      *domain.Role      `json:"role"`
	Status    domain.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	Tenants   []userTenant      `json:"tenants"`
}

func (u userResponse) toDomain() domain.User {
	out := domain.User{
		ID:          u.ID,
		Name:        u.Name,
		Phone:       u.Phone,
		Role:        u.Role,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		Memberships: make([]domain.Membership, 0, len(u.Tenants)),
	}
	for _, t := range u.Tenants {
		out.Memberships = append(out.Memberships, domain.Membership{
			TenantID:   t.Tenant.ID,
			TenantName: t.Tenant.Name,
			Role:       t.Role,
		})
	}
	return out
}

type statusRequest struct {
	Status domain.TenantStatus `json:"status"`
}
