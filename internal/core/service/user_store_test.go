package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

func TestUserStore_FetchAllUsersUsesLargePage(t *testing.T) {
	api := &stubUserAPI{page: domain.ListResult[domain.User]{
		Items: []domain.User{{ID: "u-1", Phone: "0800000001"}, {ID: "u-2", Phone: "0800000002"}},
		Total: 2,
	}}
	store := NewUserStore(api, zerolog.Nop())

	store.FetchAllUsers(context.Background())

	if got := api.queries[0]; got.PageSize != allUsersLimit || got.Page != 1 {
		t.Fatalf("unexpected query: %+v", got)
	}
	if len(store.AllUsers()) != 2 || store.AllUsersLoading() {
		t.Fatalf("selection list not stored")
	}
	if len(store.View().Items) != 0 {
		t.Fatalf("selection list must not touch the paged list")
	}
}

func TestUserStore_FetchErrorIsSwallowed(t *testing.T) {
	api := &stubUserAPI{listErr: errors.New("down")}
	store := NewUserStore(api, zerolog.Nop())

	store.FetchUsers(context.Background(), domain.ListQuery{})
	store.FetchAllUsers(context.Background())

	if store.Loading() || store.AllUsersLoading() {
		t.Fatalf("loading flags must be cleared")
	}
	if store.AllUsers() == nil {
		t.Fatalf("selection list should stay an empty slice")
	}
}

func TestUserStore_UpdateStatusRefreshes(t *testing.T) {
	api := &stubUserAPI{}
	store := NewUserStore(api, zerolog.Nop())
	status := domain.UserInactive

	if err := store.UpdateUser(context.Background(), "u-1", domain.UpdateUserInput{Status: &status}); err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if len(api.updates) != 1 || *api.updates[0].Status != domain.UserInactive {
		t.Fatalf("update not forwarded: %+v", api.updates)
	}
	if len(api.queries) != 1 {
		t.Fatalf("expected refresh after update, got %d fetches", len(api.queries))
	}
}

func TestUserStore_CreateRejectsShortPassword(t *testing.T) {
	api := &stubUserAPI{}
	store := NewUserStore(api, zerolog.Nop())

	err := store.CreateUser(context.Background(), domain.CreateUserInput{Name: "Ann", Phone: "0800000003", Password: "123"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if len(api.queries) != 0 {
		t.Fatalf("no refresh expected after a rejected write")
	}
}

func TestUserStore_WriteErrorIsReturned(t *testing.T) {
	backendErr := errors.New("phone already registered")
	api := &stubUserAPI{writeErr: backendErr}
	store := NewUserStore(api, zerolog.Nop())

	err := store.CreateUser(context.Background(), domain.CreateUserInput{Name: "Ann", Phone: "0800000003", Password: "123456"})
	if err != backendErr {
		t.Fatalf("expected backend error verbatim, got %v", err)
	}
	if err := store.UpdateUser(context.Background(), "u-1", domain.UpdateUserInput{Name: strPtr("Bo")}); err != backendErr {
		t.Fatalf("expected backend error verbatim, got %v", err)
	}
}
