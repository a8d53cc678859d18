package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/service"
)

type stubUserService struct {
	all      []domain.User
	allCalls int
	updated  map[string]domain.UpdateUserInput
}

func (s *stubUserService) FetchAllUsers(context.Context) { s.allCalls++ }

func (s *stubUserService) CreateUser(context.Context, domain.CreateUserInput) error { return nil }

func (s *stubUserService) UpdateUser(_ context.Context, id string, in domain.UpdateUserInput) error {
	if s.updated == nil {
		s.updated = map[string]domain.UpdateUserInput{}
	}
	s.updated[id] = in
	return nil
}

func (s *stubUserService) View() service.ListView[domain.User] {
	return service.ListView[domain.User]{}
}

func (s *stubUserService) AllUsers() []domain.User { return s.all }
func (s *stubUserService) AllUsersLoading() bool   { return false }

func TestUserHandler_All(t *testing.T) {
	rec := &fetchRecorder{}
	table, _ := newTable(t, rec, 0)
	svc := &stubUserService{all: []domain.User{{ID: "u1", Phone: "13900000001"}}}
	h := NewUserHandler(svc, table)

	c, res := jsonContext(newEcho(), http.MethodGet, "/console/users/all", "")
	if err := h.All(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.allCalls != 1 {
		t.Fatalf("expected one reload, got %d", svc.allCalls)
	}

	var resp selectionResponse
	if err := json.Unmarshal(res.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "u1" {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
	if len(rec.all()) != 0 {
		t.Fatalf("selection list must not touch the paged table")
	}
}

func TestUserHandler_Update_PartialFields(t *testing.T) {
	rec := &fetchRecorder{}
	table, _ := newTable(t, rec, 0)
	svc := &stubUserService{}
	h := NewUserHandler(svc, table)

	c, res := jsonContext(newEcho(), http.MethodPatch, "/console/users/u1", `{"status":"INACTIVE"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	in := svc.updated["u1"]
	if in.Status == nil || *in.Status != domain.UserInactive || in.Name != nil || in.Password != nil {
		t.Fatalf("unexpected update input: %+v", in)
	}
}
