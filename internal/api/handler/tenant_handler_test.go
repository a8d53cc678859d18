package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

func decodeScreen(t *testing.T, body []byte) screenResponse[domain.Tenant] {
	t.Helper()
	var resp screenResponse[domain.Tenant]
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestTenantHandler_List_FetchesAndRenders(t *testing.T) {
	rec := &fetchRecorder{}
	table, _ := newTable(t, rec, 1)
	svc := &stubTenantService{items: []domain.Tenant{{ID: "t1", Name: "Main St Bakery"}}}
	h := NewTenantHandler(svc, table)

	c, res := jsonContext(newEcho(), http.MethodGet, "/console/tenants", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.all(); len(got) != 1 || got[0].Page != 1 || got[0].PageSize != 10 {
		t.Fatalf("unexpected fetches: %+v", got)
	}
	resp := decodeScreen(t, res.Body.Bytes())
	if len(resp.Items) != 1 || resp.Items[0].Name != "Main St Bakery" {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
	if resp.Table.Pagination.Total != 1 || resp.Table.Pagination.Current != 1 {
		t.Fatalf("unexpected table props: %+v", resp.Table)
	}
}

func TestTenantHandler_Search_DebouncesFetch(t *testing.T) {
	rec := &fetchRecorder{}
	table, clock := newTable(t, rec, 0)
	h := NewTenantHandler(&stubTenantService{}, table)
	e := newEcho()

	for _, text := range []string{"m", "ma", "main"} {
		c, res := jsonContext(e, http.MethodPut, "/console/tenants/search", `{"text":"`+text+`"}`)
		if err := h.Search(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if res.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", res.Code)
		}
	}
	if n := len(rec.all()); n != 0 {
		t.Fatalf("expected no fetch before the window settles, got %d", n)
	}

	clock.last().fire()

	got := rec.all()
	if len(got) != 1 || got[0].Search != "main" {
		t.Fatalf("expected one fetch for %q, got %+v", "main", got)
	}
}

func TestTenantHandler_Table_MultiSortClearsSort(t *testing.T) {
	rec := &fetchRecorder{}
	table, _ := newTable(t, rec, 40)
	h := NewTenantHandler(&stubTenantService{}, table)
	e := newEcho()

	c, _ := jsonContext(e, http.MethodPost, "/console/tenants/table",
		`{"pagination":{"current":3,"pageSize":20},"sort":{"field":"name","order":"ascend"}}`)
	if err := h.Table(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	c, res := jsonContext(e, http.MethodPost, "/console/tenants/table",
		`{"pagination":{"current":3,"pageSize":20},"sort":{"field":"name","order":"ascend"},"sorts":[{"field":"name","order":"ascend"},{"field":"status","order":"descend"}]}`)
	if err := h.Table(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	got := rec.all()
	if len(got) != 2 {
		t.Fatalf("expected 2 fetches, got %d", len(got))
	}
	if got[0].SortBy() != "name:asc" || got[0].Page != 3 || got[0].PageSize != 20 {
		t.Fatalf("unexpected first query: %+v", got[0])
	}
	if got[1].Sort != nil {
		t.Fatalf("multi-column sort should clear the sort, got %+v", got[1].Sort)
	}
	resp := decodeScreen(t, res.Body.Bytes())
	if resp.Table.Pagination.Current != 3 || resp.Table.SortBy != "" {
		t.Fatalf("unexpected table props: %+v", resp.Table)
	}
}

func TestTenantHandler_Create(t *testing.T) {
	rec := &fetchRecorder{}
	table, _ := newTable(t, rec, 0)
	svc := &stubTenantService{}
	h := NewTenantHandler(svc, table)

	c, res := jsonContext(newEcho(), http.MethodPost, "/console/tenants", `{"name":"Harbor Loaves","ownerId":"u2"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", res.Code)
	}
	if len(svc.created) != 1 || svc.created[0].OwnerID != "u2" {
		t.Fatalf("unexpected create calls: %+v", svc.created)
	}
}

func TestTenantHandler_Create_ValidationError(t *testing.T) {
	rec := &fetchRecorder{}
	table, _ := newTable(t, rec, 0)
	h := NewTenantHandler(&stubTenantService{}, table)

	c, _ := jsonContext(newEcho(), http.MethodPost, "/console/tenants", `{"name":"No Owner"}`)
	err := h.Create(c)

	var ve *validation.Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTenantHandler_Rename(t *testing.T) {
	rec := &fetchRecorder{}
	table, _ := newTable(t, rec, 0)
	svc := &stubTenantService{}
	h := NewTenantHandler(svc, table)
	e := newEcho()

	c, _ := jsonContext(e, http.MethodPatch, "/console/tenants/t1", `{"name":"Main Street"}`)
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := h.Rename(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.renamed["t1"] != "Main Street" {
		t.Fatalf("rename not applied: %+v", svc.renamed)
	}

	c, _ = jsonContext(e, http.MethodPatch, "/console/tenants/t1", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("t1")
	var he *echo.HTTPError
	if err := h.Rename(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTenantHandler_SetStatus_SurfacesError(t *testing.T) {
	rec := &fetchRecorder{}
	table, _ := newTable(t, rec, 0)
	boom := errors.New("backend down")
	h := NewTenantHandler(&stubTenantService{statusErr: boom}, table)

	c, _ := jsonContext(newEcho(), http.MethodPatch, "/console/tenants/t1/status", `{"status":"INACTIVE"}`)
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := h.SetStatus(c); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
