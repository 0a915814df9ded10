package maintenance_test

import (
	"context"
	"testing"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/apiclient/apiclienttest"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/stretchr/testify/require"
)

func setupTestFixture(t *testing.T) (*maintenance.Service, *apiclienttest.Server) {
	t.Helper()
	backend := apiclienttest.New(t)
	return maintenance.NewService(backend.Client), backend
}

func TestGetAll(t *testing.T) {
	svc, backend := setupTestFixture(t)
	backend.OK("GET /admin/maintenance", map[string]any{
		"requests": []maintenance.Request{
			{ID: "m-1", Title: "Leaking tap", Priority: maintenance.PriorityHigh, Status: maintenance.StatusOpen},
		},
		"statistics": map[string]int{"open": 1},
		"pagination": apiclient.Pagination{CurrentPage: 1, PerPage: 20, Total: 1, LastPage: 1, From: 1, To: 1},
	})

	page, err := svc.GetAll(context.Background(), apiclient.ListParams{Filters: map[string]string{"priority": "high"}})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.JSONEq(t, `{"open":1}`, string(page.Statistics))
	require.Equal(t, "high", backend.LastCall(t).Query.Get("priority"))
}

func TestAssignAndUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc, backend := setupTestFixture(t)
	backend.OK("PATCH /admin/maintenance/{id}/assign", maintenance.Request{ID: "m-1", Status: maintenance.StatusAssigned, AssignedTo: "staff-3"})
	backend.OK("PATCH /admin/maintenance/{id}/status", maintenance.Request{ID: "m-1", Status: maintenance.StatusResolved})

	r, err := svc.Assign(ctx, "m-1", "staff-3")
	require.NoError(t, err)
	require.Equal(t, "staff-3", r.AssignedTo)

	var sent map[string]string
	backend.LastCall(t).DecodeBody(t, &sent)
	require.Equal(t, map[string]string{"assigned_to": "staff-3"}, sent)

	r, err = svc.UpdateStatus(ctx, "m-1", maintenance.StatusResolved, "washer replaced")
	require.NoError(t, err)
	require.Equal(t, maintenance.StatusResolved, r.Status)

	sent = nil
	backend.LastCall(t).DecodeBody(t, &sent)
	require.Equal(t, map[string]string{"status": "resolved", "note": "washer replaced"}, sent)
}

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	svc, backend := setupTestFixture(t)
	backend.OK("GET /admin/maintenance/{id}", maintenance.Request{ID: "m-2", Title: "Broken bed"})
	backend.OK("POST /admin/maintenance", maintenance.Request{ID: "m-3", Title: "No power", Status: maintenance.StatusOpen})
	backend.OK("PUT /admin/maintenance/{id}", maintenance.Request{ID: "m-3", Title: "No power in block C"})
	backend.OK("DELETE /admin/maintenance/{id}", nil)

	r, err := svc.GetByID(ctx, "m-2")
	require.NoError(t, err)
	require.Equal(t, "Broken bed", r.Title)

	r, err = svc.Create(ctx, maintenance.Input{Title: "No power", Category: "electrical"})
	require.NoError(t, err)
	require.Equal(t, maintenance.StatusOpen, r.Status)

	r, err = svc.Update(ctx, "m-3", maintenance.Input{Title: "No power in block C"})
	require.NoError(t, err)
	require.Equal(t, "No power in block C", r.Title)

	require.NoError(t, svc.Delete(ctx, "m-3"))
	require.Len(t, backend.Calls(), 4)
}
