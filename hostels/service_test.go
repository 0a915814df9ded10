package hostels_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/apiclient/apiclienttest"
	"github.com/jrsteele09/hostel-admin/hostels"
	"github.com/stretchr/testify/require"
)

func setupTestFixture(t *testing.T, opts ...hostels.ServiceOption) (*hostels.Service, *apiclienttest.Server) {
	t.Helper()
	backend := apiclienttest.New(t)
	return hostels.NewService(backend.Client, opts...), backend
}

func TestGetAll(t *testing.T) {
	svc, backend := setupTestFixture(t)
	backend.OK("GET /admin/hostels", map[string]any{
		"hostels":    []hostels.Hostel{{ID: "h-1", Name: "Queen Amina Hall", Capacity: 400, Occupied: 300}},
		"pagination": apiclient.Pagination{CurrentPage: 1, PerPage: 15, Total: 1, LastPage: 1, From: 1, To: 1},
	})

	page, err := svc.GetAll(context.Background(), apiclient.ListParams{Search: "amina"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Queen Amina Hall", page.Items[0].Name)
	require.Equal(t, float64(75), page.Items[0].OccupancyRate())
	require.Equal(t, 1, page.Pagination.Total)
	require.Equal(t, "amina", backend.LastCall(t).Query.Get("search"))
}

func TestGetRooms(t *testing.T) {
	svc, backend := setupTestFixture(t)
	backend.OK("GET /admin/hostels/h-1/rooms", []hostels.Room{
		{ID: "r-1", HostelID: "h-1", Number: "B12", Capacity: 2, Occupied: 1},
		{ID: "r-2", HostelID: "h-1", Number: "B13", Capacity: 2, Occupied: 2},
	})

	rooms, err := svc.GetRooms(context.Background(), "h-1")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.True(t, rooms[0].Available())
	require.False(t, rooms[1].Available())
}

func TestFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled surfaces the error", func(t *testing.T) {
		svc, backend := setupTestFixture(t)
		backend.JSON("GET /admin/hostels", http.StatusInternalServerError, map[string]any{"message": "db down"})

		page, err := svc.GetAll(ctx, apiclient.ListParams{})
		require.Nil(t, page)
		require.Equal(t, http.StatusInternalServerError, apiclient.StatusOf(err))
	})

	t.Run("enabled serves placeholders", func(t *testing.T) {
		svc, backend := setupTestFixture(t, hostels.WithFallback(true))
		backend.JSON("GET /admin/hostels", http.StatusInternalServerError, map[string]any{"message": "db down"})
		backend.JSON("GET /admin/hostels/{id}/rooms", http.StatusNotFound, map[string]any{"message": "not implemented"})

		page, err := svc.GetAll(ctx, apiclient.ListParams{})
		require.NoError(t, err)
		require.NotEmpty(t, page.Items)
		require.Equal(t, len(page.Items), page.Pagination.Total)

		rooms, err := svc.GetRooms(ctx, "h-9")
		require.NoError(t, err)
		require.NotEmpty(t, rooms)
		require.Equal(t, "h-9", rooms[0].HostelID)
	})

	t.Run("enabled still surfaces 401", func(t *testing.T) {
		svc, backend := setupTestFixture(t, hostels.WithFallback(true))
		backend.JSON("GET /admin/hostels", http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})

		_, err := svc.GetAll(ctx, apiclient.ListParams{})
		require.True(t, apiclient.IsUnauthorized(err))
	})
}

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	svc, backend := setupTestFixture(t)
	backend.OK("GET /admin/hostels/{id}", hostels.Hostel{ID: "h-1", Name: "Hall 1"})
	backend.OK("POST /admin/hostels", hostels.Hostel{ID: "h-2", Name: "Hall 2"})
	backend.OK("PUT /admin/hostels/{id}", hostels.Hostel{ID: "h-2", Name: "Hall Two"})
	backend.OK("DELETE /admin/hostels/{id}", nil)

	h, err := svc.GetByID(ctx, "h-1")
	require.NoError(t, err)
	require.Equal(t, "Hall 1", h.Name)

	h, err = svc.Create(ctx, hostels.Input{Name: "Hall 2", Gender: hostels.GenderMixed})
	require.NoError(t, err)
	require.Equal(t, "h-2", h.ID)

	var sent map[string]any
	backend.LastCall(t).DecodeBody(t, &sent)
	require.Equal(t, map[string]any{"name": "Hall 2", "gender": "mixed"}, sent)

	h, err = svc.Update(ctx, "h-2", hostels.Input{Name: "Hall Two"})
	require.NoError(t, err)
	require.Equal(t, "Hall Two", h.Name)

	require.NoError(t, svc.Delete(ctx, "h-2"))
}
