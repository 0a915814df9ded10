package students_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/apiclient/apiclienttest"
	"github.com/jrsteele09/hostel-admin/applications"
	"github.com/jrsteele09/hostel-admin/maintenance"
	"github.com/jrsteele09/hostel-admin/notifications"
	"github.com/jrsteele09/hostel-admin/payments"
	"github.com/jrsteele09/hostel-admin/students"
	"github.com/stretchr/testify/require"
)

func setupTestFixture(t *testing.T) (*students.Service, *apiclienttest.Server) {
	t.Helper()
	backend := apiclienttest.New(t)
	return students.NewService(backend.Client), backend
}

func serveDashboard(backend *apiclienttest.Server) {
	backend.OK("GET /student/profile", students.Student{ID: "s-1", MatricNumber: "2021/123456", FirstName: "Ada"})
	backend.OK("GET /student/application", applications.Application{ID: "app-1", Status: applications.StatusApproved})
	backend.OK("GET /student/payments", []payments.Payment{{ID: "p-1", Amount: 45000, Status: payments.StatusVerified}})
	backend.OK("GET /student/notifications", []notifications.Notification{{ID: "n-1", Title: "Welcome"}})
	backend.OK("GET /student/maintenance", []maintenance.Request{{ID: "m-1", Title: "Faulty socket", Status: maintenance.StatusOpen}})
}

func TestGetDashboardData(t *testing.T) {
	svc, backend := setupTestFixture(t)
	serveDashboard(backend)

	data := svc.GetDashboardData(context.Background())
	require.False(t, data.Degraded())
	require.Equal(t, "Ada", data.Profile.FirstName)
	require.Equal(t, applications.StatusApproved, data.Application.Status)
	require.Len(t, data.Payments, 1)
	require.Len(t, data.Notifications, 1)
	require.Len(t, data.Maintenance, 1)
	require.Len(t, backend.Calls(), 5)

	for _, call := range backend.Calls() {
		if call.Path == apiclienttest.APIPrefix+"/student/notifications" {
			require.Equal(t, "5", call.Query.Get("limit"))
		}
	}
}

func TestGetDashboardDataPlaceholders(t *testing.T) {
	svc, backend := setupTestFixture(t)
	backend.OK("GET /student/profile", students.Student{ID: "s-1", FirstName: "Ada"})
	backend.JSON("GET /student/application", http.StatusNotFound, map[string]any{"message": "No application"})
	backend.JSON("GET /student/payments", http.StatusInternalServerError, map[string]any{"message": "boom"})
	backend.JSON("GET /student/notifications", http.StatusOK, map[string]any{"success": false, "message": "disabled"})
	// maintenance is not routed at all and answers 404 from the mux

	data := svc.GetDashboardData(context.Background())
	require.Equal(t, "Ada", data.Profile.FirstName)
	require.Nil(t, data.Application)
	require.NotNil(t, data.Payments)
	require.Empty(t, data.Payments)
	require.NotNil(t, data.Notifications)
	require.Empty(t, data.Notifications)
	require.Empty(t, data.Maintenance)

	require.True(t, data.Degraded())
	require.Contains(t, data.Failed, students.ReadPayments)
	require.Contains(t, data.Failed, students.ReadNotifications)
	require.Contains(t, data.Failed, students.ReadMaintenance)
	require.NotContains(t, data.Failed, students.ReadApplication)
	require.NotContains(t, data.Failed, students.ReadProfile)
}

func TestGetDashboardDataAllFail(t *testing.T) {
	svc, backend := setupTestFixture(t)
	for _, path := range []string{"/student/profile", "/student/application", "/student/payments", "/student/notifications", "/student/maintenance"} {
		backend.JSON("GET "+path, http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})
	}

	data := svc.GetDashboardData(context.Background())
	require.Nil(t, data.Profile)
	require.Len(t, data.Failed, 5)
	for _, err := range data.Failed {
		require.True(t, apiclient.IsUnauthorized(err))
	}
}

func TestGetDashboardDataRunsReadsConcurrently(t *testing.T) {
	svc, backend := setupTestFixture(t)

	var (
		lock    sync.Mutex
		arrived int
		all     = make(chan struct{})
	)
	barrier := func(data any) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			lock.Lock()
			arrived++
			if arrived == 5 {
				close(all)
			}
			lock.Unlock()

			select {
			case <-all:
				apiclienttest.WriteJSON(w, http.StatusOK, apiclienttest.Envelope(data))
			case <-time.After(time.Second):
				apiclienttest.WriteJSON(w, http.StatusGatewayTimeout, map[string]any{"message": "reads were serialised"})
			}
		}
	}
	backend.Handle("GET /student/profile", barrier(students.Student{ID: "s-1"}))
	backend.Handle("GET /student/application", barrier(applications.Application{ID: "app-1"}))
	backend.Handle("GET /student/payments", barrier([]payments.Payment{}))
	backend.Handle("GET /student/notifications", barrier([]notifications.Notification{}))
	backend.Handle("GET /student/maintenance", barrier([]maintenance.Request{}))

	data := svc.GetDashboardData(context.Background())
	require.False(t, data.Degraded(), "failed reads: %v", data.Failed)
}

func TestAdminCRUD(t *testing.T) {
	ctx := context.Background()
	svc, backend := setupTestFixture(t)
	backend.OK("GET /admin/students", map[string]any{
		"students":   []students.Student{{ID: "s-1", MatricNumber: "2021/123456"}},
		"pagination": apiclient.Pagination{CurrentPage: 1, PerPage: 15, Total: 1, LastPage: 1, From: 1, To: 1},
	})
	backend.OK("GET /admin/students/{id}", students.Student{ID: "s-1", Level: "300"})
	backend.OK("POST /admin/students", students.Student{ID: "s-2", MatricNumber: "2024/000001"})
	backend.OK("PUT /admin/students/{id}", students.Student{ID: "s-2", Level: "200"})
	backend.OK("DELETE /admin/students/{id}", nil)

	page, err := svc.GetAll(ctx, apiclient.ListParams{Search: "2021"})
	require.NoError(t, err)
	require.Equal(t, "2021/123456", page.Items[0].MatricNumber)

	st, err := svc.GetByID(ctx, "s-1")
	require.NoError(t, err)
	require.Equal(t, "300", st.Level)

	st, err = svc.Create(ctx, students.Input{MatricNumber: "2024/000001"})
	require.NoError(t, err)
	require.Equal(t, "s-2", st.ID)

	st, err = svc.Update(ctx, "s-2", students.Input{Level: "200"})
	require.NoError(t, err)
	require.Equal(t, "200", st.Level)

	require.NoError(t, svc.Delete(ctx, "s-2"))
}
