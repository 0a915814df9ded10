package notifications_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jrsteele09/hostel-admin/apiclient"
	"github.com/jrsteele09/hostel-admin/apiclient/apiclienttest"
	"github.com/jrsteele09/hostel-admin/notifications"
	"github.com/stretchr/testify/require"
)

func setupTestFixture(t *testing.T) (*notifications.Service, *apiclienttest.Server) {
	t.Helper()
	backend := apiclienttest.New(t)
	return notifications.NewService(backend.Client), backend
}

func TestGetAll(t *testing.T) {
	svc, backend := setupTestFixture(t)
	backend.OK("GET /notifications", map[string]any{
		"notifications": []notifications.Notification{
			{ID: "n-1", Title: "Water outage", Message: "Block B, 2pm to 4pm"},
			{ID: "n-2", Title: "Fees due", Message: "Pay before Friday", IsRead: true},
		},
		"pagination": apiclient.Pagination{CurrentPage: 1, PerPage: 10, Total: 2, LastPage: 1, From: 1, To: 2},
	})

	page, err := svc.GetAll(context.Background(), apiclient.ListParams{PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.False(t, page.Items[0].IsRead)
	require.True(t, page.Items[1].IsRead)
}

func TestReadState(t *testing.T) {
	ctx := context.Background()
	svc, backend := setupTestFixture(t)
	backend.OK("PATCH /notifications/{id}/read", notifications.Notification{ID: "n-1", IsRead: true})
	backend.OK("PATCH /notifications/read-all", map[string]int{"updated": 4})
	backend.OK("GET /notifications/unread-count", map[string]int{"count": 0})

	n, err := svc.MarkAsRead(ctx, "n-1")
	require.NoError(t, err)
	require.True(t, n.IsRead)
	require.Equal(t, "/api/v1/notifications/n-1/read", backend.LastCall(t).Path)

	updated, err := svc.MarkAllAsRead(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, updated)

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Empty(t, backend.LastCall(t).Header.Get(apiclient.HeaderXSRFToken))
}

func TestCreateAndPublish(t *testing.T) {
	ctx := context.Background()
	svc, backend := setupTestFixture(t)
	backend.OK("POST /notifications", notifications.Notification{ID: "n-5", Title: "Inspection"})
	backend.OK("PATCH /notifications/{id}/publish", notifications.Notification{ID: "n-5", Published: true})
	backend.OK("GET /notifications/{id}", notifications.Notification{ID: "n-5", Published: true})
	backend.OK("PUT /notifications/{id}", notifications.Notification{ID: "n-5", Title: "Room inspection"})
	backend.OK("DELETE /notifications/{id}", nil)

	n, err := svc.Create(ctx, notifications.Input{Title: "Inspection", Message: "Monday 9am", Audience: notifications.AudienceStudents})
	require.NoError(t, err)
	require.False(t, n.Published)

	n, err = svc.Publish(ctx, "n-5")
	require.NoError(t, err)
	require.True(t, n.Published)

	n, err = svc.GetByID(ctx, "n-5")
	require.NoError(t, err)
	require.True(t, n.Published)

	n, err = svc.Update(ctx, "n-5", notifications.Input{Title: "Room inspection"})
	require.NoError(t, err)
	require.Equal(t, "Room inspection", n.Title)

	require.NoError(t, svc.Delete(ctx, "n-5"))
}

func TestUnreadCountError(t *testing.T) {
	svc, backend := setupTestFixture(t)
	backend.JSON("GET /notifications/unread-count", http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})

	count, err := svc.UnreadCount(context.Background())
	require.Zero(t, count)
	require.True(t, apiclient.IsUnauthorized(err))
}
